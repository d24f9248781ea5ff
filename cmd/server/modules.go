package main

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/admin-console/internal/api"
	"github.com/JaimeStill/admin-console/internal/client"
	"github.com/JaimeStill/admin-console/internal/config"
	"github.com/JaimeStill/admin-console/internal/infrastructure"
	"github.com/JaimeStill/admin-console/internal/permissions"
	"github.com/JaimeStill/admin-console/internal/views"
	"github.com/JaimeStill/admin-console/pkg/module"
	"github.com/JaimeStill/admin-console/web/app"
)

type Modules struct {
	API *module.Module
	App *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	upstream := client.New(&cfg.Upstream, infra.Logger)

	templates, err := app.Templates(cfg.App.BasePath)
	if err != nil {
		return nil, fmt.Errorf("templates: %w", err)
	}

	catalog := views.NewCatalog(templates, upstream, infra.Logger)
	tree, err := views.NewTree(catalog, cfg.Navigation.DuplicatePolicy, infra.Logger)
	if err != nil {
		return nil, fmt.Errorf("route table: %w", err)
	}

	perms := newPermissions(&cfg.Navigation, upstream, infra)

	apiModule, err := api.NewModule(cfg, infra, api.Navigation{
		Tree:        tree,
		Permissions: perms,
	})
	if err != nil {
		return nil, err
	}

	appModule := app.NewModule(&cfg.App, app.Deps{
		Tree:        tree,
		Guarded:     views.Guarded(catalog),
		Permissions: perms,
		Auth:        upstream,
		Logger:      infra.Logger,
	})

	return &Modules{
		API: apiModule,
		App: appModule,
	}, nil
}

func newPermissions(cfg *config.NavigationConfig, upstream *client.Client, infra *infrastructure.Infrastructure) permissions.Source {
	if cfg.PermissionSource == config.PermissionSourceStatic {
		infra.Logger.Info("using static permissions", "count", len(cfg.StaticPermissions))
		return permissions.NewStatic(cfg.StaticPermissions)
	}
	return permissions.NewUpstream(upstream, infra.Logger)
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.App)
}

func buildRouter(infra *infrastructure.Infrastructure, cfg *config.Config) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, cfg.App.BasePath+"/", http.StatusFound)
	})

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() || infra.Database.Check(r.Context()) != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	return router
}
