// Package api assembles the JSON API module: the business resources and the
// navigation endpoints, documented by a generated OpenAPI spec.
package api

import (
	"net/http"

	"github.com/JaimeStill/admin-console/internal/config"
	"github.com/JaimeStill/admin-console/internal/infrastructure"
	"github.com/JaimeStill/admin-console/internal/permissions"
	"github.com/JaimeStill/admin-console/pkg/middleware"
	"github.com/JaimeStill/admin-console/pkg/module"
	"github.com/JaimeStill/admin-console/pkg/navigation"
	"github.com/JaimeStill/admin-console/pkg/openapi"
)

// Navigation carries the route table and the permission source the menu
// endpoints project with.
type Navigation struct {
	Tree        *navigation.Tree
	Permissions permissions.Source
}

// NewModule creates the API module at cfg.API.BasePath.
func NewModule(
	cfg *config.Config,
	infra *infrastructure.Infrastructure,
	nav Navigation,
) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.Domain)

	mux := http.NewServeMux()
	registerRoutes(mux, spec, runtime, domain, nav, cfg)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, err
	}
	mux.HandleFunc("GET "+Version+"/openapi.json", openapi.ServeSpec(specBytes))

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.TrimSlash())
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}
