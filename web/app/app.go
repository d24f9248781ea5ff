// Package app provides the server-rendered dashboard module with embedded
// templates and assets.
package app

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/admin-console/internal/config"
	"github.com/JaimeStill/admin-console/internal/permissions"
	"github.com/JaimeStill/admin-console/pkg/middleware"
	"github.com/JaimeStill/admin-console/pkg/module"
	"github.com/JaimeStill/admin-console/pkg/navigation"
	"github.com/JaimeStill/admin-console/pkg/web"
)

//go:embed public/*
var publicFS embed.FS

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

var publicFiles = []string{
	"favicon.svg",
	"app.css",
}

// menuScope carries the active path through the recursive menu template.
type menuScope struct {
	BasePath string
	Path     string
	Items    []navigation.MenuItem
}

var funcs = template.FuncMap{
	"scope": func(basePath, path string, items []navigation.MenuItem) menuScope {
		return menuScope{BasePath: basePath, Path: path, Items: items}
	},
}

// Templates parses the embedded layouts. Views are parsed when a page is
// first loaded.
func Templates(basePath string) (*web.TemplateSet, error) {
	return web.NewTemplateSet(
		layoutFS,
		"server/layouts/*.html",
		viewFS,
		"server/views",
		basePath,
		funcs,
	)
}

// Deps are the systems the dashboard renders with.
type Deps struct {
	Tree        *navigation.Tree
	Guarded     navigation.NameSet
	Permissions permissions.Source
	Auth        Authenticator
	Logger      *slog.Logger
}

// NewModule creates the dashboard module at cfg.BasePath.
func NewModule(cfg *config.AppConfig, deps Deps) *module.Module {
	h := NewHandler(cfg, deps)

	m := module.New(cfg.BasePath, buildRouter(h))
	m.Use(middleware.TrimSlash())
	m.Use(middleware.Logger(deps.Logger))
	return m
}

func buildRouter(h *Handler) http.Handler {
	r := web.NewRouter()
	r.SetFallback(h.NotFound)

	r.HandleFunc("GET /{path...}", h.Page)
	r.HandleFunc("POST /login", h.Login)
	r.HandleFunc("GET /logout", h.Logout)

	for _, route := range web.PublicFileRoutes(publicFS, "public", publicFiles...) {
		r.HandleFunc(route.Method+" "+route.Pattern, route.Handler)
	}

	return r
}
