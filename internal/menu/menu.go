// Package menu serves the dashboard route table over the API: the full
// tree, the menu projected for a token, and path resolution.
package menu

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/admin-console/internal/client"
	"github.com/JaimeStill/admin-console/internal/permissions"
	"github.com/JaimeStill/admin-console/pkg/handlers"
	"github.com/JaimeStill/admin-console/pkg/navigation"
	"github.com/JaimeStill/admin-console/pkg/routes"
)

// ErrPathRequired is returned by resolve without a path.
var ErrPathRequired = errors.New("path is required")

// MapHTTPStatus maps permission and upstream errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrPathRequired):
		return http.StatusBadRequest
	case errors.Is(err, permissions.ErrUnauthenticated), client.IsUnauthorized(err):
		return http.StatusUnauthorized
	}
	return http.StatusBadGateway
}

// Resolution is a resolved path with the component it renders.
type Resolution struct {
	navigation.Match
	Component string `json:"component,omitempty"`
}

type Handler struct {
	tree        *navigation.Tree
	perms       permissions.Source
	tokenHeader string
	tokenCookie string
	logger      *slog.Logger
}

func NewHandler(tree *navigation.Tree, perms permissions.Source, tokenHeader, tokenCookie string, logger *slog.Logger) *Handler {
	return &Handler{
		tree:        tree,
		perms:       perms,
		tokenHeader: tokenHeader,
		tokenCookie: tokenCookie,
		logger:      logger.With("module", "navigation"),
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/navigation",
		Tags:        []string{"Navigation"},
		Description: "Dashboard route table and menus",
		Schemas:     Spec.Schemas(),
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/routes", Handler: h.Tree, OpenAPI: Spec.Tree},
			{Method: "GET", Pattern: "/menu", Handler: h.Menu, OpenAPI: Spec.Menu},
			{Method: "GET", Pattern: "/resolve", Handler: h.Resolve, OpenAPI: Spec.Resolve},
		},
	}
}

// Tree returns every route, hidden ones included.
func (h *Handler) Tree(w http.ResponseWriter, r *http.Request) {
	handlers.RespondSuccess(w, h.tree.Routes(), "")
}

// Menu returns the menu visible to the caller's token.
func (h *Handler) Menu(w http.ResponseWriter, r *http.Request) {
	allowed, err := h.perms.Permissions(r.Context(), h.token(r))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondSuccess(w, navigation.Project(h.tree, allowed), "")
}

func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		handlers.RespondError(w, h.logger, MapHTTPStatus(ErrPathRequired), ErrPathRequired)
		return
	}

	match := h.tree.Resolve(path)
	res := Resolution{Match: match}
	if c := match.Component(); c != nil {
		res.Component = c.Path()
	}

	handlers.RespondSuccess(w, res, "")
}

func (h *Handler) token(r *http.Request) string {
	return permissions.Token(r, h.tokenHeader, h.tokenCookie)
}
