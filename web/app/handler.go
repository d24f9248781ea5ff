package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/JaimeStill/admin-console/internal/client"
	"github.com/JaimeStill/admin-console/internal/config"
	"github.com/JaimeStill/admin-console/internal/permissions"
	"github.com/JaimeStill/admin-console/internal/views"
	"github.com/JaimeStill/admin-console/pkg/navigation"
	"github.com/JaimeStill/admin-console/pkg/validation"
	"github.com/JaimeStill/admin-console/pkg/web"
)

// Authenticator exchanges credentials for a token.
type Authenticator interface {
	Login(ctx context.Context, creds client.Credentials) (string, error)
}

type fetcher interface {
	Fetch(ctx context.Context, q url.Values) (any, error)
}

type titled interface {
	PageTitle() string
}

// Handler renders route table pages inside the layout.
type Handler struct {
	tree     *navigation.Tree
	guarded  navigation.NameSet
	perms    permissions.Source
	auth     Authenticator
	basePath string
	cookie   string
	title    string
	logger   *slog.Logger
}

func NewHandler(cfg *config.AppConfig, deps Deps) *Handler {
	return &Handler{
		tree:     deps.Tree,
		guarded:  deps.Guarded,
		perms:    deps.Permissions,
		auth:     deps.Auth,
		basePath: cfg.BasePath,
		cookie:   cfg.TokenCookie,
		title:    cfg.Title,
		logger:   deps.Logger.With("module", "app"),
	}
}

// Page resolves the request path against the route table and renders the
// matched component.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	path := "/" + r.PathValue("path")
	match := h.tree.Resolve(path)

	if match.Redirect != "" {
		h.redirect(w, r, match.Redirect)
		return
	}

	menu := navigation.Menu{Items: []navigation.MenuItem{}}
	token := h.token(r)

	if !views.IsPublic(match.Name) {
		if token == "" {
			h.toLogin(w, r, path)
			return
		}

		allowed, err := h.perms.Permissions(r.Context(), token)
		if err != nil {
			if errors.Is(err, permissions.ErrUnauthenticated) {
				h.clearCookie(w)
				h.toLogin(w, r, path)
				return
			}
			h.logger.Error("permission lookup failed", "error", err)
			h.redirect(w, r, "/error-page/500")
			return
		}

		if !h.permitted(match, allowed) {
			h.redirect(w, r, "/403")
			return
		}

		menu = navigation.Project(h.tree, allowed)
	}

	h.render(w, r, match, token, menu, "", statusFor(match.Name))
}

// NotFound sends unroutable requests to the 404 page.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.redirect(w, r, navigation.NotFoundRedirect)
}

// Login exchanges form credentials for a token cookie.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, r, http.StatusBadRequest, "invalid form")
		return
	}

	creds := client.Credentials{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
	}
	if err := validation.Struct(creds); err != nil {
		h.renderLogin(w, r, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.auth.Login(r.Context(), creds)
	if err != nil {
		h.logger.Info("login rejected", "username", creds.Username, "error", err)
		msg := "login failed"
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Msg != "" {
			msg = apiErr.Msg
		}
		h.renderLogin(w, r, http.StatusUnauthorized, msg)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie,
		Value:    token,
		Path:     h.basePath,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.redirect(w, r, safeRedirect(r.PostFormValue("redirect")))
}

// Logout clears the token cookie.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearCookie(w)
	h.redirect(w, r, "/login")
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, match navigation.Match, token string, menu navigation.Menu, formErr string, status int) {
	comp := match.Component()
	if comp == nil {
		h.redirect(w, r, navigation.NotFoundRedirect)
		return
	}

	view, err := comp.Load(r.Context())
	if err != nil {
		h.logger.Error("component load failed", "component", comp.Path(), "error", err)
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}

	data := web.PageData{
		Title:    h.title,
		BasePath: h.basePath,
		Path:     match.Path,
		Menu:     menu,
		Error:    formErr,
	}
	if t, ok := view.(titled); ok && t.PageTitle() != "" {
		data.Title = t.PageTitle() + " | " + h.title
	}

	if f, ok := view.(fetcher); ok {
		ctx := client.WithToken(r.Context(), token)
		result, err := f.Fetch(ctx, r.URL.Query())
		switch {
		case err == nil:
			data.Data = result
		case client.IsUnauthorized(err):
			h.clearCookie(w)
			h.toLogin(w, r, match.Path)
			return
		default:
			h.logger.Error("page data failed", "route", match.Name, "error", err)
			data.Error = "data unavailable"
			status = http.StatusBadGateway
		}
	}

	if err := web.RenderHTML(w, status, view, data); err != nil {
		h.logger.Error("render failed", "route", match.Name, "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
	}
}

func (h *Handler) renderLogin(w http.ResponseWriter, r *http.Request, status int, msg string) {
	match := h.tree.Resolve("/login")
	h.render(w, r, match, "", navigation.Menu{Items: []navigation.MenuItem{}}, msg, status)
}

// permitted reports whether the match may render for allowed. Only module
// routes are guarded; basic routes render for every authenticated user.
func (h *Handler) permitted(match navigation.Match, allowed navigation.NameSet) bool {
	if len(match.Chain) == 0 || !h.guarded.Has(match.Chain[0]) {
		return true
	}
	for _, name := range match.Chain {
		if allowed.Has(name) {
			return true
		}
	}
	return false
}

func (h *Handler) token(r *http.Request) string {
	if c, err := r.Cookie(h.cookie); err == nil {
		return c.Value
	}
	return ""
}

func (h *Handler) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie,
		Value:    "",
		Path:     h.basePath,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, path string) {
	http.Redirect(w, r, h.basePath+navigation.Normalize(path), http.StatusFound)
}

func (h *Handler) toLogin(w http.ResponseWriter, r *http.Request, from string) {
	target := h.basePath + "/login?redirect=" + url.QueryEscape(from)
	http.Redirect(w, r, target, http.StatusFound)
}

func statusFor(name string) int {
	switch name {
	case "404", "ERROR-404":
		return http.StatusNotFound
	case "403", "ERROR-403":
		return http.StatusForbidden
	case "ERROR-401":
		return http.StatusUnauthorized
	case "ERROR-500":
		return http.StatusInternalServerError
	}
	return http.StatusOK
}

// safeRedirect keeps post-login redirects inside the app.
func safeRedirect(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.Contains(target, "\\") {
		return "/"
	}
	return target
}
