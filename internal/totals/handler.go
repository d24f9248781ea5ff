package totals

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/admin-console/pkg/handlers"
	"github.com/JaimeStill/admin-console/pkg/pagination"
	"github.com/JaimeStill/admin-console/pkg/routes"
	"github.com/google/uuid"
)

// OwnerResolver names the authenticated caller of a request.
type OwnerResolver func(ctx context.Context) (string, error)

type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
	maxBody    int64
	owner      OwnerResolver
}

func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config, maxBody int64) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger,
		pagination: pagination,
		maxBody:    maxBody,
	}
}

// WithOwner makes the own-record endpoints act for the resolved caller
// instead of the internal_staff the request names.
func (h *Handler) WithOwner(resolve OwnerResolver) *Handler {
	h.owner = resolve
	return h
}

// resolveOwner returns the caller when a resolver is set, else requested.
func (h *Handler) resolveOwner(ctx context.Context, requested string) (string, error) {
	if h.owner == nil {
		return requested, nil
	}
	owner, err := h.owner(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOwnerUnknown, err)
	}
	return owner, nil
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/total",
		Tags:        []string{"Totals"},
		Description: "Business ledger records and derived views",
		Schemas:     Spec.Schemas(),
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/list", Handler: h.List, OpenAPI: Spec.List},
			{Method: "GET", Pattern: "/list/yyfs", Handler: h.ListFieldService, OpenAPI: Spec.ListFieldService},
			{Method: "GET", Pattern: "/list/bs", Handler: h.Summarize, OpenAPI: Spec.Summarize},
			{Method: "GET", Pattern: "/list/ob", Handler: h.ListOwn, OpenAPI: Spec.ListOwn},
			{Method: "GET", Pattern: "/get", Handler: h.Find, OpenAPI: Spec.Find},
			{Method: "POST", Pattern: "/create", Handler: h.Create, OpenAPI: Spec.Create},
			{Method: "POST", Pattern: "/update", Handler: h.Update, OpenAPI: Spec.Update},
			{Method: "POST", Pattern: "/update/yyfs", Handler: h.UpdateFieldService, OpenAPI: Spec.UpdateFieldService},
			{Method: "POST", Pattern: "/update/ob", Handler: h.UpdateOwn, OpenAPI: Spec.UpdateOwn},
			{Method: "DELETE", Pattern: "/delete", Handler: h.Delete, OpenAPI: Spec.Delete},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondPage(w, result)
}

func (h *Handler) ListFieldService(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FieldServiceFiltersFromQuery(r.URL.Query())

	result, err := h.sys.ListFieldService(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondPage(w, result)
}

func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.Summarize(r.Context(), page, filters.Business)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondPage(w, result)
}

func (h *Handler) ListOwn(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	owner, err := h.resolveOwner(r.Context(), r.URL.Query().Get("internal_staff"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	result, err := h.sys.ListOwn(r.Context(), page, owner, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondPage(w, result)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.URL.Query().Get("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondSuccess(w, result, "")
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := handlers.Bind(w, r, h.maxBody, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondSuccess(w, result, "Created Successfully")
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var cmd UpdateCommand
	if err := handlers.Bind(w, r, h.maxBody, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Update(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondSuccess(w, result, "Updated Successfully")
}

func (h *Handler) UpdateFieldService(w http.ResponseWriter, r *http.Request) {
	var cmd UpdateFieldServiceCommand
	if err := handlers.Bind(w, r, h.maxBody, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.UpdateFieldService(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondSuccess(w, result, "Updated Successfully")
}

func (h *Handler) UpdateOwn(w http.ResponseWriter, r *http.Request) {
	var cmd UpdateOwnCommand
	if err := handlers.Bind(w, r, h.maxBody, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	owner, err := h.resolveOwner(r.Context(), cmd.InternalStaff)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	cmd.InternalStaff = owner

	result, err := h.sys.UpdateOwn(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondSuccess(w, result, "Updated Successfully")
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.URL.Query().Get("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.Delete(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondSuccess(w, nil, "Deleted Successfully")
}
