package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/dangerclosesec/modgate/internal/domain"
	"github.com/dangerclosesec/modgate/internal/middleware"
	"github.com/dangerclosesec/modgate/internal/model"
	"github.com/dangerclosesec/modgate/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ModuleHandler serves the module catalog and entitlement endpoints
type ModuleHandler struct {
	actors     *service.ActorService
	catalog    *service.CatalogService
	activation *service.ActivationService
	queries    *service.QueryService
	attempts   *service.AttemptLogService
	validate   *validator.Validate
}

func NewModuleHandler(
	actors *service.ActorService,
	catalog *service.CatalogService,
	activation *service.ActivationService,
	queries *service.QueryService,
	attempts *service.AttemptLogService,
) *ModuleHandler {
	return &ModuleHandler{
		actors:     actors,
		catalog:    catalog,
		activation: activation,
		queries:    queries,
		attempts:   attempts,
		validate:   validator.New(),
	}
}

// Routes mounts the module endpoints on r
func (h *ModuleHandler) Routes(r chi.Router) {
	r.Get("/available", h.Available)
	r.Get("/organization/{orgId}", h.Organization)
	r.Get("/personal", h.Personal)
	r.Get("/requests", h.Requests)
	r.Post("/{id}/request", h.Request)
	r.Patch("/{id}/deactivate", h.Deactivate)
}

type entitlementRequestBody struct {
	Scope          string `json:"scope" validate:"omitempty,oneof=personal organization"`
	OrganizationID string `json:"organization_id" validate:"omitempty,uuid"`
}

type EntitlementResponse struct {
	Success        bool      `json:"success"`
	Message        string    `json:"message"`
	ApproverType   string    `json:"approverType"`
	Decision       string    `json:"decision"`
	PermissionType string    `json:"permissionType"`
	ModuleID       uuid.UUID `json:"moduleId"`
	Scope          string    `json:"scope"`
	IsActive       bool      `json:"isActive"`
	Changed        bool      `json:"changed"`
}

type AttemptListResponse struct {
	Attempts []model.ActivationAttempt `json:"attempts"`
	Total    int64                     `json:"total"`
}

// Available lists every module with its state in the requested scope
func (h *ModuleHandler) Available(w http.ResponseWriter, r *http.Request) {
	actor, err := h.actor(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	scope, err := model.ParseScope(r.URL.Query().Get("scope"))
	if err != nil {
		handleError(w, r, err)
		return
	}

	orgID, err := orgContext(r.URL.Query().Get("orgId"), actor)
	if err != nil {
		handleError(w, r, err)
		return
	}

	views, err := h.queries.GetAvailableModules(r.Context(), actor, scope, orgID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, views)
}

// Organization lists the modules active for an organization
func (h *ModuleHandler) Organization(w http.ResponseWriter, r *http.Request) {
	actor, err := h.actor(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	orgID, err := uuid.Parse(chi.URLParam(r, "orgId"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid organization ID format")
		return
	}

	modules, err := h.queries.GetOrganizationModulesFor(r.Context(), actor, orgID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, modules)
}

// Personal lists the caller's personally active modules
func (h *ModuleHandler) Personal(w http.ResponseWriter, r *http.Request) {
	actor, err := h.actor(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	modules, err := h.queries.GetPersonalModules(r.Context(), actor)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, modules)
}

// Request activates a module for the requested scope
func (h *ModuleHandler) Request(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, model.StateActive)
}

// Deactivate deactivates a module for the requested scope
func (h *ModuleHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.apply(w, r, model.StateInactive)
}

func (h *ModuleHandler) apply(w http.ResponseWriter, r *http.Request, state model.DesiredState) {
	actor, err := h.actor(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var body entitlementRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(body); err != nil {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	scope, err := model.ParseScope(body.Scope)
	if err != nil {
		handleError(w, r, err)
		return
	}

	orgRef := body.OrganizationID
	if orgRef == "" {
		orgRef = r.URL.Query().Get("orgId")
	}
	orgID, err := orgContext(orgRef, actor)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if scope == model.ScopeOrganization && orgID == nil {
		respondWithError(w, http.StatusBadRequest, "organization_id is required for organization scope")
		return
	}

	module, err := h.catalog.Resolve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}

	result, err := h.activation.Apply(r.Context(), model.EntitlementRequest{
		ModuleID:     module.ID,
		Actor:        actor,
		Scope:        scope,
		TargetOrgID:  orgID,
		DesiredState: state,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, EntitlementResponse{
		Success:        true,
		Message:        result.Message,
		ApproverType:   string(result.Decision.Approver),
		Decision:       string(result.Decision.Effect),
		PermissionType: string(result.Decision.PermissionType),
		ModuleID:       result.Module.ID,
		Scope:          string(result.Entitlement.Scope),
		IsActive:       result.Entitlement.IsActive,
		Changed:        result.Changed,
	})
}

// Requests lists recorded activation attempts visible to the caller
func (h *ModuleHandler) Requests(w http.ResponseWriter, r *http.Request) {
	actor, err := h.actor(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	q := r.URL.Query()
	filter := service.AttemptFilter{}

	if moduleRef := q.Get("module_id"); moduleRef != "" {
		module, err := h.catalog.Resolve(r.Context(), moduleRef)
		if err != nil {
			handleError(w, r, err)
			return
		}
		filter.ModuleID = &module.ID
	}

	if scopeStr := q.Get("scope"); scopeStr != "" {
		scope, err := model.ParseScope(scopeStr)
		if err != nil {
			handleError(w, r, err)
			return
		}
		filter.Scope = scope
	}

	if successStr := q.Get("success"); successStr != "" {
		success, err := strconv.ParseBool(successStr)
		if err == nil {
			filter.Success = &success
		}
	}

	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err == nil && limit > 0 {
			filter.Limit = limit
		}
	}

	if offsetStr := q.Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err == nil && offset >= 0 {
			filter.Offset = offset
		}
	}

	attempts, total, err := h.attempts.ListAttempts(r.Context(), actor, filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, AttemptListResponse{Attempts: attempts, Total: total})
}

// actor resolves the authenticated caller
func (h *ModuleHandler) actor(r *http.Request) (*model.Actor, error) {
	raw, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	actor, err := h.actors.Resolve(r.Context(), userID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrUnauthorized
	}
	return actor, err
}

// orgContext parses an explicit organization reference, falling back to the
// caller's current organization.
func orgContext(ref string, actor *model.Actor) (*uuid.UUID, error) {
	if ref == "" {
		return actor.CurrentOrganizationID, nil
	}
	id, err := uuid.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid organization id %q", domain.ErrInvalidInput, ref)
	}
	return &id, nil
}
