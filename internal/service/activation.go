package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dangerclosesec/modgate/internal/access"
	"github.com/dangerclosesec/modgate/internal/audit"
	"github.com/dangerclosesec/modgate/internal/domain"
	"github.com/dangerclosesec/modgate/internal/model"
	"github.com/dangerclosesec/modgate/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ActivationService moves a (module, scope, subject) entitlement between
// inactive and active. Both directions are idempotent and gated by the same
// access decision.
type ActivationService struct {
	catalog  *CatalogService
	orgs     repository.OrganizationRepositoryIface
	users    repository.UserRepositoryIface
	recorder audit.Recorder
	validate *validator.Validate
	logger   *slog.Logger
}

func NewActivationService(
	catalog *CatalogService,
	orgs repository.OrganizationRepositoryIface,
	users repository.UserRepositoryIface,
	recorder audit.Recorder,
	logger *slog.Logger,
) *ActivationService {
	if recorder == nil {
		recorder = audit.NoOpRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ActivationService{
		catalog:  catalog,
		orgs:     orgs,
		users:    users,
		recorder: recorder,
		validate: validator.New(),
		logger:   logger,
	}
}

// ActivationResult describes the outcome of an allowed activation or deactivation.
type ActivationResult struct {
	Decision    access.Decision   `json:"decision"`
	Module      *model.Module     `json:"module"`
	Entitlement model.Entitlement `json:"entitlement"`
	// Changed is false when the entitlement was already in the desired state.
	Changed bool   `json:"changed"`
	Message string `json:"message"`
}

// Activate adds the module to the target entitlement set.
func (s *ActivationService) Activate(ctx context.Context, req model.EntitlementRequest) (*ActivationResult, error) {
	req.DesiredState = model.StateActive
	return s.Apply(ctx, req)
}

// Deactivate removes the module from the target entitlement set.
func (s *ActivationService) Deactivate(ctx context.Context, req model.EntitlementRequest) (*ActivationResult, error) {
	req.DesiredState = model.StateInactive
	return s.Apply(ctx, req)
}

// Apply drives the entitlement toward req.DesiredState.
func (s *ActivationService) Apply(ctx context.Context, req model.EntitlementRequest) (result *ActivationResult, err error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	// In personal scope the organization is only context for the admin tier.
	// One the actor does not belong to is dropped.
	if req.Scope == model.ScopePersonal && req.TargetOrgID != nil &&
		!req.Actor.IsSuperAdmin() && !req.Actor.IsMemberOf(*req.TargetOrgID) {
		req.TargetOrgID = nil
	}

	attempt := &model.ActivationAttempt{
		ModuleID:       req.ModuleID,
		ActorID:        req.Actor.UserID,
		Scope:          req.Scope,
		OrganizationID: req.TargetOrgID,
		DesiredState:   req.DesiredState,
	}
	defer func() { s.record(ctx, attempt, result, err) }()

	module, err := s.catalog.GetByID(ctx, req.ModuleID)
	if err != nil {
		return nil, err
	}
	attempt.ModuleName = module.Name
	attempt.PermissionType = string(module.PermissionType)

	subjectID, target, err := s.resolveSubject(ctx, req, module)
	if err != nil {
		return nil, err
	}
	attempt.SubjectID = subjectID

	decision := access.Decide(module, req.Actor, target)
	attempt.Effect = decision.Effect
	attempt.Approver = string(decision.Approver)
	attempt.Requirement = decision.Requirement
	if !decision.Allowed() {
		return nil, &domain.ForbiddenError{
			PermissionType: string(decision.PermissionType),
			Requirement:    decision.Requirement,
		}
	}

	changed, err := s.mutate(ctx, req, subjectID)
	if err != nil {
		return nil, err
	}

	ids, err := s.activeModuleIDs(ctx, req.Scope, subjectID)
	if err != nil {
		return nil, err
	}

	return &ActivationResult{
		Decision: decision,
		Module:   module,
		Entitlement: model.Entitlement{
			Scope:           req.Scope,
			SubjectID:       subjectID,
			ModuleID:        module.ID,
			IsActive:        req.DesiredState == model.StateActive,
			ActiveModuleIDs: ids,
		},
		Changed: changed,
		Message: resultMessage(module, req, changed),
	}, nil
}

// resolveSubject checks that the scope subject exists and returns the id of the
// entitlement set owner plus the target used for the access decision.
func (s *ActivationService) resolveSubject(ctx context.Context, req model.EntitlementRequest, module *model.Module) (uuid.UUID, access.Target, error) {
	actor := req.Actor

	if req.Scope == model.ScopeOrganization && !actor.IsSuperAdmin() && !actor.IsMemberOf(*req.TargetOrgID) {
		return uuid.Nil, access.Target{}, &domain.ForbiddenError{
			PermissionType: string(module.PermissionType),
			Requirement:    "membership in the target organization",
		}
	}

	switch req.Scope {
	case model.ScopeOrganization:
		if _, err := s.orgs.FindByID(ctx, *req.TargetOrgID); err != nil {
			return uuid.Nil, access.Target{}, err
		}
		return *req.TargetOrgID, access.Target{Scope: req.Scope, OrganizationID: req.TargetOrgID}, nil

	case model.ScopePersonal:
		if _, err := s.users.FindByID(ctx, actor.UserID); err != nil {
			return uuid.Nil, access.Target{}, err
		}
		return actor.UserID, access.Target{Scope: req.Scope, OrganizationID: req.TargetOrgID}, nil
	}

	return uuid.Nil, access.Target{}, fmt.Errorf("%w: unknown scope %q", domain.ErrInvalidInput, req.Scope)
}

// mutate applies exactly one set operation to exactly one entitlement set.
func (s *ActivationService) mutate(ctx context.Context, req model.EntitlementRequest, subjectID uuid.UUID) (bool, error) {
	switch {
	case req.Scope == model.ScopeOrganization && req.DesiredState == model.StateActive:
		return s.orgs.AddModule(ctx, subjectID, req.ModuleID)
	case req.Scope == model.ScopeOrganization:
		return s.orgs.RemoveModule(ctx, subjectID, req.ModuleID)
	case req.DesiredState == model.StateActive:
		return s.users.AddModule(ctx, subjectID, req.ModuleID)
	default:
		return s.users.RemoveModule(ctx, subjectID, req.ModuleID)
	}
}

func (s *ActivationService) activeModuleIDs(ctx context.Context, scope model.Scope, subjectID uuid.UUID) ([]uuid.UUID, error) {
	return retryRead(ctx, "read entitlement set", func(ctx context.Context) ([]uuid.UUID, error) {
		if scope == model.ScopeOrganization {
			return s.orgs.ActiveModuleIDs(ctx, subjectID)
		}
		return s.users.ActiveModuleIDs(ctx, subjectID)
	})
}

func (s *ActivationService) record(ctx context.Context, attempt *model.ActivationAttempt, result *ActivationResult, err error) {
	if info, ok := audit.RequestInfoFrom(ctx); ok {
		attempt.RequestID = info.RequestID
		attempt.ClientIP = info.ClientIP
		attempt.UserAgent = info.UserAgent
	}
	attempt.Success = err == nil
	if result != nil {
		attempt.Changed = result.Changed
	}
	if err != nil {
		attempt.Error = err.Error()
	}

	level := slog.LevelInfo
	if err != nil && !errors.Is(err, domain.ErrForbidden) {
		level = slog.LevelWarn
	}
	s.logger.Log(ctx, level, "module entitlement attempt",
		"module_id", attempt.ModuleID,
		"module", attempt.ModuleName,
		"actor_id", attempt.ActorID,
		"scope", attempt.Scope,
		"desired_state", attempt.DesiredState,
		"effect", attempt.Effect,
		"changed", attempt.Changed,
		"error", attempt.Error,
	)

	// The entitlement change already happened; a lost log entry must not fail it.
	if recErr := s.recorder.RecordAttempt(context.WithoutCancel(ctx), attempt); recErr != nil {
		s.logger.Error("recording activation attempt", "error", recErr)
	}
}

func resultMessage(module *model.Module, req model.EntitlementRequest, changed bool) string {
	verb := "activated"
	if req.DesiredState == model.StateInactive {
		verb = "deactivated"
	}
	if !changed {
		return fmt.Sprintf("Module %s is already %s for %s scope", module.Name, req.DesiredState, req.Scope)
	}
	return fmt.Sprintf("Module %s %s for %s scope", module.Name, verb, req.Scope)
}
