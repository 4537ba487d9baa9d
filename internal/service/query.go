package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dangerclosesec/modgate/internal/access"
	"github.com/dangerclosesec/modgate/internal/domain"
	"github.com/dangerclosesec/modgate/internal/model"
	"github.com/dangerclosesec/modgate/internal/repository"
	"github.com/google/uuid"
)

// QueryService builds the user-facing view of entitlements. It owns no state.
type QueryService struct {
	catalog *CatalogService
	orgs    repository.OrganizationRepositoryIface
	users   repository.UserRepositoryIface
	logger  *slog.Logger
}

func NewQueryService(
	catalog *CatalogService,
	orgs repository.OrganizationRepositoryIface,
	users repository.UserRepositoryIface,
	logger *slog.Logger,
) *QueryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &QueryService{catalog: catalog, orgs: orgs, users: users, logger: logger}
}

// GetAvailableModules annotates every catalog module with whether it is active in
// the requested scope and whether the actor could toggle it. orgID is required
// for organization scope and optional context for personal scope.
func (s *QueryService) GetAvailableModules(ctx context.Context, actor *model.Actor, scope model.Scope, orgID *uuid.UUID) ([]model.ModuleView, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := s.checkOrgAccess(actor, orgID); err != nil {
		return nil, err
	}

	var (
		ids []uuid.UUID
		err error
	)
	switch scope {
	case model.ScopeOrganization:
		if orgID == nil {
			return nil, fmt.Errorf("%w: organization id is required for organization scope", domain.ErrInvalidInput)
		}
		if _, err := s.findOrganization(ctx, *orgID); err != nil {
			return nil, err
		}
		ids, err = s.orgModuleIDs(ctx, *orgID)
	case model.ScopePersonal:
		ids, err = s.userModuleIDs(ctx, actor.UserID)
	default:
		return nil, fmt.Errorf("%w: unknown scope %q", domain.ErrInvalidInput, scope)
	}
	if err != nil {
		return nil, err
	}

	modules, err := s.catalog.ListCovering(ctx, ids)
	if err != nil {
		return nil, err
	}

	owner, ownerID := "user", actor.UserID
	if scope == model.ScopeOrganization {
		owner, ownerID = "organization", *orgID
	}
	active := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		active[id] = struct{}{}
	}
	for _, id := range missingFrom(index(modules), ids) {
		s.warnOrphan(ctx, owner, ownerID, id)
	}

	target := access.Target{Scope: scope, OrganizationID: orgID}
	views := make([]model.ModuleView, 0, len(modules))
	for i := range modules {
		_, isActive := active[modules[i].ID]
		views = append(views, model.ModuleView{
			Module:      modules[i],
			IsActive:    isActive,
			CanActivate: access.Decide(&modules[i], actor, target).Allowed(),
		})
	}
	return views, nil
}

// GetOrganizationModules returns the catalog modules in an organization's entitlement set.
func (s *QueryService) GetOrganizationModules(ctx context.Context, orgID uuid.UUID) ([]model.Module, error) {
	if _, err := s.findOrganization(ctx, orgID); err != nil {
		return nil, err
	}
	ids, err := s.orgModuleIDs(ctx, orgID)
	if err != nil {
		return nil, err
	}
	return s.join(ctx, ids, "organization", orgID)
}

// GetOrganizationModulesFor is GetOrganizationModules for a caller who must be a
// member of the organization or a super admin.
func (s *QueryService) GetOrganizationModulesFor(ctx context.Context, actor *model.Actor, orgID uuid.UUID) ([]model.Module, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := s.checkOrgAccess(actor, &orgID); err != nil {
		return nil, err
	}
	return s.GetOrganizationModules(ctx, orgID)
}

// GetPersonalModules returns the catalog modules in the actor's personal entitlement set.
func (s *QueryService) GetPersonalModules(ctx context.Context, actor *model.Actor) ([]model.Module, error) {
	if actor == nil {
		return nil, domain.ErrUnauthorized
	}
	ids, err := s.userModuleIDs(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return s.join(ctx, ids, "user", actor.UserID)
}

// join resolves entitlement ids against the catalog. Ids missing from the
// catalog are dropped and logged instead of failing the read.
func (s *QueryService) join(ctx context.Context, ids []uuid.UUID, ownerType string, ownerID uuid.UUID) ([]model.Module, error) {
	if len(ids) == 0 {
		return []model.Module{}, nil
	}

	idx, err := s.catalog.Index(ctx, ids)
	if err != nil {
		return nil, err
	}

	modules := make([]model.Module, 0, len(ids))
	for _, id := range ids {
		m, ok := idx[id]
		if !ok {
			s.warnOrphan(ctx, ownerType, ownerID, id)
			continue
		}
		modules = append(modules, m)
	}
	return modules, nil
}

func (s *QueryService) warnOrphan(ctx context.Context, ownerType string, ownerID, moduleID uuid.UUID) {
	s.logger.WarnContext(ctx, "dropping orphaned entitlement",
		"error", domain.ErrInconsistentEntitlement,
		"owner_type", ownerType,
		"owner_id", ownerID,
		"module_id", moduleID,
	)
}

func (s *QueryService) checkOrgAccess(actor *model.Actor, orgID *uuid.UUID) error {
	if orgID == nil || actor.IsSuperAdmin() || actor.IsMemberOf(*orgID) {
		return nil
	}
	return &domain.ForbiddenError{Requirement: "membership in the target organization"}
}

func (s *QueryService) findOrganization(ctx context.Context, orgID uuid.UUID) (*model.Organization, error) {
	return retryRead(ctx, "find organization", func(ctx context.Context) (*model.Organization, error) {
		return s.orgs.FindByID(ctx, orgID)
	})
}

func (s *QueryService) orgModuleIDs(ctx context.Context, orgID uuid.UUID) ([]uuid.UUID, error) {
	return retryRead(ctx, "organization modules", func(ctx context.Context) ([]uuid.UUID, error) {
		return s.orgs.ActiveModuleIDs(ctx, orgID)
	})
}

func (s *QueryService) userModuleIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return retryRead(ctx, "personal modules", func(ctx context.Context) ([]uuid.UUID, error) {
		return s.users.ActiveModuleIDs(ctx, userID)
	})
}
