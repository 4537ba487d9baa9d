package service_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/dangerclosesec/modgate/internal/domain"
	"github.com/dangerclosesec/modgate/internal/mocks"
	"github.com/dangerclosesec/modgate/internal/model"
	"github.com/dangerclosesec/modgate/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func viewsByName(views []model.ModuleView) map[string]model.ModuleView {
	out := make(map[string]model.ModuleView, len(views))
	for _, v := range views {
		out[v.Name] = v
	}
	return out
}

func TestGetAvailableModules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.activation.Activate(ctx, f.orgRequest(t, f.admin, f.payroll))
	require.NoError(t, err)

	orgID := f.org.ID

	t.Run("staff sees org state but cannot toggle admin modules", func(t *testing.T) {
		views, err := f.queries.GetAvailableModules(ctx, f.actor(t, f.staff), model.ScopeOrganization, &orgID)
		require.NoError(t, err)
		require.Len(t, views, 4)

		byName := viewsByName(views)
		assert.True(t, byName["Payroll Management"].IsActive)
		assert.False(t, byName["Payroll Management"].CanActivate)
		assert.False(t, byName["CRM"].IsActive)
		assert.True(t, byName["CRM"].CanActivate)
		assert.False(t, byName["User Management"].CanActivate)
		assert.False(t, byName["Reports"].CanActivate)
	})

	t.Run("canActivate tracks the access decision", func(t *testing.T) {
		for _, u := range []model.User{f.staff, f.admin, f.reporter, f.superAdmin} {
			views, err := f.queries.GetAvailableModules(ctx, f.actor(t, u), model.ScopeOrganization, &orgID)
			require.NoError(t, err)
			byName := viewsByName(views)

			assert.True(t, byName["CRM"].CanActivate, u.Email)
			assert.Equal(t, u.ID == f.superAdmin.ID, byName["User Management"].CanActivate, u.Email)
		}
	})

	t.Run("personal scope reflects the personal set", func(t *testing.T) {
		_, err := f.activation.Activate(ctx, f.personalRequest(t, f.staff, f.crm))
		require.NoError(t, err)

		views, err := f.queries.GetAvailableModules(ctx, f.actor(t, f.staff), model.ScopePersonal, nil)
		require.NoError(t, err)
		byName := viewsByName(views)
		assert.True(t, byName["CRM"].IsActive)
		assert.False(t, byName["Payroll Management"].IsActive)
	})

	t.Run("organization scope needs an organization", func(t *testing.T) {
		_, err := f.queries.GetAvailableModules(ctx, f.actor(t, f.staff), model.ScopeOrganization, nil)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("non-members are forbidden", func(t *testing.T) {
		_, err := f.queries.GetAvailableModules(ctx, f.actor(t, f.outsider), model.ScopeOrganization, &orgID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("unknown organization", func(t *testing.T) {
		missing := uuid.New()
		_, err := f.queries.GetAvailableModules(ctx, f.actor(t, f.superAdmin), model.ScopeOrganization, &missing)
		assert.ErrorIs(t, err, domain.ErrOrganizationNotFound)
	})
}

func TestGetOrganizationModules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.activation.Activate(ctx, f.orgRequest(t, f.admin, f.crm))
	require.NoError(t, err)
	_, err = f.activation.Activate(ctx, f.orgRequest(t, f.admin, f.payroll))
	require.NoError(t, err)

	modules, err := f.queries.GetOrganizationModulesFor(ctx, f.actor(t, f.staff), f.org.ID)
	require.NoError(t, err)
	require.Len(t, modules, 2)
	assert.ElementsMatch(t, []string{"CRM", "Payroll Management"}, []string{modules[0].Name, modules[1].Name})

	_, err = f.queries.GetOrganizationModulesFor(ctx, f.actor(t, f.outsider), f.org.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	modules, err = f.queries.GetOrganizationModulesFor(ctx, f.actor(t, f.superAdmin), f.org.ID)
	require.NoError(t, err)
	assert.Len(t, modules, 2)

	_, err = f.queries.GetOrganizationModules(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrOrganizationNotFound)
}

func TestGetPersonalModulesDropsOrphans(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.activation.Activate(ctx, f.personalRequest(t, f.admin, f.crm))
	require.NoError(t, err)
	_, err = f.activation.Activate(ctx, f.personalRequest(t, f.admin, f.payroll))
	require.NoError(t, err)

	f.store.DropModule(f.crm.ID)

	modules, err := f.queries.GetPersonalModules(ctx, f.actor(t, f.admin))
	require.NoError(t, err)
	require.Len(t, modules, 1)
	assert.Equal(t, f.payroll.ID, modules[0].ID)

	// The dangling id stays in the set; reads only filter it.
	ids, err := f.store.Users().ActiveModuleIDs(ctx, f.admin.ID)
	require.NoError(t, err)
	assert.Len(t, ids, 2)
}

func TestQueryRetriesTransientReads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	moduleRepo := mocks.NewMockModuleRepositoryIface(ctrl)
	orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
	userRepo := mocks.NewMockUserRepositoryIface(ctrl)

	org := &model.Organization{ID: uuid.New(), Name: "Acme"}
	crm := model.Module{ID: uuid.New(), Name: "CRM", PermissionType: model.PermissionPublic}

	gomock.InOrder(
		orgRepo.EXPECT().
			FindByID(gomock.Any(), org.ID).
			Return(org, nil),
		orgRepo.EXPECT().
			ActiveModuleIDs(gomock.Any(), org.ID).
			Return(nil, errors.New("connection reset by peer")),
		orgRepo.EXPECT().
			ActiveModuleIDs(gomock.Any(), org.ID).
			Return([]uuid.UUID{crm.ID}, nil),
	)
	moduleRepo.EXPECT().
		FindAll(gomock.Any()).
		Return([]model.Module{crm}, nil)

	catalog := service.NewCatalogService(moduleRepo, nil, nil)
	svc := service.NewQueryService(catalog, orgRepo, userRepo, nil)

	modules, err := svc.GetOrganizationModules(context.Background(), org.ID)
	require.NoError(t, err)
	require.Len(t, modules, 1)
	assert.Equal(t, "CRM", modules[0].Name)
}

func TestQueryDoesNotRetryDomainErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	moduleRepo := mocks.NewMockModuleRepositoryIface(ctrl)
	orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
	userRepo := mocks.NewMockUserRepositoryIface(ctrl)

	actor := model.NewActor(uuid.New(), nil, nil, nil, nil)
	userRepo.EXPECT().
		ActiveModuleIDs(gomock.Any(), actor.UserID).
		Return(nil, domain.ErrUserNotFound).
		Times(1)

	svc := service.NewQueryService(service.NewCatalogService(moduleRepo, nil, nil), orgRepo, userRepo, nil)

	_, err := svc.GetPersonalModules(context.Background(), actor)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestQueryGivesUpAfterOneRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	moduleRepo := mocks.NewMockModuleRepositoryIface(ctrl)
	orgRepo := mocks.NewMockOrganizationRepositoryIface(ctrl)
	userRepo := mocks.NewMockUserRepositoryIface(ctrl)

	actor := model.NewActor(uuid.New(), nil, nil, nil, nil)
	readErr := errors.New("i/o timeout")
	userRepo.EXPECT().
		ActiveModuleIDs(gomock.Any(), actor.UserID).
		Return(nil, readErr).
		Times(2)

	svc := service.NewQueryService(service.NewCatalogService(moduleRepo, nil, nil), orgRepo, userRepo, nil)

	_, err := svc.GetPersonalModules(context.Background(), actor)
	assert.ErrorIs(t, err, readErr)
}

func TestQuerySeesModulesSeededElsewhere(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// The API process caches the catalog; the seeding process has no cache to invalidate.
	cached := service.NewCatalogService(f.store.Modules(), newTestCache(t), nil)
	queries := service.NewQueryService(cached, f.store.Organizations(), f.store.Users(), nil)
	activation := service.NewActivationService(cached, f.store.Organizations(), f.store.Users(), nil, nil)
	seeder := service.NewCatalogService(f.store.Modules(), nil, nil)

	orgID := f.org.ID
	views, err := queries.GetAvailableModules(ctx, f.actor(t, f.admin), model.ScopeOrganization, &orgID)
	require.NoError(t, err)
	require.Len(t, views, 4)

	require.NoError(t, seeder.Seed(ctx, []model.Module{{Name: "Wiki", DisplayName: "Wiki", PermissionType: model.PermissionPublic, SortOrder: 5}}))
	wiki, err := seeder.GetByName(ctx, "Wiki")
	require.NoError(t, err)

	res, err := activation.Activate(ctx, f.orgRequest(t, f.admin, *wiki))
	require.NoError(t, err)
	require.True(t, res.Changed)

	modules, err := queries.GetOrganizationModules(ctx, f.org.ID)
	require.NoError(t, err)
	require.Len(t, modules, 1)
	assert.Equal(t, "Wiki", modules[0].Name)

	views, err = queries.GetAvailableModules(ctx, f.actor(t, f.admin), model.ScopeOrganization, &orgID)
	require.NoError(t, err)
	require.Len(t, views, 5)
	assert.True(t, viewsByName(views)["Wiki"].IsActive)
}

func TestGetAvailableModulesReportsOrphans(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.activation.Activate(ctx, f.personalRequest(t, f.staff, f.crm))
	require.NoError(t, err)
	f.store.DropModule(f.crm.ID)

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	queries := service.NewQueryService(f.catalog, f.store.Organizations(), f.store.Users(), logger)

	views, err := queries.GetAvailableModules(ctx, f.actor(t, f.staff), model.ScopePersonal, nil)
	require.NoError(t, err)
	assert.Len(t, views, 3)
	for _, v := range views {
		assert.False(t, v.IsActive, v.Name)
	}

	assert.Contains(t, buf.String(), "dropping orphaned entitlement")
	assert.Contains(t, buf.String(), f.crm.ID.String())
	assert.Contains(t, buf.String(), domain.ErrInconsistentEntitlement.Error())
}
