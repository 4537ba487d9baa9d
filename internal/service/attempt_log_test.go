package service_test

import (
	"context"
	"testing"

	"github.com/dangerclosesec/modgate/internal/domain"
	"github.com/dangerclosesec/modgate/internal/mocks"
	"github.com/dangerclosesec/modgate/internal/model"
	"github.com/dangerclosesec/modgate/internal/repository"
	"github.com/dangerclosesec/modgate/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListAttemptsVisibility(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// staff: one personal allow, one org deny
	_, err := f.activation.Activate(ctx, f.personalRequest(t, f.staff, f.crm))
	require.NoError(t, err)
	_, err = f.activation.Activate(ctx, f.orgRequest(t, f.staff, f.payroll))
	require.Error(t, err)

	// outsider acts in their own organization
	_, err = f.activation.Activate(ctx, f.personalRequest(t, f.outsider, f.crm))
	require.NoError(t, err)

	globalRole := f.store.PutRole(model.Role{Name: "Platform Admin", Type: model.RoleAdmin})
	globalAdmin := f.member(model.User{Email: "ops@platform.test", FirstName: "Ops"}, f.otherOrg.ID, globalRole.ID)

	tests := []struct {
		name  string
		user  model.User
		total int64
	}{
		{"members see their own attempts", f.staff, 2},
		{"org admins see attempts in their organization", f.admin, 2},
		{"global admins see every organization", globalAdmin, 3},
		{"super admins see everything", f.superAdmin, 3},
		{"outsiders see only their own", f.outsider, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, total, err := f.attempts.ListAttempts(ctx, f.actor(t, tt.user), service.AttemptFilter{})
			require.NoError(t, err)
			assert.Equal(t, tt.total, total)
		})
	}

	t.Run("filters narrow the listing", func(t *testing.T) {
		success := false
		attempts, total, err := f.attempts.ListAttempts(ctx, f.actor(t, f.superAdmin), service.AttemptFilter{Success: &success})
		require.NoError(t, err)
		require.EqualValues(t, 1, total)
		assert.Equal(t, f.payroll.ID, attempts[0].ModuleID)

		_, total, err = f.attempts.ListAttempts(ctx, f.actor(t, f.superAdmin), service.AttemptFilter{
			ModuleID: &f.crm.ID,
			Scope:    model.ScopePersonal,
		})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)

		attempts, total, err = f.attempts.ListAttempts(ctx, f.actor(t, f.superAdmin), service.AttemptFilter{Limit: 1, Offset: 1})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.Len(t, attempts, 1)
	})

	t.Run("requires an actor", func(t *testing.T) {
		_, _, err := f.attempts.ListAttempts(ctx, nil, service.AttemptFilter{})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestListAttemptsGlobalAdminSeesAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockActivationAttemptRepositoryIface(ctrl)
	actor := model.NewActor(uuid.New(), []model.RoleGrant{{Type: model.RoleAdmin}}, nil, nil, nil)

	repo.EXPECT().
		Query(gomock.Any(), repository.AttemptQueryParams{
			Visibility: repository.AttemptVisibility{All: true, ActorID: actor.UserID},
		}).
		Return([]model.ActivationAttempt{}, int64(0), nil)

	svc := service.NewAttemptLogService(repo)
	_, _, err := svc.ListAttempts(context.Background(), actor, service.AttemptFilter{})
	require.NoError(t, err)
}

func TestListAttemptsQueryParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockActivationAttemptRepositoryIface(ctrl)
	orgID := uuid.New()
	actor := model.NewActor(uuid.New(), []model.RoleGrant{{Type: model.RoleAdmin, OrganizationID: &orgID}}, nil, []uuid.UUID{orgID}, nil)

	repo.EXPECT().
		Query(gomock.Any(), repository.AttemptQueryParams{
			Visibility: repository.AttemptVisibility{
				ActorID:         actor.UserID,
				OrganizationIDs: []uuid.UUID{orgID},
			},
			Scope: model.ScopeOrganization,
			Limit: 10,
		}).
		Return([]model.ActivationAttempt{}, int64(0), nil)

	svc := service.NewAttemptLogService(repo)
	attempts, total, err := svc.ListAttempts(context.Background(), actor, service.AttemptFilter{
		Scope: model.ScopeOrganization,
		Limit: 10,
	})
	require.NoError(t, err)
	assert.Empty(t, attempts)
	assert.Zero(t, total)
}
