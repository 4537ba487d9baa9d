package service_test

import (
	"context"
	"errors"
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

func TestActorResolve(t *testing.T) {
	f := newFixture(t)

	t.Run("collects roles, permissions and memberships", func(t *testing.T) {
		a := f.actor(t, f.reporter)
		assert.Equal(t, f.reporter.ID, a.UserID)
		assert.True(t, a.HasPermission("Reports:activate"))
		assert.True(t, a.IsMemberOf(f.org.ID))
		require.NotNil(t, a.CurrentOrganizationID)
		assert.Equal(t, f.org.ID, *a.CurrentOrganizationID)
		assert.False(t, a.IsSuperAdmin())
	})

	t.Run("direct grants merge with role permissions", func(t *testing.T) {
		f.store.GrantPermission(f.staff.ID, "Reports:activate")
		assert.True(t, f.actor(t, f.staff).HasPermission("Reports:activate"))
	})

	t.Run("drops a current organization the user left", func(t *testing.T) {
		stray := f.store.PutUser(model.User{Email: "stray@acme.test", CurrentOrganizationID: &f.org.ID})
		a := f.actor(t, stray)
		assert.Nil(t, a.CurrentOrganizationID)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := f.actors.Resolve(context.Background(), uuid.New())
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestActorResolveRoleLoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepositoryIface(ctrl)
	user := &model.User{ID: uuid.New(), Email: "a@b.test"}
	dbErr := errors.New("relation user_roles does not exist")

	gomock.InOrder(
		userRepo.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil),
		userRepo.EXPECT().FindRoles(gomock.Any(), user.ID).Return(nil, dbErr),
	)

	_, err := service.NewActorService(userRepo).Resolve(context.Background(), user.ID)
	assert.ErrorIs(t, err, dbErr)
}
