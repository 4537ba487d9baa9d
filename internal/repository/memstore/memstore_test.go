package memstore

import (
	"context"
	"sync"
	"testing"

	"github.com/dangerclosesec/modgate/internal/domain"
	"github.com/dangerclosesec/modgate/internal/model"
	"github.com/dangerclosesec/modgate/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrganizationModuleSet(t *testing.T) {
	ctx := context.Background()
	s := New()
	crm := s.PutModule(model.Module{Name: "CRM", PermissionType: model.PermissionPublic})
	org := s.PutOrganization(model.Organization{Name: "Acme"})
	repo := s.Organizations()

	changed, err := repo.AddModule(ctx, org.ID, crm.ID)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = repo.AddModule(ctx, org.ID, crm.ID)
	require.NoError(t, err)
	assert.False(t, changed)

	ids, err := repo.ActiveModuleIDs(ctx, org.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{crm.ID}, ids)

	changed, err = repo.RemoveModule(ctx, org.ID, crm.ID)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = repo.RemoveModule(ctx, org.ID, crm.ID)
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = repo.AddModule(ctx, org.ID, uuid.New())
	assert.ErrorIs(t, err, domain.ErrModuleNotFound)

	_, err = repo.AddModule(ctx, uuid.New(), crm.ID)
	assert.ErrorIs(t, err, domain.ErrOrganizationNotFound)

	_, err = repo.ActiveModuleIDs(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrOrganizationNotFound)
}

func TestSetOperationsHonorCancellation(t *testing.T) {
	s := New()
	crm := s.PutModule(model.Module{Name: "CRM", PermissionType: model.PermissionPublic})
	u := s.PutUser(model.User{Email: "a@acme.test"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Users().AddModule(ctx, u.ID, crm.ID)
	assert.ErrorIs(t, err, context.Canceled)

	ids, err := s.Users().ActiveModuleIDs(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestConcurrentToggles(t *testing.T) {
	ctx := context.Background()
	s := New()
	u := s.PutUser(model.User{Email: "a@acme.test"})
	modules := make([]model.Module, 8)
	for i := range modules {
		modules[i] = s.PutModule(model.Module{Name: uuid.NewString(), PermissionType: model.PermissionPublic})
	}

	var wg sync.WaitGroup
	for round := 0; round < 4; round++ {
		for _, m := range modules {
			wg.Add(1)
			go func(id uuid.UUID) {
				defer wg.Done()
				_, _ = s.Users().AddModule(ctx, u.ID, id)
			}(m.ID)
		}
	}
	wg.Wait()

	ids, err := s.Users().ActiveModuleIDs(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, ids, len(modules))
}

func TestUpsertAllKeepsIDs(t *testing.T) {
	ctx := context.Background()
	s := New()
	crm := s.PutModule(model.Module{Name: "CRM", PermissionType: model.PermissionPublic})

	batch := []model.Module{
		{Name: "CRM", DisplayName: "Customer Relations", PermissionType: model.PermissionPublic},
		{Name: "Wiki", PermissionType: model.PermissionPublic},
	}
	require.NoError(t, s.Modules().UpsertAll(ctx, batch))
	assert.Equal(t, crm.ID, batch[0].ID)
	assert.NotEqual(t, uuid.Nil, batch[1].ID)

	got, err := s.Modules().FindByName(ctx, "CRM")
	require.NoError(t, err)
	assert.Equal(t, "Customer Relations", got.DisplayName)

	all, err := s.Modules().FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUserLookups(t *testing.T) {
	ctx := context.Background()
	s := New()
	org := s.PutOrganization(model.Organization{Name: "Acme"})
	role := s.PutRole(model.Role{Name: "Analyst", Type: model.RoleCustom}, "Reports:activate")
	u := s.PutUser(model.User{Email: "Ana@Acme.test"})
	s.AddMember(org.ID, u.ID)
	s.AssignRole(u.ID, role.ID)
	s.GrantPermission(u.ID, "Assets:activate")

	found, err := s.Users().FindByEmail(ctx, "ana@acme.test")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	keys, err := s.Users().FindPermissionKeys(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Assets:activate", "Reports:activate"}, keys)

	orgs, err := s.Users().FindOrganizationIDs(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{org.ID}, orgs)

	_, err = s.Users().FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAttemptQuery(t *testing.T) {
	ctx := context.Background()
	s := New()
	org := uuid.New()
	me, other := uuid.New(), uuid.New()

	for _, a := range []model.ActivationAttempt{
		{ActorID: me, Scope: model.ScopePersonal, Success: true},
		{ActorID: other, Scope: model.ScopeOrganization, OrganizationID: &org, Success: false},
		{ActorID: other, Scope: model.ScopePersonal, Success: true},
	} {
		a := a
		require.NoError(t, s.Attempts().Create(ctx, &a))
	}

	got, total, err := s.Attempts().Query(ctx, repository.AttemptQueryParams{
		Visibility: repository.AttemptVisibility{ActorID: me, OrganizationIDs: []uuid.UUID{org}},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Equal(t, other, got[0].ActorID, "newest first")

	_, total, err = s.Attempts().Query(ctx, repository.AttemptQueryParams{
		Visibility: repository.AttemptVisibility{All: true},
		Scope:      model.ScopePersonal,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	got, total, err = s.Attempts().Query(ctx, repository.AttemptQueryParams{
		Visibility: repository.AttemptVisibility{All: true},
		Offset:     5,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Empty(t, got)
}
