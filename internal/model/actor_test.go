package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestActorRoles(t *testing.T) {
	org := uuid.New()
	other := uuid.New()

	orgAdmin := NewActor(uuid.New(), []RoleGrant{{Type: RoleAdmin, OrganizationID: &org}}, nil, []uuid.UUID{org}, nil)
	assert.True(t, orgAdmin.IsAdminOf(&org))
	assert.False(t, orgAdmin.IsAdminOf(&other))
	assert.False(t, orgAdmin.IsAdminOf(nil))
	assert.False(t, orgAdmin.IsSuperAdmin())
	assert.False(t, orgAdmin.IsGlobalAdmin())
	assert.Equal(t, []uuid.UUID{org}, orgAdmin.AdministeredOrganizations())
	assert.True(t, orgAdmin.IsMemberOf(org))
	assert.False(t, orgAdmin.IsMemberOf(other))

	globalAdmin := NewActor(uuid.New(), []RoleGrant{{Type: RoleAdmin}}, nil, nil, nil)
	assert.True(t, globalAdmin.IsAdminOf(&other))
	assert.True(t, globalAdmin.IsAdminOf(nil))
	assert.True(t, globalAdmin.IsGlobalAdmin())
	assert.Empty(t, globalAdmin.AdministeredOrganizations())

	super := NewActor(uuid.New(), []RoleGrant{{Type: RoleSuperAdmin}}, nil, nil, nil)
	assert.True(t, super.IsSuperAdmin())
	assert.False(t, super.IsAdminOf(&org))
}

func TestActorPermissions(t *testing.T) {
	a := NewActor(uuid.New(), nil, []string{"Reports:activate", "Reports:activate"}, nil, nil)
	assert.True(t, a.HasPermission("Reports:activate"))
	assert.False(t, a.HasPermission("CRM:activate"))
	assert.Len(t, a.Permissions, 1)
}
