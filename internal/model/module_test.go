package model

import (
	"encoding/json"
	"testing"

	"github.com/dangerclosesec/modgate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePermissionType(t *testing.T) {
	for _, s := range []string{"public", "require_permission", "admin", "super_admin"} {
		pt, err := ParsePermissionType(s)
		require.NoError(t, err)
		assert.Equal(t, s, pt.String())
	}

	for _, s := range []string{"", "Admin", "owner"} {
		_, err := ParsePermissionType(s)
		assert.ErrorIs(t, err, domain.ErrInvalidPermissionType, s)
	}
}

func TestPermissionTypeScan(t *testing.T) {
	var pt PermissionType
	require.NoError(t, pt.Scan("admin"))
	assert.Equal(t, PermissionAdmin, pt)

	require.NoError(t, pt.Scan([]byte("public")))
	assert.Equal(t, PermissionPublic, pt)

	assert.ErrorIs(t, pt.Scan("root"), domain.ErrInvalidPermissionType)
	assert.Error(t, pt.Scan(42))

	_, err := PermissionType("root").Value()
	assert.ErrorIs(t, err, domain.ErrInvalidPermissionType)
}

func TestModuleJSON(t *testing.T) {
	var m Module
	require.NoError(t, json.Unmarshal([]byte(`{"name":"CRM","permissionType":"public"}`), &m))
	assert.Equal(t, PermissionPublic, m.PermissionType)
	assert.Equal(t, "CRM:activate", m.ActivationPermissionKey())

	err := json.Unmarshal([]byte(`{"name":"CRM","permissionType":"everyone"}`), &m)
	assert.ErrorIs(t, err, domain.ErrInvalidPermissionType)
}

func TestModuleViewFlattens(t *testing.T) {
	v := ModuleView{Module: Module{Name: "CRM", PermissionType: PermissionPublic}, IsActive: true, CanActivate: true}
	data, err := json.Marshal(v)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "CRM", raw["name"])
	assert.Equal(t, true, raw["isActive"])
	assert.Equal(t, true, raw["canActivate"])
}

func TestParseScope(t *testing.T) {
	s, err := ParseScope("")
	require.NoError(t, err)
	assert.Equal(t, ScopePersonal, s)

	s, err = ParseScope("organization")
	require.NoError(t, err)
	assert.Equal(t, ScopeOrganization, s)

	_, err = ParseScope("Organization")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
