package access_test

import (
	"testing"

	"github.com/dangerclosesec/modgate/internal/access"
	"github.com/dangerclosesec/modgate/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func actorWith(roles []model.RoleGrant, perms ...string) *model.Actor {
	return model.NewActor(uuid.New(), roles, perms, nil, nil)
}

func TestDecide(t *testing.T) {
	orgID := uuid.New()
	otherOrg := uuid.New()

	crm := &model.Module{ID: uuid.New(), Name: "CRM", PermissionType: model.PermissionPublic}
	payroll := &model.Module{ID: uuid.New(), Name: "Payroll Management", PermissionType: model.PermissionAdmin}
	users := &model.Module{ID: uuid.New(), Name: "User Management", PermissionType: model.PermissionSuperAdmin}
	reports := &model.Module{ID: uuid.New(), Name: "Reports", PermissionType: model.PermissionRequirePermission}

	staff := actorWith([]model.RoleGrant{{Type: model.RoleStaff, OrganizationID: &orgID}})
	orgAdmin := actorWith([]model.RoleGrant{{Type: model.RoleAdmin, OrganizationID: &orgID}})
	globalAdmin := actorWith([]model.RoleGrant{{Type: model.RoleAdmin}})
	superAdmin := actorWith([]model.RoleGrant{{Type: model.RoleSuperAdmin}})
	reporter := actorWith(nil, "Reports:activate", "User Management:activate")

	orgTarget := access.Target{Scope: model.ScopeOrganization, OrganizationID: &orgID}
	otherTarget := access.Target{Scope: model.ScopeOrganization, OrganizationID: &otherOrg}
	personalNoOrg := access.Target{Scope: model.ScopePersonal}

	tests := []struct {
		name     string
		module   *model.Module
		actor    *model.Actor
		target   access.Target
		effect   model.DecisionEffect
		approver access.Approver
	}{
		{"public allows staff", crm, staff, personalNoOrg, model.EffectAllow, access.ApproverSelf},
		{"public allows anyone", crm, actorWith(nil), orgTarget, model.EffectAllow, access.ApproverSelf},
		{"admin module denies staff", payroll, staff, orgTarget, model.EffectDeny, access.ApproverNone},
		{"admin module allows org admin", payroll, orgAdmin, orgTarget, model.EffectAllow, access.ApproverAdmin},
		{"admin role is scoped to its organization", payroll, orgAdmin, otherTarget, model.EffectDeny, access.ApproverNone},
		{"org admin without org context is denied", payroll, orgAdmin, personalNoOrg, model.EffectDeny, access.ApproverNone},
		{"global admin applies everywhere", payroll, globalAdmin, otherTarget, model.EffectAllow, access.ApproverAdmin},
		{"super admin module denies admin", users, orgAdmin, orgTarget, model.EffectDeny, access.ApproverNone},
		{"super admin module ignores permission set", users, reporter, orgTarget, model.EffectDeny, access.ApproverNone},
		{"super admin bypass", users, superAdmin, orgTarget, model.EffectAllow, access.ApproverSuperAdmin},
		{"require_permission allows holder", reports, reporter, personalNoOrg, model.EffectAllow, access.ApproverPermission},
		{"require_permission denies admin without key", reports, orgAdmin, orgTarget, model.EffectDeny, access.ApproverNone},
		{"super admin bypasses require_permission", reports, superAdmin, personalNoOrg, model.EffectAllow, access.ApproverSuperAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := access.Decide(tt.module, tt.actor, tt.target)
			assert.Equal(t, tt.effect, d.Effect)
			assert.Equal(t, tt.approver, d.Approver)
			assert.Equal(t, tt.module.PermissionType, d.PermissionType)
			if tt.effect == model.EffectDeny {
				assert.NotEmpty(t, d.Requirement)
			} else {
				assert.Empty(t, d.Requirement)
			}
		})
	}
}

func TestDecideNeverRequiresApproval(t *testing.T) {
	orgID := uuid.New()
	actors := []*model.Actor{
		actorWith(nil),
		actorWith([]model.RoleGrant{{Type: model.RoleStaff, OrganizationID: &orgID}}),
		actorWith([]model.RoleGrant{{Type: model.RoleAdmin, OrganizationID: &orgID}}),
		actorWith([]model.RoleGrant{{Type: model.RoleSuperAdmin}}),
		actorWith([]model.RoleGrant{{Type: model.RoleCustom}}, "X:activate"),
	}
	types := []model.PermissionType{
		model.PermissionPublic,
		model.PermissionRequirePermission,
		model.PermissionAdmin,
		model.PermissionSuperAdmin,
	}

	for _, pt := range types {
		module := &model.Module{ID: uuid.New(), Name: "X", PermissionType: pt}
		for _, a := range actors {
			for _, scope := range []model.Scope{model.ScopeOrganization, model.ScopePersonal} {
				d := access.Decide(module, a, access.Target{Scope: scope, OrganizationID: &orgID})
				assert.NotEqual(t, model.EffectRequireApproval, d.Effect)

				switch pt {
				case model.PermissionPublic:
					assert.True(t, d.Allowed(), "public modules are activatable by every actor")
				case model.PermissionSuperAdmin:
					assert.Equal(t, a.IsSuperAdmin(), d.Allowed())
				}
			}
		}
	}
}
