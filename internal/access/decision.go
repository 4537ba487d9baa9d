// Package access decides whether an actor may toggle a module's entitlement.
//
// Decide is pure: it reads only its arguments and never touches storage, so the
// same evaluation backs both activation and the canActivate flag of read models.
package access

import (
	"fmt"

	"github.com/dangerclosesec/modgate/internal/model"
	"github.com/google/uuid"
)

// Approver names the authorization tier that granted a decision.
type Approver string

const (
	ApproverNone       Approver = "none"
	ApproverSelf       Approver = "self"
	ApproverPermission Approver = "permission"
	ApproverAdmin      Approver = "admin"
	ApproverSuperAdmin Approver = "super_admin"
)

// Decision is the result of evaluating one (module, actor, scope) triple.
type Decision struct {
	Effect         model.DecisionEffect `json:"effect"`
	PermissionType model.PermissionType `json:"permissionType"`
	Approver       Approver             `json:"approverType"`
	// Requirement is the minimum role or permission that would turn a deny into an allow.
	Requirement string `json:"requirement,omitempty"`
}

func (d Decision) Allowed() bool {
	return d.Effect == model.EffectAllow
}

// Target identifies the entitlement set being evaluated. OrganizationID is the
// organization an admin role must be scoped to; for personal scope it is the
// caller's organization context, which may be nil.
type Target struct {
	Scope          model.Scope
	OrganizationID *uuid.UUID
}

// Decide evaluates the rules in precedence order: super-admin bypass, then the
// module's permission type.
func Decide(module *model.Module, actor *model.Actor, target Target) Decision {
	d := Decision{PermissionType: module.PermissionType}

	if actor.IsSuperAdmin() {
		d.Effect = model.EffectAllow
		d.Approver = ApproverSuperAdmin
		return d
	}

	switch module.PermissionType {
	case model.PermissionPublic:
		d.Effect = model.EffectAllow
		d.Approver = ApproverSelf

	case model.PermissionRequirePermission:
		key := module.ActivationPermissionKey()
		if actor.HasPermission(key) {
			d.Effect = model.EffectAllow
			d.Approver = ApproverPermission
		} else {
			d.deny(fmt.Sprintf("permission %q", key))
		}

	case model.PermissionAdmin:
		// Without an organization context only a global admin role qualifies.
		if actor.IsAdminOf(target.OrganizationID) {
			d.Effect = model.EffectAllow
			d.Approver = ApproverAdmin
		} else {
			d.deny("role of type admin for the target organization")
		}

	case model.PermissionSuperAdmin:
		d.deny("role of type super_admin")

	default:
		// Unknown types never reach here through the catalog; deny rather than guess.
		d.deny("role of type super_admin")
	}

	return d
}

func (d *Decision) deny(requirement string) {
	d.Effect = model.EffectDeny
	d.Approver = ApproverNone
	d.Requirement = requirement
}
