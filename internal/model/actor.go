// internal/model/actor.go
package model

import (
	"github.com/google/uuid"
)

// RoleGrant is a role held by an actor, optionally scoped to one organization.
type RoleGrant struct {
	RoleID         uuid.UUID  `json:"roleId"`
	Name           string     `json:"name"`
	Type           RoleType   `json:"type"`
	OrganizationID *uuid.UUID `json:"organizationId,omitempty"`
}

// Actor is the resolved identity an entitlement call is made on behalf of.
type Actor struct {
	UserID                uuid.UUID           `json:"userId"`
	Roles                 []RoleGrant         `json:"roles"`
	Permissions           map[string]struct{} `json:"-"`
	OrganizationIDs       []uuid.UUID         `json:"organizationIds"`
	CurrentOrganizationID *uuid.UUID          `json:"currentOrganizationId,omitempty"`
}

// NewActor builds an actor from a user's role grants and permission keys.
func NewActor(userID uuid.UUID, roles []RoleGrant, permissionKeys []string, orgIDs []uuid.UUID, current *uuid.UUID) *Actor {
	perms := make(map[string]struct{}, len(permissionKeys))
	for _, key := range permissionKeys {
		perms[key] = struct{}{}
	}
	return &Actor{
		UserID:                userID,
		Roles:                 roles,
		Permissions:           perms,
		OrganizationIDs:       orgIDs,
		CurrentOrganizationID: current,
	}
}

func (a *Actor) IsSuperAdmin() bool {
	for _, r := range a.Roles {
		if r.Type == RoleSuperAdmin {
			return true
		}
	}
	return false
}

// IsAdminOf reports whether the actor holds an admin role for orgID.
// A global admin role (no organization) counts for every organization.
func (a *Actor) IsAdminOf(orgID *uuid.UUID) bool {
	for _, r := range a.Roles {
		if r.Type != RoleAdmin {
			continue
		}
		if r.OrganizationID == nil {
			return true
		}
		if orgID != nil && *r.OrganizationID == *orgID {
			return true
		}
	}
	return false
}

// IsGlobalAdmin reports whether the actor holds an admin role not bound to any organization.
func (a *Actor) IsGlobalAdmin() bool {
	for _, r := range a.Roles {
		if r.Type == RoleAdmin && r.OrganizationID == nil {
			return true
		}
	}
	return false
}

// AdministeredOrganizations returns the organizations the actor holds an org-scoped admin role in.
func (a *Actor) AdministeredOrganizations() []uuid.UUID {
	var out []uuid.UUID
	for _, r := range a.Roles {
		if r.Type == RoleAdmin && r.OrganizationID != nil {
			out = append(out, *r.OrganizationID)
		}
	}
	return out
}

func (a *Actor) HasPermission(key string) bool {
	_, ok := a.Permissions[key]
	return ok
}

func (a *Actor) IsMemberOf(orgID uuid.UUID) bool {
	for _, id := range a.OrganizationIDs {
		if id == orgID {
			return true
		}
	}
	return false
}
