// internal/model/entitlement.go
package model

import (
	"fmt"

	"github.com/dangerclosesec/modgate/internal/domain"
	"github.com/google/uuid"
)

// Scope selects which entitlement set an operation reads or mutates.
type Scope string

const (
	ScopeOrganization Scope = "organization"
	ScopePersonal     Scope = "personal"
)

// ParseScope maps an empty string to the personal scope.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case "", ScopePersonal:
		return ScopePersonal, nil
	case ScopeOrganization:
		return ScopeOrganization, nil
	}
	return "", fmt.Errorf("%w: unknown scope %q", domain.ErrInvalidInput, s)
}

type DesiredState string

const (
	StateActive   DesiredState = "active"
	StateInactive DesiredState = "inactive"
)

// EntitlementRequest is an ephemeral activation or deactivation attempt.
type EntitlementRequest struct {
	ModuleID     uuid.UUID    `validate:"required"`
	Actor        *Actor       `validate:"required"`
	Scope        Scope        `validate:"required,oneof=organization personal"`
	TargetOrgID  *uuid.UUID   `validate:"required_if=Scope organization"`
	DesiredState DesiredState `validate:"required,oneof=active inactive"`
}

// Entitlement is the state of one scope subject's entitlement set after an operation.
type Entitlement struct {
	Scope           Scope       `json:"scope"`
	SubjectID       uuid.UUID   `json:"subjectId"`
	ModuleID        uuid.UUID   `json:"moduleId"`
	IsActive        bool        `json:"isActive"`
	ActiveModuleIDs []uuid.UUID `json:"activeModuleIds"`
}
