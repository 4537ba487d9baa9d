// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")

	// Catalog errors
	ErrModuleNotFound          = errors.New("module not found")
	ErrInvalidPermissionType   = errors.New("invalid permission type")
	ErrInconsistentEntitlement = errors.New("entitlement references a module missing from the catalog")

	// Scope subject errors
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrUserNotFound         = errors.New("user not found")

	// Authorization errors
	ErrForbidden = errors.New("forbidden")
)

// ForbiddenError is returned when an access decision denies an entitlement change.
// It carries the module's permission type and the minimum grant that would satisfy it.
type ForbiddenError struct {
	PermissionType string
	Requirement    string
}

func (e *ForbiddenError) Error() string {
	if e.Requirement == "" {
		return fmt.Sprintf("forbidden: permission type %q", e.PermissionType)
	}
	return fmt.Sprintf("forbidden: permission type %q requires %s", e.PermissionType, e.Requirement)
}

// Is lets errors.Is(err, ErrForbidden) match a *ForbiddenError.
func (e *ForbiddenError) Is(target error) bool {
	return target == ErrForbidden
}
