// internal/model/module.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dangerclosesec/modgate/internal/domain"
	"github.com/google/uuid"
)

// PermissionType is the minimum authorization tier required to toggle a module's entitlement.
type PermissionType string

const (
	PermissionPublic            PermissionType = "public"
	PermissionRequirePermission PermissionType = "require_permission"
	PermissionAdmin             PermissionType = "admin"
	PermissionSuperAdmin        PermissionType = "super_admin"
)

// ParsePermissionType converts a raw string into a PermissionType, rejecting unknown values.
func ParsePermissionType(s string) (PermissionType, error) {
	pt := PermissionType(s)
	if !pt.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidPermissionType, s)
	}
	return pt, nil
}

// Valid reports whether pt is one of the known permission types.
func (pt PermissionType) Valid() bool {
	switch pt {
	case PermissionPublic, PermissionRequirePermission, PermissionAdmin, PermissionSuperAdmin:
		return true
	}
	return false
}

func (pt PermissionType) String() string {
	return string(pt)
}

// Scan implements the sql.Scanner interface
func (pt *PermissionType) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("unsupported Scan, storing driver.Value type %T into type %T", value, pt)
	}

	parsed, err := ParsePermissionType(raw)
	if err != nil {
		return err
	}
	*pt = parsed
	return nil
}

// Value implements the driver.Valuer interface
func (pt PermissionType) Value() (driver.Value, error) {
	if !pt.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPermissionType, string(pt))
	}
	return string(pt), nil
}

// UnmarshalJSON rejects permission types outside the closed set.
func (pt *PermissionType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParsePermissionType(raw)
	if err != nil {
		return err
	}
	*pt = parsed
	return nil
}

// Module is a unit of product functionality that can be entitled per organization or per user.
type Module struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name           string         `gorm:"type:text;uniqueIndex;not null" json:"name"`
	DisplayName    string         `gorm:"type:text;not null" json:"displayName"`
	Description    string         `gorm:"type:text" json:"description"`
	PermissionType PermissionType `gorm:"type:text;not null;default:'public'" json:"permissionType"`
	Category       string         `gorm:"type:text" json:"category"`
	Icon           string         `gorm:"type:text" json:"icon"`
	Route          string         `gorm:"type:text" json:"route"`
	Color          string         `gorm:"type:text" json:"color"`
	SortOrder      int            `gorm:"not null;default:0" json:"sortOrder"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// ActivationPermissionKey is the permission a require_permission module checks for.
func (m *Module) ActivationPermissionKey() string {
	return m.Name + ":activate"
}

// ModuleView is a catalog module annotated with the caller's effective status.
type ModuleView struct {
	Module
	IsActive    bool `json:"isActive"`
	CanActivate bool `json:"canActivate"`
}
