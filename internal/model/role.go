// internal/model/role.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type RoleType string

const (
	RoleSuperAdmin RoleType = "super_admin"
	RoleAdmin      RoleType = "admin"
	RoleStaff      RoleType = "staff"
	RoleCustom     RoleType = "custom"
)

// Role is an input to access decisions only. OrganizationID nil means the grant is global.
type Role struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name           string     `gorm:"type:text;not null" json:"name"`
	Type           RoleType   `gorm:"type:text;not null;default:'custom'" json:"type"`
	OrganizationID *uuid.UUID `gorm:"type:uuid;index" json:"organizationId,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`

	Permissions []Permission `gorm:"many2many:role_permissions;" json:"-"`
}

type Permission struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Key         string    `gorm:"type:text;uniqueIndex;not null" json:"key"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
