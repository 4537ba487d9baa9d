// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email                 string     `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	FirstName             string     `gorm:"type:text;not null" json:"firstName"`
	LastName              string     `gorm:"type:text" json:"lastName"`
	CurrentOrganizationID *uuid.UUID `gorm:"type:uuid" json:"currentOrganizationId,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`

	Roles       []Role       `gorm:"many2many:user_roles;" json:"-"`
	Permissions []Permission `gorm:"many2many:user_permissions;" json:"-"`
}

// UserModule is one member of a user's personal entitlement set.
type UserModule struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ModuleID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time

	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Module Module `gorm:"foreignKey:ModuleID;constraint:OnDelete:RESTRICT"`
}
