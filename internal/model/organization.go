// internal/model/organization.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Organization struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Code      string    `gorm:"type:text;uniqueIndex;not null" json:"code"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OrganizationUser is a membership row. The composite key keeps membership a set.
type OrganizationUser struct {
	OrganizationID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt      time.Time

	Organization Organization `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	User         User         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// OrganizationModule is one member of an organization's entitlement set.
type OrganizationModule struct {
	OrganizationID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ModuleID       uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt      time.Time

	Organization Organization `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Module       Module       `gorm:"foreignKey:ModuleID;constraint:OnDelete:RESTRICT"`
}
