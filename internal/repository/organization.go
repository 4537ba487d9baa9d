// internal/repository/organization.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/modgate/internal/domain"
	"github.com/dangerclosesec/modgate/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrganizationRepositoryIface exposes an organization and its entitlement set.
// AddModule and RemoveModule are single-statement set operations; they report
// whether membership actually changed.
type OrganizationRepositoryIface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	ActiveModuleIDs(ctx context.Context, orgID uuid.UUID) ([]uuid.UUID, error)
	AddModule(ctx context.Context, orgID, moduleID uuid.UUID) (bool, error)
	RemoveModule(ctx context.Context, orgID, moduleID uuid.UUID) (bool, error)
}

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	if err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("finding organization: %w", err)
	}
	return &org, nil
}

func (r *OrganizationRepository) ActiveModuleIDs(ctx context.Context, orgID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&model.OrganizationModule{}).
		Where("organization_id = ?", orgID).
		Order("created_at ASC").
		Pluck("module_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("finding organization modules: %w", err)
	}
	return ids, nil
}

func (r *OrganizationRepository) AddModule(ctx context.Context, orgID, moduleID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.OrganizationModule{OrganizationID: orgID, ModuleID: moduleID})
	if result.Error != nil {
		if mapped := mapSetWriteError(result.Error, domain.ErrOrganizationNotFound); mapped != nil {
			return false, mapped
		}
		return false, fmt.Errorf("adding organization module: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *OrganizationRepository) RemoveModule(ctx context.Context, orgID, moduleID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("organization_id = ? AND module_id = ?", orgID, moduleID).
		Delete(&model.OrganizationModule{})
	if result.Error != nil {
		return false, fmt.Errorf("removing organization module: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
