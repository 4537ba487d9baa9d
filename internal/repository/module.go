// internal/repository/module.go
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

type ModuleRepositoryIface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Module, error)
	FindByName(ctx context.Context, name string) (*model.Module, error)
	FindAll(ctx context.Context) ([]model.Module, error)
	UpsertAll(ctx context.Context, modules []model.Module) error
}

type ModuleRepository struct {
	db *gorm.DB
}

func NewModuleRepository(db *gorm.DB) *ModuleRepository {
	return &ModuleRepository{db: db}
}

func (r *ModuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Module, error) {
	var m model.Module
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrModuleNotFound
		}
		return nil, fmt.Errorf("finding module: %w", err)
	}
	return &m, nil
}

func (r *ModuleRepository) FindByName(ctx context.Context, name string) (*model.Module, error) {
	var m model.Module
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrModuleNotFound
		}
		return nil, fmt.Errorf("finding module by name: %w", err)
	}
	return &m, nil
}

// FindAll returns the whole catalog ordered for display
func (r *ModuleRepository) FindAll(ctx context.Context) ([]model.Module, error) {
	var modules []model.Module
	if err := r.db.WithContext(ctx).Order("sort_order ASC, name ASC").Find(&modules).Error; err != nil {
		return nil, fmt.Errorf("failed to find modules: %w", err)
	}
	return modules, nil
}

// UpsertAll inserts or updates modules keyed by name in one transaction.
// Existing ids are preserved so entitlement rows stay valid.
func (r *ModuleRepository) UpsertAll(ctx context.Context, modules []model.Module) error {
	if len(modules) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range modules {
			// ids come back through RETURNING, including for conflicting rows
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "name"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"display_name", "description", "permission_type", "category",
					"icon", "route", "color", "sort_order", "updated_at",
				}),
			}).Create(&modules[i]).Error; err != nil {
				return fmt.Errorf("upserting module %q: %w", modules[i].Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}
	return nil
}
