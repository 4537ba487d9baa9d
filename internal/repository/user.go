// internal/repository/user.go
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

type UserRepositoryIface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindRoles(ctx context.Context, userID uuid.UUID) ([]model.Role, error)
	FindPermissionKeys(ctx context.Context, userID uuid.UUID) ([]string, error)
	FindOrganizationIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// Personal entitlement set
	ActiveModuleIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	AddModule(ctx context.Context, userID, moduleID uuid.UUID) (bool, error)
	RemoveModule(ctx context.Context, userID, moduleID uuid.UUID) (bool, error)
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", result.Error)
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", result.Error)
	}
	return &user, nil
}

func (r *UserRepository) FindRoles(ctx context.Context, userID uuid.UUID) ([]model.Role, error) {
	var roles []model.Role
	result := r.db.WithContext(ctx).
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userID).
		Find(&roles)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find user roles: %w", result.Error)
	}
	return roles, nil
}

// FindPermissionKeys returns permissions granted directly and through roles.
func (r *UserRepository) FindPermissionKeys(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var keys []string
	result := r.db.WithContext(ctx).Raw(`
		SELECT p.key FROM permissions p
		JOIN user_permissions up ON up.permission_id = p.id
		WHERE up.user_id = ?
		UNION
		SELECT p.key FROM permissions p
		JOIN role_permissions rp ON rp.permission_id = p.id
		JOIN user_roles ur ON ur.role_id = rp.role_id
		WHERE ur.user_id = ?`, userID, userID).
		Scan(&keys)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find user permissions: %w", result.Error)
	}
	return keys, nil
}

func (r *UserRepository) FindOrganizationIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	result := r.db.WithContext(ctx).
		Model(&model.OrganizationUser{}).
		Where("user_id = ?", userID).
		Pluck("organization_id", &ids)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find user organizations: %w", result.Error)
	}
	return ids, nil
}

func (r *UserRepository) ActiveModuleIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	result := r.db.WithContext(ctx).
		Model(&model.UserModule{}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Pluck("module_id", &ids)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find user modules: %w", result.Error)
	}
	return ids, nil
}

func (r *UserRepository) AddModule(ctx context.Context, userID, moduleID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.UserModule{UserID: userID, ModuleID: moduleID})
	if result.Error != nil {
		if mapped := mapSetWriteError(result.Error, domain.ErrUserNotFound); mapped != nil {
			return false, mapped
		}
		return false, fmt.Errorf("failed to add user module: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *UserRepository) RemoveModule(ctx context.Context, userID, moduleID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND module_id = ?", userID, moduleID).
		Delete(&model.UserModule{})
	if result.Error != nil {
		return false, fmt.Errorf("failed to remove user module: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
