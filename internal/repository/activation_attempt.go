package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/dangerclosesec/modgate/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivationAttemptRepositoryIface persists and lists activation attempts
type ActivationAttemptRepositoryIface interface {
	Create(ctx context.Context, attempt *model.ActivationAttempt) error
	Query(ctx context.Context, params AttemptQueryParams) ([]model.ActivationAttempt, int64, error)
}

// AttemptVisibility restricts a query to what a caller may see. When All is
// false, only attempts made by ActorID or targeting one of OrganizationIDs match.
type AttemptVisibility struct {
	All             bool
	ActorID         uuid.UUID
	OrganizationIDs []uuid.UUID
}

// AttemptQueryParams holds parameters for querying activation attempts
type AttemptQueryParams struct {
	Visibility AttemptVisibility
	ModuleID   *uuid.UUID
	Scope      model.Scope
	Success    *bool
	StartTime  time.Time
	EndTime    time.Time
	Limit      int
	Offset     int
}

const defaultAttemptLimit = 100

// ActivationAttemptRepository handles database operations for activation attempts
type ActivationAttemptRepository struct {
	db *gorm.DB
}

func NewActivationAttemptRepository(db *gorm.DB) *ActivationAttemptRepository {
	return &ActivationAttemptRepository{db: db}
}

// Create inserts a new attempt entry
func (r *ActivationAttemptRepository) Create(ctx context.Context, attempt *model.ActivationAttempt) error {
	if attempt.ID == uuid.Nil {
		attempt.ID = uuid.New()
	}
	if attempt.Timestamp.IsZero() {
		attempt.Timestamp = time.Now().UTC()
	}

	if err := r.db.WithContext(ctx).Create(attempt).Error; err != nil {
		return fmt.Errorf("failed to create activation attempt: %w", err)
	}
	return nil
}

// Query retrieves attempts matching params, newest first
func (r *ActivationAttemptRepository) Query(ctx context.Context, params AttemptQueryParams) ([]model.ActivationAttempt, int64, error) {
	var attempts []model.ActivationAttempt
	var count int64

	query := r.db.WithContext(ctx).Model(&model.ActivationAttempt{})

	if !params.Visibility.All {
		if len(params.Visibility.OrganizationIDs) > 0 {
			query = query.Where("(actor_id = ? OR organization_id IN ?)",
				params.Visibility.ActorID, params.Visibility.OrganizationIDs)
		} else {
			query = query.Where("actor_id = ?", params.Visibility.ActorID)
		}
	}
	if params.ModuleID != nil {
		query = query.Where("module_id = ?", *params.ModuleID)
	}
	if params.Scope != "" {
		query = query.Where("scope = ?", params.Scope)
	}
	if params.Success != nil {
		query = query.Where("success = ?", *params.Success)
	}
	if !params.StartTime.IsZero() {
		query = query.Where("timestamp >= ?", params.StartTime)
	}
	if !params.EndTime.IsZero() {
		query = query.Where("timestamp <= ?", params.EndTime)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count activation attempts: %w", err)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultAttemptLimit
	}
	query = query.Limit(limit)
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	if err := query.Order("timestamp DESC").Find(&attempts).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to query activation attempts: %w", err)
	}

	return attempts, count, nil
}
