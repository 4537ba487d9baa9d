package service

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/modgate/internal/audit"
	"github.com/dangerclosesec/modgate/internal/domain"
	"github.com/dangerclosesec/modgate/internal/model"
	"github.com/dangerclosesec/modgate/internal/repository"
	"github.com/google/uuid"
)

// Ensure AttemptLogService implements the audit.Recorder interface
var _ audit.Recorder = (*AttemptLogService)(nil)

// AttemptLogService records activation attempts and lists them per caller visibility
type AttemptLogService struct {
	repo repository.ActivationAttemptRepositoryIface
}

func NewAttemptLogService(repo repository.ActivationAttemptRepositoryIface) *AttemptLogService {
	return &AttemptLogService{repo: repo}
}

// RecordAttempt implements audit.Recorder
func (s *AttemptLogService) RecordAttempt(ctx context.Context, attempt *model.ActivationAttempt) error {
	if err := s.repo.Create(ctx, attempt); err != nil {
		return fmt.Errorf("recording activation attempt: %w", err)
	}
	return nil
}

// AttemptFilter narrows a listing of activation attempts
type AttemptFilter struct {
	ModuleID *uuid.UUID
	Scope    model.Scope
	Success  *bool
	Limit    int
	Offset   int
}

// ListAttempts returns attempts the actor may see. Super admins and global
// admins see everything, organization admins see attempts in the organizations
// they administer, and everyone sees their own.
func (s *AttemptLogService) ListAttempts(ctx context.Context, actor *model.Actor, filter AttemptFilter) ([]model.ActivationAttempt, int64, error) {
	if actor == nil {
		return nil, 0, domain.ErrUnauthorized
	}

	params := repository.AttemptQueryParams{
		Visibility: repository.AttemptVisibility{
			All:             actor.IsSuperAdmin() || actor.IsGlobalAdmin(),
			ActorID:         actor.UserID,
			OrganizationIDs: actor.AdministeredOrganizations(),
		},
		ModuleID: filter.ModuleID,
		Scope:    filter.Scope,
		Success:  filter.Success,
		Limit:    filter.Limit,
		Offset:   filter.Offset,
	}

	page, err := retryRead(ctx, "list attempts", func(ctx context.Context) (attemptPage, error) {
		items, n, err := s.repo.Query(ctx, params)
		return attemptPage{items: items, total: n}, err
	})
	if err != nil {
		return nil, 0, err
	}
	return page.items, page.total, nil
}

type attemptPage struct {
	items []model.ActivationAttempt
	total int64
}
