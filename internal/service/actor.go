package service

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/modgate/internal/model"
	"github.com/dangerclosesec/modgate/internal/repository"
	"github.com/google/uuid"
)

// ActorService turns an authenticated user id into the identity used for access decisions.
type ActorService struct {
	users repository.UserRepositoryIface
}

func NewActorService(users repository.UserRepositoryIface) *ActorService {
	return &ActorService{users: users}
}

// Resolve loads the user's roles, effective permission keys and memberships.
// A stored current organization the user no longer belongs to is dropped.
func (s *ActorService) Resolve(ctx context.Context, userID uuid.UUID) (*model.Actor, error) {
	user, err := retryRead(ctx, "find user", func(ctx context.Context) (*model.User, error) {
		return s.users.FindByID(ctx, userID)
	})
	if err != nil {
		return nil, err
	}

	roles, err := s.users.FindRoles(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading roles: %w", err)
	}

	keys, err := s.users.FindPermissionKeys(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading permissions: %w", err)
	}

	orgIDs, err := s.users.FindOrganizationIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading memberships: %w", err)
	}

	grants := make([]model.RoleGrant, 0, len(roles))
	for _, r := range roles {
		grants = append(grants, model.RoleGrant{
			RoleID:         r.ID,
			Name:           r.Name,
			Type:           r.Type,
			OrganizationID: r.OrganizationID,
		})
	}

	actor := model.NewActor(user.ID, grants, keys, orgIDs, nil)
	if user.CurrentOrganizationID != nil && actor.IsMemberOf(*user.CurrentOrganizationID) {
		current := *user.CurrentOrganizationID
		actor.CurrentOrganizationID = &current
	}
	return actor, nil
}
