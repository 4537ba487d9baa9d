// Package memstore is an in-process implementation of the repository
// interfaces. Every set mutation runs under the store lock, which gives the
// same single-operation atomicity the SQL repositories get from one statement.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dangerclosesec/modgate/internal/domain"
	"github.com/dangerclosesec/modgate/internal/model"
	"github.com/dangerclosesec/modgate/internal/repository"
	"github.com/google/uuid"
)

var (
	_ repository.ModuleRepositoryIface            = (*ModuleRepository)(nil)
	_ repository.OrganizationRepositoryIface      = (*OrganizationRepository)(nil)
	_ repository.UserRepositoryIface              = (*UserRepository)(nil)
	_ repository.ActivationAttemptRepositoryIface = (*AttemptRepository)(nil)
)

type idSet map[uuid.UUID]time.Time

func (s idSet) sorted() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		ti, tj := s[ids[i]], s[ids[j]]
		if ti.Equal(tj) {
			return ids[i].String() < ids[j].String()
		}
		return ti.Before(tj)
	})
	return ids
}

type userRecord struct {
	user        model.User
	roleIDs     map[uuid.UUID]struct{}
	permissions map[string]struct{}
	orgIDs      map[uuid.UUID]struct{}
	modules     idSet
}

// Store holds all records. Use the repository views to access it.
type Store struct {
	mu              sync.RWMutex
	modules         map[uuid.UUID]model.Module
	orgs            map[uuid.UUID]model.Organization
	orgModules      map[uuid.UUID]idSet
	users           map[uuid.UUID]*userRecord
	roles           map[uuid.UUID]model.Role
	rolePermissions map[uuid.UUID]map[string]struct{}
	attempts        []model.ActivationAttempt
}

func New() *Store {
	return &Store{
		modules:         make(map[uuid.UUID]model.Module),
		orgs:            make(map[uuid.UUID]model.Organization),
		orgModules:      make(map[uuid.UUID]idSet),
		users:           make(map[uuid.UUID]*userRecord),
		roles:           make(map[uuid.UUID]model.Role),
		rolePermissions: make(map[uuid.UUID]map[string]struct{}),
	}
}

func (s *Store) Modules() *ModuleRepository             { return &ModuleRepository{s: s} }
func (s *Store) Organizations() *OrganizationRepository { return &OrganizationRepository{s: s} }
func (s *Store) Users() *UserRepository                 { return &UserRepository{s: s} }
func (s *Store) Attempts() *AttemptRepository           { return &AttemptRepository{s: s} }

// PutModule adds or replaces a catalog module, assigning an id when missing.
func (s *Store) PutModule(m model.Module) model.Module {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	now := time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
	s.modules[m.ID] = m
	return m
}

// DropModule removes a module from the catalog without touching entitlement
// sets, leaving any references to it dangling.
func (s *Store) DropModule(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.modules, id)
}

func (s *Store) PutOrganization(org model.Organization) model.Organization {
	s.mu.Lock()
	defer s.mu.Unlock()
	if org.ID == uuid.Nil {
		org.ID = uuid.New()
	}
	s.orgs[org.ID] = org
	if _, ok := s.orgModules[org.ID]; !ok {
		s.orgModules[org.ID] = make(idSet)
	}
	return org
}

func (s *Store) PutUser(u model.User) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if rec, ok := s.users[u.ID]; ok {
		rec.user = u
		return u
	}
	s.users[u.ID] = &userRecord{
		user:        u,
		roleIDs:     make(map[uuid.UUID]struct{}),
		permissions: make(map[string]struct{}),
		orgIDs:      make(map[uuid.UUID]struct{}),
		modules:     make(idSet),
	}
	return u
}

func (s *Store) PutRole(r model.Role, permissionKeys ...string) model.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	s.roles[r.ID] = r
	perms := make(map[string]struct{}, len(permissionKeys))
	for _, k := range permissionKeys {
		perms[k] = struct{}{}
	}
	s.rolePermissions[r.ID] = perms
	return r
}

func (s *Store) AddMember(orgID, userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.users[userID]; ok {
		rec.orgIDs[orgID] = struct{}{}
	}
}

func (s *Store) AssignRole(userID, roleID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.users[userID]; ok {
		rec.roleIDs[roleID] = struct{}{}
	}
}

func (s *Store) GrantPermission(userID uuid.UUID, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.users[userID]; ok {
		rec.permissions[key] = struct{}{}
	}
}

// ModuleRepository is the catalog view of a Store.
type ModuleRepository struct{ s *Store }

func (r *ModuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Module, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	m, ok := r.s.modules[id]
	if !ok {
		return nil, domain.ErrModuleNotFound
	}
	return &m, nil
}

func (r *ModuleRepository) FindByName(ctx context.Context, name string) (*model.Module, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, m := range r.s.modules {
		if m.Name == name {
			m := m
			return &m, nil
		}
	}
	return nil, domain.ErrModuleNotFound
}

func (r *ModuleRepository) FindAll(ctx context.Context) ([]model.Module, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]model.Module, 0, len(r.s.modules))
	for _, m := range r.s.modules {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return strings.Compare(out[i].Name, out[j].Name) < 0
	})
	return out, nil
}

func (r *ModuleRepository) UpsertAll(ctx context.Context, modules []model.Module) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := time.Now().UTC()
	for i := range modules {
		for id, existing := range r.s.modules {
			if existing.Name == modules[i].Name {
				modules[i].ID = id
				modules[i].CreatedAt = existing.CreatedAt
				break
			}
		}
		if modules[i].ID == uuid.Nil {
			modules[i].ID = uuid.New()
			modules[i].CreatedAt = now
		}
		modules[i].UpdatedAt = now
		r.s.modules[modules[i].ID] = modules[i]
	}
	return nil
}

// OrganizationRepository is the organization view of a Store.
type OrganizationRepository struct{ s *Store }

func (r *OrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	org, ok := r.s.orgs[id]
	if !ok {
		return nil, domain.ErrOrganizationNotFound
	}
	return &org, nil
}

func (r *OrganizationRepository) ActiveModuleIDs(ctx context.Context, orgID uuid.UUID) ([]uuid.UUID, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	set, ok := r.s.orgModules[orgID]
	if !ok {
		return nil, domain.ErrOrganizationNotFound
	}
	return set.sorted(), nil
}

func (r *OrganizationRepository) AddModule(ctx context.Context, orgID, moduleID uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	set, ok := r.s.orgModules[orgID]
	if !ok {
		return false, domain.ErrOrganizationNotFound
	}
	if _, ok := r.s.modules[moduleID]; !ok {
		return false, domain.ErrModuleNotFound
	}
	if _, ok := set[moduleID]; ok {
		return false, nil
	}
	set[moduleID] = time.Now().UTC()
	return true, nil
}

func (r *OrganizationRepository) RemoveModule(ctx context.Context, orgID, moduleID uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	set, ok := r.s.orgModules[orgID]
	if !ok {
		return false, nil
	}
	if _, ok := set[moduleID]; !ok {
		return false, nil
	}
	delete(set, moduleID)
	return true, nil
}

// UserRepository is the user view of a Store.
type UserRepository struct{ s *Store }

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rec, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u := rec.user
	return &u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, rec := range r.s.users {
		if strings.EqualFold(rec.user.Email, email) {
			u := rec.user
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindRoles(ctx context.Context, userID uuid.UUID) ([]model.Role, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rec, ok := r.s.users[userID]
	if !ok {
		return nil, nil
	}
	roles := make([]model.Role, 0, len(rec.roleIDs))
	for id := range rec.roleIDs {
		if role, ok := r.s.roles[id]; ok {
			roles = append(roles, role)
		}
	}
	return roles, nil
}

func (r *UserRepository) FindPermissionKeys(ctx context.Context, userID uuid.UUID) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rec, ok := r.s.users[userID]
	if !ok {
		return nil, nil
	}
	keys := make(map[string]struct{}, len(rec.permissions))
	for k := range rec.permissions {
		keys[k] = struct{}{}
	}
	for roleID := range rec.roleIDs {
		for k := range r.s.rolePermissions[roleID] {
			keys[k] = struct{}{}
		}
	}
	out := make([]string, 0, len(keys))
	for k := range keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out, nil
}

func (r *UserRepository) FindOrganizationIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rec, ok := r.s.users[userID]
	if !ok {
		return nil, nil
	}
	out := make([]uuid.UUID, 0, len(rec.orgIDs))
	for id := range rec.orgIDs {
		out = append(out, id)
	}
	return out, nil
}

func (r *UserRepository) ActiveModuleIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rec, ok := r.s.users[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return rec.modules.sorted(), nil
}

func (r *UserRepository) AddModule(ctx context.Context, userID, moduleID uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.users[userID]
	if !ok {
		return false, domain.ErrUserNotFound
	}
	if _, ok := r.s.modules[moduleID]; !ok {
		return false, domain.ErrModuleNotFound
	}
	if _, ok := rec.modules[moduleID]; ok {
		return false, nil
	}
	rec.modules[moduleID] = time.Now().UTC()
	return true, nil
}

func (r *UserRepository) RemoveModule(ctx context.Context, userID, moduleID uuid.UUID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.users[userID]
	if !ok {
		return false, nil
	}
	if _, ok := rec.modules[moduleID]; !ok {
		return false, nil
	}
	delete(rec.modules, moduleID)
	return true, nil
}

// AttemptRepository is the activation attempt log view of a Store.
type AttemptRepository struct{ s *Store }

func (r *AttemptRepository) Create(ctx context.Context, attempt *model.ActivationAttempt) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if attempt.ID == uuid.Nil {
		attempt.ID = uuid.New()
	}
	if attempt.Timestamp.IsZero() {
		attempt.Timestamp = time.Now().UTC()
	}
	attempt.CreatedAt = attempt.Timestamp
	r.s.attempts = append(r.s.attempts, *attempt)
	return nil
}

func (r *AttemptRepository) Query(ctx context.Context, params repository.AttemptQueryParams) ([]model.ActivationAttempt, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var matched []model.ActivationAttempt
	// newest first
	for i := len(r.s.attempts) - 1; i >= 0; i-- {
		a := r.s.attempts[i]
		if !visible(a, params.Visibility) {
			continue
		}
		if params.ModuleID != nil && a.ModuleID != *params.ModuleID {
			continue
		}
		if params.Scope != "" && a.Scope != params.Scope {
			continue
		}
		if params.Success != nil && a.Success != *params.Success {
			continue
		}
		if !params.StartTime.IsZero() && a.Timestamp.Before(params.StartTime) {
			continue
		}
		if !params.EndTime.IsZero() && a.Timestamp.After(params.EndTime) {
			continue
		}
		matched = append(matched, a)
	}

	total := int64(len(matched))
	if params.Offset > 0 {
		if params.Offset >= len(matched) {
			return []model.ActivationAttempt{}, total, nil
		}
		matched = matched[params.Offset:]
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 100
	}
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func visible(a model.ActivationAttempt, v repository.AttemptVisibility) bool {
	if v.All || a.ActorID == v.ActorID {
		return true
	}
	if a.OrganizationID == nil {
		return false
	}
	for _, id := range v.OrganizationIDs {
		if id == *a.OrganizationID {
			return true
		}
	}
	return false
}
