package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dangerclosesec/modgate/internal/domain"
	"github.com/dangerclosesec/modgate/internal/model"
	"github.com/dangerclosesec/modgate/internal/repository"
	"github.com/google/uuid"
)

const catalogCacheKey = "modules:catalog"

// CatalogService is the read-mostly module registry.
type CatalogService struct {
	repo   repository.ModuleRepositoryIface
	cache  *CacheService
	logger *slog.Logger
}

// NewCatalogService creates a catalog. cache may be nil to disable caching.
func NewCatalogService(repo repository.ModuleRepositoryIface, cache *CacheService, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{repo: repo, cache: cache, logger: logger}
}

func (s *CatalogService) GetByID(ctx context.Context, id uuid.UUID) (*model.Module, error) {
	if id == uuid.Nil {
		return nil, domain.ErrModuleNotFound
	}
	return s.repo.FindByID(ctx, id)
}

func (s *CatalogService) GetByName(ctx context.Context, name string) (*model.Module, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrModuleNotFound
	}
	return s.repo.FindByName(ctx, name)
}

// Resolve looks a module up by id when ref parses as a uuid, otherwise by name.
func (s *CatalogService) Resolve(ctx context.Context, ref string) (*model.Module, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return s.GetByID(ctx, id)
	}
	return s.GetByName(ctx, ref)
}

// ListAll returns every catalog module, served from cache when available.
func (s *CatalogService) ListAll(ctx context.Context) ([]model.Module, error) {
	if s.cache == nil {
		return s.repo.FindAll(ctx)
	}

	var modules []model.Module
	err := s.cache.GetOrSet(ctx, catalogCacheKey, &modules, func() (interface{}, error) {
		return s.repo.FindAll(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("listing modules: %w", err)
	}
	return modules, nil
}

// ListCovering returns the catalog like ListAll, but when a cached copy lacks
// any of ids it is dropped and reloaded once. A module seeded by another
// process is then visible as soon as something is entitled to it.
func (s *CatalogService) ListCovering(ctx context.Context, ids []uuid.UUID) ([]model.Module, error) {
	modules, err := s.ListAll(ctx)
	if err != nil || s.cache == nil {
		return modules, err
	}

	if len(missingFrom(index(modules), ids)) == 0 {
		return modules, nil
	}

	s.logger.DebugContext(ctx, "cached catalog is missing entitled modules, reloading")
	s.Invalidate(ctx)
	return s.ListAll(ctx)
}

// Index returns the catalog keyed by module id, covering ids as ListCovering does.
func (s *CatalogService) Index(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.Module, error) {
	modules, err := s.ListCovering(ctx, ids)
	if err != nil {
		return nil, err
	}
	return index(modules), nil
}

func index(modules []model.Module) map[uuid.UUID]model.Module {
	idx := make(map[uuid.UUID]model.Module, len(modules))
	for _, m := range modules {
		idx[m.ID] = m
	}
	return idx
}

func missingFrom(idx map[uuid.UUID]model.Module, ids []uuid.UUID) []uuid.UUID {
	var missing []uuid.UUID
	for _, id := range ids {
		if _, ok := idx[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// Seed upserts catalog modules by name. It runs out-of-band from request handling.
func (s *CatalogService) Seed(ctx context.Context, modules []model.Module) error {
	for _, m := range modules {
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("%w: module name is required", domain.ErrInvalidInput)
		}
		if !m.PermissionType.Valid() {
			return fmt.Errorf("%w: module %q", domain.ErrInvalidPermissionType, m.Name)
		}
	}

	if err := s.repo.UpsertAll(ctx, modules); err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}

	s.Invalidate(ctx)
	s.logger.Info("module catalog seeded", "count", len(modules))
	return nil
}

// Invalidate drops the cached catalog.
func (s *CatalogService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, catalogCacheKey); err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.Warn("invalidating catalog cache", "error", err)
	}
}
