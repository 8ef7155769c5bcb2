package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/linksrv/shortener/internal/cache"
	"github.com/linksrv/shortener/internal/storage"
)

// AdminService lists and deletes mappings.
type AdminService struct {
	store  storage.Store
	cache  *cache.Cache // nil when Redis is not configured
	logger *zap.Logger
}

func NewAdmin(store storage.Store, c *cache.Cache, logger *zap.Logger) *AdminService {
	return &AdminService{
		store:  store,
		cache:  c,
		logger: logger,
	}
}

// ListAll returns every mapping, newest first.
func (s *AdminService) ListAll(ctx context.Context) ([]storage.URLMapping, error) {
	return s.store.ListAll(ctx)
}

// DeleteByID removes a mapping. It reports false when no mapping has the id
// and ErrInvalidID when the id is not a UUID, so garbage never reaches the
// store's UUID column.
func (s *AdminService) DeleteByID(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, ErrInvalidID
	}

	m, err := s.store.FindByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	ok, err := s.store.DeleteByID(ctx, id)
	if err != nil || !ok {
		return ok, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, m.Code); err != nil {
			s.logger.Warn("cache invalidation failed", zap.String("code", m.Code), zap.Error(err))
		}
	}

	return true, nil
}
