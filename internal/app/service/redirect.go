package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/linksrv/shortener/internal/cache"
	"github.com/linksrv/shortener/internal/storage"
)

// RedirectService resolves short codes to their original URLs, recording one
// click per successful resolution. The click write is always synchronous and
// atomic in the store, so counters stay exact under concurrent redirects.
type RedirectService struct {
	store  storage.Store
	cache  *cache.Cache // nil when Redis is not configured
	logger *zap.Logger
}

func NewRedirector(store storage.Store, c *cache.Cache, logger *zap.Logger) *RedirectService {
	return &RedirectService{
		store:  store,
		cache:  c,
		logger: logger,
	}
}

// Resolve returns the original URL for code and bumps its click accounting.
func (s *RedirectService) Resolve(ctx context.Context, code string) (string, error) {
	if s.cache != nil {
		if original, err := s.cache.GetOriginal(ctx, code); err == nil {
			// The click write doubles as the existence check: a stale cache
			// entry for a deleted mapping shows up as zero updated rows.
			if err := s.store.RecordClick(ctx, code); err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					if cerr := s.cache.Invalidate(ctx, code); cerr != nil {
						s.logger.Warn("cache invalidation failed", zap.String("code", code), zap.Error(cerr))
					}
				}
				return "", err
			}
			return original, nil
		}
	}

	m, err := s.store.IncrementClick(ctx, code)
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		if err := s.cache.SetOriginal(ctx, code, m.OriginalURL, cache.DefaultTTL); err != nil {
			s.logger.Warn("cache write failed", zap.String("code", code), zap.Error(err))
		}
	}

	return m.OriginalURL, nil
}
