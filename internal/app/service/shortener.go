package service

import (
	"context"
	"errors"
	"net/url"

	"go.uber.org/zap"

	"github.com/linksrv/shortener/internal/storage"
)

// maxGenerationAttempts bounds regeneration after code collisions. With a
// 64^8 code space a collision streak this long means something is wrong.
const maxGenerationAttempts = 5

// ShortenerService creates mappings: validation, duplicate detection, code
// generation and persistence.
type ShortenerService struct {
	store   storage.Store
	gen     *CodeGenerator
	logger  *zap.Logger
	baseURL string
}

func NewShortener(store storage.Store, gen *CodeGenerator, logger *zap.Logger, baseURL string) *ShortenerService {
	return &ShortenerService{
		store:   store,
		gen:     gen,
		logger:  logger,
		baseURL: baseURL,
	}
}

// validateURL accepts only absolute http(s) URLs with a host.
func validateURL(raw string) error {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return ErrInvalidURL
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidURL
	}
	return nil
}

// Shorten returns the mapping for original, creating it on first submission.
// Resubmitting a known URL returns the existing mapping unchanged.
func (s *ShortenerService) Shorten(ctx context.Context, original string) (*storage.URLMapping, error) {
	if err := validateURL(original); err != nil {
		return nil, err
	}

	existing, err := s.store.FindByOriginal(ctx, original)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	for attempt := 0; attempt < maxGenerationAttempts; attempt++ {
		code := s.gen.Generate()

		created, err := s.store.Insert(ctx, storage.URLMapping{
			OriginalURL: original,
			ShortURL:    s.baseURL + "/" + code,
			Code:        code,
		})

		switch {
		case err == nil:
			return created, nil

		case errors.Is(err, storage.ErrCodeConflict):
			s.logger.Warn("short code collision, regenerating", zap.String("code", code))

		case errors.Is(err, storage.ErrOriginalConflict):
			// Lost a race against an identical submission; converge on the
			// row the winner created.
			return s.store.FindByOriginal(ctx, original)

		default:
			return nil, err
		}
	}

	return nil, ErrGenerationExhausted
}

func (s *ShortenerService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
