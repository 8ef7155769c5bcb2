// Package storage defines the mapping store contract shared by the
// in-memory, file-backed and Postgres implementations.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no mapping exists for the given key.
	ErrNotFound = errors.New("mapping not found")

	// ErrCodeConflict is returned by Insert when the short code is already taken.
	ErrCodeConflict = errors.New("short code already exists")

	// ErrOriginalConflict is returned by Insert when the original URL is
	// already mapped.
	ErrOriginalConflict = errors.New("original url already exists")

	// ErrValidation is returned by Insert when required fields are missing.
	ErrValidation = errors.New("mapping is missing required fields")
)

// Store persists URL mappings. Implementations assign ID and CreatedAt on
// Insert when the caller leaves them empty.
type Store interface {
	FindByOriginal(ctx context.Context, original string) (*URLMapping, error)
	FindByCode(ctx context.Context, code string) (*URLMapping, error)
	FindByID(ctx context.Context, id string) (*URLMapping, error)
	Insert(ctx context.Context, m URLMapping) (*URLMapping, error)

	// IncrementClick atomically bumps the click counter and the last-accessed
	// timestamp for the mapping with the given code and returns the updated row.
	IncrementClick(ctx context.Context, code string) (*URLMapping, error)

	// RecordClick is IncrementClick without the read-back, for callers that
	// already hold the mapping.
	RecordClick(ctx context.Context, code string) error

	// ListAll returns every mapping, newest first.
	ListAll(ctx context.Context) ([]URLMapping, error)

	// DeleteByID reports whether a mapping was removed.
	DeleteByID(ctx context.Context, id string) (bool, error)

	Ping(ctx context.Context) error
}
