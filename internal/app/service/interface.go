package service

import (
	"context"

	"github.com/linksrv/shortener/internal/storage"
)

// ShortenerIface is the creation surface consumed by the HTTP layer.
type ShortenerIface interface {
	Shorten(ctx context.Context, original string) (*storage.URLMapping, error)
	Ping(ctx context.Context) error
}

// RedirectorIface resolves short codes, recording the click.
type RedirectorIface interface {
	Resolve(ctx context.Context, code string) (string, error)
}

// AdminIface is the administrative surface: bulk listing and deletion.
type AdminIface interface {
	ListAll(ctx context.Context) ([]storage.URLMapping, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
}
