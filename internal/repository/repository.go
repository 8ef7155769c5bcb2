// Package repository implements the mapping store on PostgreSQL.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/linksrv/shortener/internal/storage"
)

const mappingColumns = "id, original_url, short_url, url_code, click_count, created_at, last_accessed"

// InitDB opens the database, verifies the connection and bootstraps the
// schema. It panics on failure: without the configured backend the process
// has nothing to serve.
func InitDB(dsn string, logger *zap.Logger) *sql.DB {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	createTable := `
		CREATE TABLE IF NOT EXISTS url_mappings (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		original_url TEXT UNIQUE NOT NULL,
		short_url TEXT NOT NULL,
		url_code TEXT UNIQUE NOT NULL,
		click_count BIGINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		last_accessed TIMESTAMPTZ
	);`

	if _, err := db.Exec(createTable); err != nil {
		logger.Fatal("cannot create url_mappings table", zap.Error(err))
	}

	return db
}

// URLRepository is the PostgreSQL-backed storage.Store.
type URLRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func CreateURLRepository(db *sql.DB, logger *zap.Logger) *URLRepository {
	return &URLRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMapping(row rowScanner) (*storage.URLMapping, error) {
	var m storage.URLMapping
	var lastAccessed sql.NullTime

	err := row.Scan(&m.ID, &m.OriginalURL, &m.ShortURL, &m.Code, &m.ClickCount, &m.CreatedAt, &lastAccessed)
	if err != nil {
		return nil, err
	}

	if lastAccessed.Valid {
		t := lastAccessed.Time
		m.LastAccessed = &t
	}
	return &m, nil
}

func (r *URLRepository) findBy(ctx context.Context, column, value string) (*storage.URLMapping, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+mappingColumns+" FROM url_mappings WHERE "+column+" = $1;", value)

	m, err := scanMapping(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *URLRepository) FindByOriginal(ctx context.Context, original string) (*storage.URLMapping, error) {
	return r.findBy(ctx, "original_url", original)
}

func (r *URLRepository) FindByCode(ctx context.Context, code string) (*storage.URLMapping, error) {
	return r.findBy(ctx, "url_code", code)
}

func (r *URLRepository) FindByID(ctx context.Context, id string) (*storage.URLMapping, error) {
	return r.findBy(ctx, "id", id)
}

func (r *URLRepository) Insert(ctx context.Context, v storage.URLMapping) (*storage.URLMapping, error) {
	if v.OriginalURL == "" || v.Code == "" {
		return nil, storage.ErrValidation
	}

	row := r.db.QueryRowContext(ctx,
		`INSERT INTO url_mappings (original_url, short_url, url_code)
		 VALUES ($1, $2, $3)
		 RETURNING `+mappingColumns+`;`,
		v.OriginalURL, v.ShortURL, v.Code,
	)

	m, err := scanMapping(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			if pgErr.ConstraintName == "url_mappings_original_url_key" {
				return nil, storage.ErrOriginalConflict
			}
			return nil, storage.ErrCodeConflict
		}
		r.logger.Error("insert failed", zap.Error(err))
		return nil, err
	}

	return m, nil
}

func (r *URLRepository) IncrementClick(ctx context.Context, code string) (*storage.URLMapping, error) {
	// Single statement keeps the counter exact under concurrent redirects.
	row := r.db.QueryRowContext(ctx,
		`UPDATE url_mappings
		 SET click_count = click_count + 1, last_accessed = now()
		 WHERE url_code = $1
		 RETURNING `+mappingColumns+`;`,
		code,
	)

	m, err := scanMapping(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *URLRepository) RecordClick(ctx context.Context, code string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE url_mappings
		 SET click_count = click_count + 1, last_accessed = now()
		 WHERE url_code = $1;`,
		code,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (r *URLRepository) ListAll(ctx context.Context) ([]storage.URLMapping, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+mappingColumns+" FROM url_mappings ORDER BY created_at DESC;")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	mappings := make([]storage.URLMapping, 0)
	for rows.Next() {
		m, err := scanMapping(rows)
		if err != nil {
			return nil, err
		}
		mappings = append(mappings, *m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return mappings, nil
}

func (r *URLRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM url_mappings WHERE id = $1;", id)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *URLRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

var _ storage.Store = (*URLRepository)(nil)
