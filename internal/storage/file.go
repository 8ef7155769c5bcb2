package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// fileRecord is one journal line: the mapping state after a mutation, or a
// tombstone when Deleted is set.
type fileRecord struct {
	URLMapping
	Deleted bool `json:"deleted,omitempty"`
}

// FileStorage is a MemoryStorage whose mutations are journaled to a
// JSON-lines file. The journal is replayed on open, last record per id wins.
type FileStorage struct {
	mem    *MemoryStorage
	file   *os.File
	logger *zap.Logger

	mu sync.Mutex // serializes journal appends
}

func NewFileStorage(p string, logger *zap.Logger) (*FileStorage, error) {
	if err := os.MkdirAll(filepath.Dir(p), 0o770); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(p, os.O_RDWR|os.O_CREATE, 0o660)
	if err != nil {
		return nil, err
	}

	mem, err := CreateMemoryStorage()
	if err != nil {
		return nil, err
	}

	fs := &FileStorage{
		mem:    mem,
		file:   file,
		logger: logger,
	}

	if err := fs.replay(); err != nil {
		file.Close()
		return nil, err
	}

	return fs, nil
}

func (fs *FileStorage) replay() error {
	latest := make(map[string]fileRecord)
	order := make([]string, 0)

	scanner := bufio.NewScanner(fs.file)
	for scanner.Scan() {
		var r fileRecord
		if err := json.Unmarshal(scanner.Bytes(), &r); err != nil {
			return fmt.Errorf("corrupt journal line: %w", err)
		}
		if _, seen := latest[r.ID]; !seen {
			order = append(order, r.ID)
		}
		latest[r.ID] = r
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading journal: %w", err)
	}

	for _, id := range order {
		r := latest[id]
		if r.Deleted {
			continue
		}
		m := r.URLMapping
		fs.mem.byCode[m.Code] = &m
		fs.mem.byOriginal[m.OriginalURL] = &m
		fs.mem.byID[m.ID] = &m
	}

	fs.logger.Info("journal replayed", zap.Int("mappings", len(fs.mem.byID)))
	return nil
}

func (fs *FileStorage) append(r fileRecord) error {
	b, err := json.Marshal(r)
	if err != nil {
		return err
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()

	_, err = fs.file.Write(append(b, '\n'))
	return err
}

func (fs *FileStorage) Close() error {
	return fs.file.Close()
}

func (fs *FileStorage) FindByOriginal(ctx context.Context, original string) (*URLMapping, error) {
	return fs.mem.FindByOriginal(ctx, original)
}

func (fs *FileStorage) FindByCode(ctx context.Context, code string) (*URLMapping, error) {
	return fs.mem.FindByCode(ctx, code)
}

func (fs *FileStorage) FindByID(ctx context.Context, id string) (*URLMapping, error) {
	return fs.mem.FindByID(ctx, id)
}

func (fs *FileStorage) Insert(ctx context.Context, v URLMapping) (*URLMapping, error) {
	r, err := fs.mem.Insert(ctx, v)
	if err != nil {
		return nil, err
	}
	if err := fs.append(fileRecord{URLMapping: *r}); err != nil {
		return nil, err
	}
	return r, nil
}

func (fs *FileStorage) IncrementClick(ctx context.Context, code string) (*URLMapping, error) {
	r, err := fs.mem.IncrementClick(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := fs.append(fileRecord{URLMapping: *r}); err != nil {
		return nil, err
	}
	return r, nil
}

func (fs *FileStorage) RecordClick(ctx context.Context, code string) error {
	_, err := fs.IncrementClick(ctx, code)
	return err
}

func (fs *FileStorage) ListAll(ctx context.Context) ([]URLMapping, error) {
	return fs.mem.ListAll(ctx)
}

func (fs *FileStorage) DeleteByID(ctx context.Context, id string) (bool, error) {
	r, err := fs.mem.FindByID(ctx, id)
	if err != nil {
		return false, nil
	}

	ok, err := fs.mem.DeleteByID(ctx, id)
	if err != nil || !ok {
		return ok, err
	}

	if err := fs.append(fileRecord{URLMapping: *r, Deleted: true}); err != nil {
		return false, err
	}
	return true, nil
}

func (fs *FileStorage) Ping(ctx context.Context) error {
	return fs.mem.Ping(ctx)
}
