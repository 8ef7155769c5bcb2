package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStorage keeps mappings in process memory. It backs tests and runs
// without a database or storage file configured.
type MemoryStorage struct {
	mu         sync.Mutex
	byCode     map[string]*URLMapping
	byOriginal map[string]*URLMapping
	byID       map[string]*URLMapping
}

func CreateMemoryStorage() (*MemoryStorage, error) {
	return &MemoryStorage{
		byCode:     make(map[string]*URLMapping),
		byOriginal: make(map[string]*URLMapping),
		byID:       make(map[string]*URLMapping),
	}, nil
}

func (m *MemoryStorage) FindByOriginal(_ context.Context, original string) (*URLMapping, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if r, ok := m.byOriginal[original]; ok {
		c := *r
		return &c, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryStorage) FindByCode(_ context.Context, code string) (*URLMapping, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if r, ok := m.byCode[code]; ok {
		c := *r
		return &c, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryStorage) FindByID(_ context.Context, id string) (*URLMapping, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if r, ok := m.byID[id]; ok {
		c := *r
		return &c, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryStorage) Insert(_ context.Context, v URLMapping) (*URLMapping, error) {
	if v.OriginalURL == "" || v.Code == "" {
		return nil, ErrValidation
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byCode[v.Code]; ok {
		return nil, ErrCodeConflict
	}
	if _, ok := m.byOriginal[v.OriginalURL]; ok {
		return nil, ErrOriginalConflict
	}

	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now()
	}

	r := v
	m.byCode[r.Code] = &r
	m.byOriginal[r.OriginalURL] = &r
	m.byID[r.ID] = &r

	c := r
	return &c, nil
}

func (m *MemoryStorage) IncrementClick(_ context.Context, code string) (*URLMapping, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.byCode[code]
	if !ok {
		return nil, ErrNotFound
	}

	now := time.Now()
	r.ClickCount++
	r.LastAccessed = &now

	c := *r
	return &c, nil
}

func (m *MemoryStorage) RecordClick(ctx context.Context, code string) error {
	_, err := m.IncrementClick(ctx, code)
	return err
}

func (m *MemoryStorage) ListAll(_ context.Context) ([]URLMapping, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := make([]URLMapping, 0, len(m.byID))
	for _, r := range m.byID {
		all = append(all, *r)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	return all, nil
}

func (m *MemoryStorage) DeleteByID(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.byID[id]
	if !ok {
		return false, nil
	}

	delete(m.byID, id)
	delete(m.byCode, r.Code)
	delete(m.byOriginal, r.OriginalURL)

	return true, nil
}

func (m *MemoryStorage) Ping(_ context.Context) error {
	return nil
}
