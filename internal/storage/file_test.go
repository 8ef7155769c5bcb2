package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFileStorage_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.jsonl")

	fs, err := NewFileStorage(path, zap.NewNop())
	require.NoError(t, err)

	created, err := fs.Insert(context.Background(), URLMapping{
		OriginalURL: "https://example.com",
		ShortURL:    "http://baseurl/abc12345",
		Code:        "abc12345",
	})
	require.NoError(t, err)

	_, err = fs.IncrementClick(context.Background(), "abc12345")
	require.NoError(t, err)
	require.NoError(t, fs.Close())

	reopened, err := NewFileStorage(path, zap.NewNop())
	require.NoError(t, err)
	defer reopened.Close()

	m, err := reopened.FindByCode(context.Background(), "abc12345")
	require.NoError(t, err)
	assert.Equal(t, created.ID, m.ID)
	assert.EqualValues(t, 1, m.ClickCount)
	require.NotNil(t, m.LastAccessed)
}

func TestFileStorage_DeleteSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.jsonl")

	fs, err := NewFileStorage(path, zap.NewNop())
	require.NoError(t, err)

	created, err := fs.Insert(context.Background(), URLMapping{
		OriginalURL: "https://example.com",
		ShortURL:    "http://baseurl/abc12345",
		Code:        "abc12345",
	})
	require.NoError(t, err)

	ok, err := fs.DeleteByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, fs.Close())

	reopened, err := NewFileStorage(path, zap.NewNop())
	require.NoError(t, err)
	defer reopened.Close()

	_, err = reopened.FindByCode(context.Background(), "abc12345")
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := reopened.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestFileStorage_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.jsonl")

	fs, err := NewFileStorage(path, zap.NewNop())
	require.NoError(t, err)
	defer fs.Close()

	all, err := fs.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}
