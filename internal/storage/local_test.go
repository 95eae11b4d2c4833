package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLocalStore_PutAndDelete(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "/uploads", zap.NewNop())

	url, err := store.Put(context.Background(), "projects/file-abc.png", "image/png", strings.NewReader("data"), 4)

	assert.NoError(t, err)
	assert.Equal(t, "/uploads/projects/file-abc.png", url)

	content, err := os.ReadFile(filepath.Join(dir, "projects", "file-abc.png"))
	assert.NoError(t, err)
	assert.Equal(t, "data", string(content))

	assert.NoError(t, store.Delete(context.Background(), "projects/file-abc.png"))
	_, err = os.Stat(filepath.Join(dir, "projects", "file-abc.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStore_DeleteMissingIsNotAnError(t *testing.T) {
	store := NewLocalStore(t.TempDir(), "/uploads", zap.NewNop())

	assert.NoError(t, store.Delete(context.Background(), "general/never-existed.pdf"))
}

func TestLocalStore_RejectsEscapingKeys(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "/uploads", zap.NewNop())

	// Traversal segments collapse inside the base directory instead of
	// escaping it.
	url, err := store.Put(context.Background(), "../../outside.txt", "text/plain", strings.NewReader("x"), 1)
	assert.NoError(t, err)
	assert.Equal(t, "/uploads/outside.txt", url)

	_, err = os.Stat(filepath.Join(dir, "outside.txt"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(filepath.Dir(dir), "outside.txt"))
	assert.True(t, os.IsNotExist(err))
}
