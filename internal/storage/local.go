package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// LocalStore stores objects on the local filesystem under a base directory
// and serves them under a public path prefix.
type LocalStore struct {
	baseDir    string
	publicPath string
	log        *zap.Logger
}

// NewLocalStore creates a local store rooted at baseDir.
func NewLocalStore(baseDir, publicPath string, log *zap.Logger) *LocalStore {
	return &LocalStore{
		baseDir:    baseDir,
		publicPath: strings.TrimRight(publicPath, "/"),
		log:        log,
	}
}

// resolve maps a key to an on-disk path, rejecting keys that would escape
// the base directory.
func (s *LocalStore) resolve(key string) (string, error) {
	clean := path.Clean("/" + key)
	if clean == "/" {
		return "", fmt.Errorf("empty key")
	}
	return filepath.Join(s.baseDir, filepath.FromSlash(clean)), nil
}

// Put writes the object to disk and returns its public URL path.
func (s *LocalStore) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error) {
	target, err := s.resolve(key)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	f, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", target, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("failed to write %s: %w", target, err)
	}

	s.log.Debug("stored file", zap.String("path", target), zap.Int64("size", size))
	return fmt.Sprintf("%s/%s", s.publicPath, strings.TrimLeft(path.Clean("/"+key), "/")), nil
}

// Delete removes the object from disk. A missing file is not an error.
func (s *LocalStore) Delete(ctx context.Context, key string) error {
	target, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", target, err)
	}
	return nil
}
