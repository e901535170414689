// Package storage persists uploaded images on the local filesystem, keyed
// by entity type and a generated unique name.
package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrInvalidPath  = errors.New("invalid path")
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

type FileStore struct {
	root   string
	logger *zap.Logger
}

func NewFileStore(root string, logger *zap.Logger) *FileStore {
	return &FileStore{root: root, logger: logger}
}

// Save writes the file under <root>/<scope>/<uuid>.<ext> and returns the
// generated file name.
func (s *FileStore) Save(scope string, extension string, data []byte) (string, error) {
	dir := filepath.Join(s.root, scope)

	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return "", err
	}

	name := uuid.NewString() + "." + strings.ToLower(extension)

	if err := os.WriteFile(filepath.Join(dir, name), data, filePermissions); err != nil {
		return "", err
	}

	return name, nil
}

func (s *FileStore) Read(relativePath string) ([]byte, error) {
	fullPath, err := s.resolve(relativePath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}

		return nil, err
	}

	return data, nil
}

// Remove deletes the stored file. Callers treat failures as best-effort;
// the database row is authoritative.
func (s *FileStore) Remove(relativePath string) error {
	fullPath, err := s.resolve(relativePath)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return ErrFileNotFound
		}

		return err
	}

	return nil
}

// resolve joins the relative path under the root and rejects any path that
// would escape it.
func (s *FileStore) resolve(relativePath string) (string, error) {
	fullPath := filepath.Join(s.root, filepath.Clean("/"+relativePath))

	if !strings.HasPrefix(fullPath, filepath.Clean(s.root)+string(os.PathSeparator)) {
		return "", ErrInvalidPath
	}

	return fullPath, nil
}

// ContentTypeForExtension infers the content type served for a stored file.
func ContentTypeForExtension(extension string) string {
	switch strings.ToLower(strings.TrimPrefix(extension, ".")) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "png":
		return "image/png"
	case "webp":
		return "image/webp"
	case "gif":
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}
