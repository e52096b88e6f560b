// Package storage adaptadores de SnapshotStorage sobre sistema de archivos (afero) y Redis.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/jhoicas/Roster-api/internal/domain"
	"github.com/jhoicas/Roster-api/internal/domain/repository"
)

var _ repository.SnapshotStorage = (*FileStorage)(nil)

// FileStorage guarda cada slot como <dir>/<key>.json. Con afero.MemMapFs sirve como storage en memoria.
type FileStorage struct {
	fs  afero.Fs
	dir string
}

// NewFileStorage construye el adaptador sobre el filesystem indicado.
func NewFileStorage(fs afero.Fs, dir string) *FileStorage {
	if dir == "" {
		dir = "."
	}
	return &FileStorage{fs: fs, dir: dir}
}

// NewOSFileStorage storage sobre el disco local.
func NewOSFileStorage(dir string) *FileStorage {
	return NewFileStorage(afero.NewOsFs(), dir)
}

// NewMemoryStorage storage volátil, útil en tests y demos.
func NewMemoryStorage() *FileStorage {
	return NewFileStorage(afero.NewMemMapFs(), "/snapshots")
}

// Load lee el slot.
func (s *FileStorage) Load(_ context.Context, key string) ([]byte, error) {
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("leer snapshot: %w", err)
	}
	return data, nil
}

// Save escribe el slot en un archivo temporal y lo renombra para no dejar snapshots a medias.
func (s *FileStorage) Save(_ context.Context, key string, payload []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio: %w", err)
	}
	tmp := path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, payload, 0o644); err != nil {
		return fmt.Errorf("escribir snapshot: %w", err)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("renombrar snapshot: %w", err)
	}
	return nil
}

func (s *FileStorage) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", fmt.Errorf("%w: clave de snapshot %q", domain.ErrInvalidInput, key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}
