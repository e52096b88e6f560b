package storage_test

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Roster-api/internal/domain"
	"github.com/jhoicas/Roster-api/internal/infrastructure/storage"
)

func TestFileStorage_SlotVacioDevuelveNotFound(t *testing.T) {
	s := storage.NewMemoryStorage()

	_, err := s.Load(context.Background(), "employeeAppState")

	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}

func TestFileStorage_SaveYLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := storage.NewFileStorage(fs, "/data")
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "employeeAppState", []byte(`{"employees":[]}`)))
	require.NoError(t, s.Save(ctx, "employeeAppState", []byte(`{"employees":[{"id":1}]}`)))

	got, err := s.Load(ctx, "employeeAppState")
	require.NoError(t, err)
	assert.JSONEq(t, `{"employees":[{"id":1}]}`, string(got))

	exists, err := afero.Exists(fs, "/data/employeeAppState.json")
	require.NoError(t, err)
	assert.True(t, exists)
	tmpExists, _ := afero.Exists(fs, "/data/employeeAppState.json.tmp")
	assert.False(t, tmpExists, "no debe quedar el archivo temporal")
}

func TestFileStorage_ClaveInvalida(t *testing.T) {
	s := storage.NewMemoryStorage()

	err := s.Save(context.Background(), "../etc/passwd", []byte("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = s.Load(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFileStorage_FilesystemDeSoloLectura(t *testing.T) {
	s := storage.NewFileStorage(afero.NewReadOnlyFs(afero.NewMemMapFs()), "/data")

	err := s.Save(context.Background(), "employeeAppState", []byte("{}"))
	assert.Error(t, err)
}
