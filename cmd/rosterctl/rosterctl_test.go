package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Roster-api/internal/application/dto"
)

func run(t *testing.T, args ...string) []byte {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.Bytes()
}

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("STORAGE_DRIVER", "file")
	t.Setenv("STORAGE_PATH", filepath.Join(dir, "data"))
	t.Setenv("LOG_LEVEL", "error")
	return dir
}

func TestSeedYShow(t *testing.T) {
	setupEnv(t)

	var seeded seedOutput
	require.NoError(t, json.Unmarshal(run(t, "seed", "--count", "6"), &seeded))
	assert.Equal(t, 6, seeded.Employees)

	var page dto.EmployeeListResponse
	require.NoError(t, json.Unmarshal(run(t, "show", "--view", "grid", "--page", "2"), &page))
	require.Len(t, page.Items, 2)
	assert.Equal(t, 5, page.Items[0].ID)
	assert.Equal(t, 2, page.Page.TotalPages)
}

func TestExportEImport(t *testing.T) {
	dir := setupEnv(t)
	run(t, "seed", "--count", "2")

	file := filepath.Join(dir, "out.xml")
	var exported exportOutput
	require.NoError(t, json.Unmarshal(run(t, "export", "--format", "xml", "-o", file), &exported))
	assert.Equal(t, file, exported.File)
	_, err := os.Stat(file)
	require.NoError(t, err)

	var imported importOutput
	require.NoError(t, json.Unmarshal(run(t, "import", "-f", file), &imported))
	assert.Equal(t, 2, imported.Imported)

	var page dto.EmployeeListResponse
	require.NoError(t, json.Unmarshal(run(t, "show"), &page))
	assert.Equal(t, 4, page.Page.Total)
}

func TestHistory_StorageSinRevisiones(t *testing.T) {
	setupEnv(t)

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"history"})
	assert.Error(t, cmd.Execute())
}
