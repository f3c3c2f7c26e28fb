package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePathsWithHomeOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ROSTER_HOME", dir)

	p, err := ResolvePaths()
	require.NoError(t, err)

	assert.Equal(t, dir, p.Base)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), p.Config)
	assert.Equal(t, filepath.Join(dir, "logs"), p.Logs)
	assert.Equal(t, filepath.Join(dir, "catalog"), p.Catalog)
}

func TestEnsureDirs(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ROSTER_HOME", filepath.Join(dir, "nested"))

	p, err := ResolvePaths()
	require.NoError(t, err)
	require.NoError(t, p.EnsureDirs())

	info, err := os.Stat(p.Logs)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCatalogRoot(t *testing.T) {
	t.Setenv("ROSTER_HOME", t.TempDir())
	p, err := ResolvePaths()
	require.NoError(t, err)

	cfg := Defaults()
	assert.Equal(t, p.Catalog, p.CatalogRoot(cfg))

	cfg.Catalog.Root = "/explicit/root"
	assert.Equal(t, "/explicit/root", p.CatalogRoot(cfg))
}
