package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultConfigFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSpec_MergesOverDefaults(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeConfig(t, dir, `
prefix: shop
paths:
  routes_dir: api/routes
series:
  - name: demo
    adjectives: [alpha, beta]
`)

	cfg, err := LoadSpec(path)
	require.NoError(t, err)

	assert.Equal(t, "shop", cfg.Prefix)
	assert.Equal(t, "api/routes", cfg.Paths.RoutesDir)
	assert.Equal(t, "apps/web/src/app/ebay", cfg.Paths.PagesDir, "unset nested keys keep defaults")
	assert.Equal(t, DefaultEntryAnchor, cfg.Splice.EntryAnchor)
	assert.Len(t, cfg.Categories, 5)
	require.Len(t, cfg.Series, 1, "lists replace defaults wholesale")
	assert.Equal(t, "demo", cfg.Series[0].Name)
	assert.Equal(t, dir, cfg.BaseDir())
	assert.Equal(t, filepath.Join(dir, "api/routes"), cfg.Resolve(cfg.Paths.RoutesDir))
}

func TestLoadSpec_InvalidToken(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, t.TempDir(), `
series:
  - name: demo
    adjectives: [Alpha]
`)

	_, err := LoadSpec(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.True(t, IsConfigError(err))
}

func TestLoadSpec_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := LoadSpec(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadSpec_InvalidYAML(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, t.TempDir(), "series: [unterminated")
	_, err := LoadSpec(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadSpecFromBytes(t *testing.T) {
	t.Parallel()
	cfg, err := LoadSpecFromBytes([]byte("default_series: storm\ndefault_start_phase: 3001\n"))
	require.NoError(t, err)
	assert.Equal(t, "storm", cfg.DefaultSeries)
	assert.Equal(t, 3001, cfg.DefaultStartPhase)

	_, err = LoadSpecFromBytes([]byte("default_series: hurricane\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownSeries)
}

func TestFindConfigFrom_WalksUp(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	want := writeConfig(t, root, "prefix: ebay\n")
	nested := filepath.Join(root, "apps", "api")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	got, err := findConfigFrom(nested)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFindConfigFrom_NotFound(t *testing.T) {
	t.Parallel()
	_, err := findConfigFrom(t.TempDir())
	if err == nil {
		t.Skip("a seriesgen.yaml exists above the temp directory")
	}
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestSaveSpec_RoundTrip(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", DefaultConfigFilename)

	cfg := Default()
	cfg.DefaultSeries = "wave"
	cfg.Storage.SecretKey = "never-written"
	require.NoError(t, SaveSpec(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "never-written")

	loaded, err := LoadSpec(path)
	require.NoError(t, err)
	assert.Equal(t, "wave", loaded.DefaultSeries)
	assert.Equal(t, cfg.Categories, loaded.Categories)
	assert.Equal(t, cfg.Series, loaded.Series)
}
