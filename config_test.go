package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	rc := `save_directory: ~/folds
confirmations: false
silhouette: donut
png_size: 300
`
	require.NoError(t, os.WriteFile(filepath.Join(home, configFileName), []byte(rc), 0o600))
	t.Setenv("PAPERFOLD_PNG_SIZE", "640")
	t.Setenv("PAPERFOLD_SHOW_MATERIAL", "false")

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "folds"), cfg.SaveDirectory)
	assert.False(t, cfg.Confirmations)
	assert.False(t, cfg.ShowMaterial)
	assert.Equal(t, "donut", cfg.Silhouette)
	assert.Equal(t, 640, cfg.PNGSize)
}

func TestLoadConfigExplicitPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_file: /tmp/paperfold.log\npng_size: -4\n"), 0o600))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/paperfold.log", cfg.LogFile)
	assert.Equal(t, 800, cfg.PNGSize)
	assert.True(t, cfg.Confirmations)
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("confirmations: [\n"), 0o600))

	_, err := loadConfig(path)
	assert.Error(t, err)
}

func TestGetSavePath(t *testing.T) {
	var none *Config
	assert.Equal(t, "a.png", none.GetSavePath("a.png"))

	dir := filepath.Join(t.TempDir(), "out")
	cfg := &Config{SaveDirectory: dir}
	assert.Equal(t, filepath.Join(dir, "a.png"), cfg.GetSavePath("a.png"))
	assert.DirExists(t, dir)
}

func TestNewLogger(t *testing.T) {
	log, err := newLogger("")
	require.NoError(t, err)
	log.Info("dropped")

	path := filepath.Join(t.TempDir(), "paperfold.log")
	log, err = newLogger(path)
	require.NoError(t, err)
	log.Info("fold")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fold")
}
