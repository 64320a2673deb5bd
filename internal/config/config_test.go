package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, def, cfg)
}

func TestLoadFile_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
editor:
  tab_width: 8
  line_numbers: true
theme:
  status_bar: "#ff00ff"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Editor.TabWidth)
	assert.True(t, cfg.Editor.LineNumbers)
	assert.Equal(t, "#ff00ff", cfg.Theme.StatusBar)

	// Unset fields keep their defaults.
	assert.Equal(t, 1000, cfg.Editor.HistoryLimit)
	assert.Equal(t, 11, cfg.Editor.FontSize)
	assert.Equal(t, "#555555", cfg.Theme.ScrollbarThumb)
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("editor: [not a map"), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFile_RejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("editor:\n  tab_width: 99\n"), 0o644))

	_, err := LoadFile(path)
	assert.ErrorContains(t, err, "tab_width")
}

func TestValidate_FontSizeFloor(t *testing.T) {
	cfg := Default()
	cfg.Editor.FontSize = 5
	assert.Error(t, cfg.Validate())

	cfg.Editor.FontSize = 6
	assert.NoError(t, cfg.Validate())
}
