package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-qrform/pkg/mecard"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "mecard", cfg.Output.Format)
	assert.Equal(t, "tui", cfg.Renderer)
	assert.False(t, cfg.Validation.StrictEmptyURL)
	assert.Equal(t, " *", cfg.Theme.RequiredSuffix)
	require.NoError(t, cfg.Validate())
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "qrform.yaml", `
output:
  format: vcard
  path: out.txt
renderer: vanilla
validation:
  strict_empty_url: true
labels:
  tel: Mobile
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "vcard", cfg.Output.Format)
	assert.Equal(t, "out.txt", cfg.Output.Path)
	assert.Equal(t, "vanilla", cfg.Renderer)
	assert.True(t, cfg.Validation.StrictEmptyURL)
	assert.Equal(t, map[string]string{"tel": "Mobile"}, cfg.Labels)
	assert.Equal(t, mecard.FormatVCard, cfg.Format())
	// untouched keys keep their defaults
	assert.Equal(t, "Invalid ", cfg.Theme.ErrorPrefix)
}

func TestLoad_MissingAndEmptyFiles(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)

	cfg, err = Load(writeFile(t, dir, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)

	cfg, err = Load(writeFile(t, dir, "comments.yaml", "# nothing here\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(writeFile(t, dir, "bad.yaml", "{{invalid yaml"))
	require.Error(t, err)

	_, err = Load(writeFile(t, dir, "unknown.yaml", "colour: red\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parsing")
}

func TestLoadLayered_LaterWins(t *testing.T) {
	dir := t.TempDir()
	global := writeFile(t, dir, "global.yaml", `
renderer: interactive
labels:
  tel: Mobile
  memo: Notes
theme:
  info_prefix: "> "
`)
	project := writeFile(t, dir, "project.yaml", `
renderer: vanilla
labels:
  memo: Comment
validation:
  strict_empty_url: false
`)

	cfg, err := LoadLayered(global, filepath.Join(dir, "missing.yaml"), project)
	require.NoError(t, err)
	assert.Equal(t, "vanilla", cfg.Renderer)
	assert.Equal(t, map[string]string{"tel": "Mobile", "memo": "Comment"}, cfg.Labels)
	assert.Equal(t, "> ", cfg.Theme.InfoPrefix)
	assert.Equal(t, " *", cfg.Theme.RequiredSuffix)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvFormat, "vcard")
	t.Setenv(EnvRenderer, "interactive")
	t.Setenv(EnvOutput, "card.txt")

	cfg := DefaultConfig()
	cfg.ApplyEnv()
	assert.Equal(t, "vcard", cfg.Output.Format)
	assert.Equal(t, "interactive", cfg.Renderer)
	assert.Equal(t, "card.txt", cfg.Output.Path)
}

func TestLoadDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", "QRFORM_FORMAT=vcard\nQRFORM_RENDERER=vanilla\n")
	t.Setenv(EnvRenderer, "tui")
	t.Setenv(EnvFormat, "")
	require.NoError(t, os.Unsetenv(EnvFormat))

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), path))

	cfg := DefaultConfig()
	cfg.ApplyEnv()
	assert.Equal(t, "vcard", cfg.Output.Format)
	assert.Equal(t, "tui", cfg.Renderer)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.Format = "qr"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Renderer = "preact"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Renderer = "Vanilla"
	assert.NoError(t, cfg.Validate())
}
