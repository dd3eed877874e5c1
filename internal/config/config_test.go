// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/zotero-helper/pkg/types"
)

// chdir changes the working directory for the duration of the test,
// mirroring t.Chdir (which requires Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("", "zotero-helper/test")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:23119", cfg.Zotero.BaseURL)
	assert.Equal(t, 0, cfg.Zotero.APIUser)
	assert.Equal(t, 30*time.Second, cfg.Zotero.Timeout)
	assert.Equal(t, "zotero-helper/test", cfg.Zotero.UserAgent)
	assert.Equal(t, 1, cfg.Bridge.Library)
	assert.Empty(t, cfg.Bridge.Token)
	// The default token file path has ~ expanded.
	assert.True(t, filepath.IsAbs(cfg.Bridge.TokenFile) || cfg.Bridge.TokenFile == "~/.config/zotero-bridge/token")
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := `base_url: http://localhost:9999
api_user: 3
timeout: 5s
bridge:
  library: 2
  token: file-token
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path, "zotero-helper/test")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999", cfg.Zotero.BaseURL)
	assert.Equal(t, 3, cfg.Zotero.APIUser)
	assert.Equal(t, 5*time.Second, cfg.Zotero.Timeout)
	assert.Equal(t, 2, cfg.Bridge.Library)
	assert.Equal(t, "file-token", cfg.Bridge.Token)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: http://from-file\n"), 0o644))

	t.Setenv("ZOTERO_BASE_URL", "http://from-env")

	cfg, err := Load(path, "zotero-helper/test")
	require.NoError(t, err)
	assert.Equal(t, "http://from-env", cfg.Zotero.BaseURL)
}

func TestLoadDiscoversWorkingDirConfig(t *testing.T) {
	dir := t.TempDir()
	content := "base_url: http://discovered:23119\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "zotero-helper.yaml"), []byte(content), 0o644))
	chdir(t, dir)

	cfg, err := Load("", "zotero-helper/test")
	require.NoError(t, err)
	assert.Equal(t, "http://discovered:23119", cfg.Zotero.BaseURL)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), "zotero-helper/test")
	require.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: [unclosed\n"), 0o644))

	_, err := Load(path, "zotero-helper/test")
	require.Error(t, err)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "x"), ExpandHome("~/x"))
	assert.Equal(t, "/abs/path", ExpandHome("/abs/path"))
	assert.Equal(t, "relative", ExpandHome("relative"))
}

func TestNewHTTPClientTimeout(t *testing.T) {
	c := NewHTTPClient(types.HTTPConfig{Timeout: 7 * time.Second})
	assert.Equal(t, 7*time.Second, c.Timeout)
}
