package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"pressroom"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, "download", cfg.DownloadDir)
}

func TestLoadConfig_Flags(t *testing.T) {
	setArgs(t, "-a", "https://cms.example.com", "-t", "30", "-p", "25", "-d", "files")

	cfg := LoadConfig()

	assert.Equal(t, "https://cms.example.com", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 25, cfg.PageSize)
	assert.Equal(t, "files", cfg.DownloadDir)
}

func TestLoadConfig_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"api_base_url":"https://json.example.com","request_timeout":"45s","page_size":7}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	setArgs(t, "-c", path)

	cfg := LoadConfig()

	assert.Equal(t, "https://json.example.com", cfg.APIBaseURL)
	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 7, cfg.PageSize)
	// Key absent from the file keeps the default.
	assert.Equal(t, "download", cfg.DownloadDir)
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"api_base_url":"https://json.example.com","page_size":7}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	setArgs(t, "-c", path, "-p", "50")

	cfg := LoadConfig()

	assert.Equal(t, "https://json.example.com", cfg.APIBaseURL)
	assert.Equal(t, 50, cfg.PageSize)
}

func TestLoadConfig_BadJSONPanics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	setArgs(t, "-c", path)

	assert.Panics(t, func() { LoadConfig() })
}

func TestLoadConfig_MissingFilePanics(t *testing.T) {
	setArgs(t, "-c", filepath.Join(t.TempDir(), "nope.json"))

	assert.Panics(t, func() { LoadConfig() })
}
