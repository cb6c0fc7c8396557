package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configVars = []string{
	"DOCFORM_BASE_URL",
	"DOCFORM_FORM",
	"DOCFORM_LOG_LEVEL",
	"DOCFORM_LOG_FORMAT",
	"DOCFORM_LOG_FILE",
	"DOCFORM_LOG_MAX_SIZE_MB",
	"DOCFORM_LOG_MAX_BACKUPS",
	"DOCFORM_REQUEST_TIMEOUT_SECONDS",
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configVars {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000", cfg.BaseURL)
	assert.Equal(t, "resume", cfg.Form)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Empty(t, cfg.LogFile)
	assert.Equal(t, 10, cfg.LogMaxSizeMB)
	assert.Equal(t, 0, cfg.RequestTimeoutS)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("DOCFORM_BASE_URL", "https://docs.example.com")
	t.Setenv("DOCFORM_FORM", "cover_letter")
	t.Setenv("DOCFORM_LOG_FORMAT", "json")
	t.Setenv("DOCFORM_REQUEST_TIMEOUT_SECONDS", "30")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "https://docs.example.com", cfg.BaseURL)
	assert.Equal(t, "cover_letter", cfg.Form)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 30, cfg.RequestTimeoutS)
}

func TestLoadReadsDotEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DOCFORM_FORM=cover_letter\nDOCFORM_LOG_LEVEL=debug\n"), 0o600))
	t.Setenv("DOCFORM_LOG_LEVEL", "warn")
	t.Cleanup(func() { _ = os.Unsetenv("DOCFORM_FORM") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cover_letter", cfg.Form)
	assert.Equal(t, "warn", cfg.LogLevel, "environment wins over .env")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("DOCFORM_FORM", "invoice")
	t.Setenv("DOCFORM_LOG_FORMAT", "xml")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Form")
	assert.Contains(t, err.Error(), "LogFormat")
}

func TestValidate(t *testing.T) {
	cfg := &Config{BaseURL: "not a url", Form: "resume", LogFormat: "console", LogMaxSizeMB: 1}
	assert.Error(t, cfg.Validate())

	cfg.BaseURL = "http://localhost:5000"
	assert.NoError(t, cfg.Validate())

	var nilCfg *Config
	assert.Error(t, nilCfg.Validate())
}
