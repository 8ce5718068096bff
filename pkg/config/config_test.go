package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-cuestionario/pkg/catalog"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("API_URL_UA", "https://api.example.test/ua")
	t.Setenv("API_URL_ACADEMICOS", "https://api.example.test/academicos")
	t.Setenv("API_URL_CUESTIONARIOS", "data/preguntas.yaml")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	unsetEnv(t, "REQUEST_TIMEOUT", "LOG_LEVEL", "DEBUG_FORMAT")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.test/ua", cfg.UnidadesURL)
	assert.Equal(t, time.Duration(0), cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.DebugFormat)

	sources, err := cfg.Sources()
	require.NoError(t, err)
	assert.Equal(t, catalog.SourceKindURL, sources.Unidades.Kind())
	assert.Equal(t, catalog.SourceKindURL, sources.Academicos.Kind())
	assert.Equal(t, catalog.SourceKindFile, sources.Cuestionarios.Kind())
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("API_URL_UA", "")
	t.Setenv("API_URL_ACADEMICOS", "")
	t.Setenv("API_URL_CUESTIONARIOS", "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UnidadesURL")
	assert.Contains(t, err.Error(), "CuestionariosURL")
}

func TestLoad_InvalidEnum(t *testing.T) {
	setRequired(t)
	t.Setenv("DEBUG_FORMAT", "xml")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DebugFormat")
}

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_EnvFile(t *testing.T) {
	unsetEnv(t, "API_URL_UA", "API_URL_CUESTIONARIOS", "REQUEST_TIMEOUT", "LOG_LEVEL")
	t.Setenv("API_URL_ACADEMICOS", "https://from-process.example.test/academicos")

	file := filepath.Join(t.TempDir(), ".env")
	content := "API_URL_UA=https://from-file.example.test/ua\n" +
		"API_URL_ACADEMICOS=https://from-file.example.test/academicos\n" +
		"API_URL_CUESTIONARIOS=./preguntas.json\n" +
		"REQUEST_TIMEOUT=5s\n" +
		"LOG_LEVEL=DEBUG\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, "https://from-file.example.test/ua", cfg.UnidadesURL)
	assert.Equal(t, "https://from-process.example.test/academicos", cfg.AcademicosURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestSources_InvalidURL(t *testing.T) {
	cfg := &Config{
		UnidadesURL:      "https://",
		AcademicosURL:    "a.json",
		CuestionariosURL: "b.json",
	}
	_, err := cfg.Sources()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_URL_UA")
}

func TestLoadEnv_NoFiles(t *testing.T) {
	n, err := LoadEnv([]string{filepath.Join(t.TempDir(), "none")})
	require.NoError(t, err)
	assert.Zero(t, n)
}
