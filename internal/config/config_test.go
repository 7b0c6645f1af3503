package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "http://localhost:3333", cfg.BackendBaseURL)
	assert.True(t, cfg.BreakerEnabled)
}

func TestLoad_ProductionWithDefaultSecret_Fails(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SECURE_COOKIES", "true")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestLoad_ProductionWithoutSecureCookies_Fails(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SESSION_SECRET", "a-real-secret")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SECURE_COOKIES")
}

func TestLoad_MalformedBackendURL_Fails(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "localhost:3333")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_CORSOrigins_SplitOnComma(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}
