package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 10, cfg.HistoryLimit)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MATHQUEST_PORT", "9090")
	t.Setenv("MATHQUEST_CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("MATHQUEST_READ_TIMEOUT", "5s")
	t.Setenv("MATHQUEST_HISTORY_LIMIT", "25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 25, cfg.HistoryLimit)
}

func TestLoad_PortFallback(t *testing.T) {
	t.Setenv("PORT", "3000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric port", "MATHQUEST_PORT", "not-a-port"},
		{"zero history limit", "MATHQUEST_HISTORY_LIMIT", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestLoad_BadDurationFallsBack(t *testing.T) {
	t.Setenv("MATHQUEST_READ_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
}
