package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.SupabaseConfigured())
}

func TestSupabaseConfiguredNeedsBothValues(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://example.supabase.co")
	assert.False(t, Load().SupabaseConfigured())

	t.Setenv("SUPABASE_SERVICE_KEY", "service-key")
	assert.True(t, Load().SupabaseConfigured())
}

func TestCORSOriginListParsing(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://vyntra.cl, https://www.vyntra.cl ,")

	cfg := Load()

	assert.Equal(t, []string{"https://vyntra.cl", "https://www.vyntra.cl"}, cfg.CORSAllowedOrigins)
}
