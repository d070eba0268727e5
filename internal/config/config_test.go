package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/tracker")
	t.Setenv("JWT_SECRET", "s3cret")
}

func TestParse_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "project-tracker", cfg.JWTIssuer)
	assert.Equal(t, "project-tracker-web", cfg.JWTAudience)
	assert.Equal(t, 120, cfg.APIRateLimit)
	assert.Equal(t, time.Minute, cfg.APIRateWindow)
	assert.Equal(t, 5, cfg.AuthRateLimit)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.AutoMigrate)
	assert.Empty(t, cfg.RedisAddr)
}

func TestParse_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("API_RATE_WINDOW", "30s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("AUTO_MIGRATE", "true")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, 30*time.Second, cfg.APIRateWindow)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowOrigin)
	assert.True(t, cfg.AutoMigrate)
}

func TestParse_MissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")

	_, err := Parse()
	assert.Error(t, err)
}

func TestParse_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"API_RATE_LIMIT": "0",
		"BCRYPT_COST":    "2",
		"JWT_SECRET":     "   ",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(key, val)
			_, err := Parse()
			assert.Error(t, err)
		})
	}
}
