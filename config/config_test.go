package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("SECRETS_DIR", t.TempDir())
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("ENV", "test")
	t.Setenv("CI", "")
	for _, key := range []string{
		"SERVER_PORT", "DB_DRIVER", "DB_HOST", "DB_PASSWORD", "JWT_SECRET", "JWT_TTL",
		"REDIS_URL", "RECENT_MEAL_WINDOW", "RECOMMENDATION_STRICT_SCALING", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigWithDefaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "fittrack", cfg.DBName)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 10, cfg.RecentMealWindow)
	assert.False(t, cfg.RecommendationStrictScaling)
}

func TestLoadConfigFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("REDIS_URL", "redis://localhost:6379/1")
	t.Setenv("RECOMMENDATION_STRICT_SCALING", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.Equal(t, "redis://localhost:6379/1", cfg.RedisURL)
	assert.True(t, cfg.RecommendationStrictScaling)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfigFileThenEnv(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server_port: \"7000\"\ndb_name: fromfile\nrecent_meal_window: 5\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("SERVER_PORT", "7100")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "7100", cfg.ServerPort)
	assert.Equal(t, "fromfile", cfg.DBName)
	assert.Equal(t, 5, cfg.RecentMealWindow)
}

func TestLoadConfigSecretsOverrideEnv(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	t.Setenv("SECRETS_DIR", dir)
	t.Setenv("JWT_SECRET", "from-env")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "jwt_secret"), []byte("from-secret\n"), 0o600))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-secret", cfg.JWTSecret)
}

func TestLoadConfigInvalidValues(t *testing.T) {
	isolate(t)
	t.Setenv("RECENT_MEAL_WINDOW", "abc")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("RECENT_MEAL_WINDOW", "25")
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "RECENT_MEAL_WINDOW")

	t.Setenv("RECENT_MEAL_WINDOW", "")
	t.Setenv("DB_DRIVER", "mongo")
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "DB_DRIVER")
}

func TestValidateConfigProduction(t *testing.T) {
	isolate(t)
	t.Setenv("ENV", "production")

	cfg := Default()
	err := ValidateConfig(cfg)
	assert.ErrorContains(t, err, "JWT_SECRET")
	assert.ErrorContains(t, err, "DB_PASSWORD")

	cfg.JWTSecret = "0123456789abcdef0123456789abcdef"
	cfg.DBPassword = "s3cret"
	assert.NoError(t, ValidateConfig(cfg))
}
