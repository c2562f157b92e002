package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points ENV_FILE at a missing file and clears the variables LoadConfig reads.
func isolate(t *testing.T) {
	t.Helper()

	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	for _, key := range []string{
		"ENVIRONMENT", "PORT", "LOG_LEVEL", "ALLOWED_ORIGINS", "STORE_DRIVER", "DATABASE_URL",
		"REDIS_URL", "CACHE_TTL", "BCRYPT_COST", "AVATAR_BASE_URL", "AVATAR_SIZE", "SEED_COUNT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, StoreDriverPostgres, cfg.StoreDriver)
	assert.NotEmpty(t, cfg.DatabaseDSN)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "https://mc-heads.net/avatar", cfg.AvatarBaseURL)
	assert.Equal(t, 400, cfg.AvatarSize)
	assert.Equal(t, 30, cfg.SeedCount)
	assert.Empty(t, cfg.AllowedOrigins)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("BCRYPT_COST", "12")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, StoreDriverMemory, cfg.StoreDriver)
	assert.Empty(t, cfg.DatabaseDSN)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=7070\nSEED_COUNT=5\n"), 0o600))
	t.Setenv("ENV_FILE", path)
	os.Unsetenv("PORT")
	os.Unsetenv("SEED_COUNT")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, 5, cfg.SeedCount)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"privileged port", map[string]string{"PORT": "80"}},
		{"non numeric port", map[string]string{"PORT": "http"}},
		{"unknown driver", map[string]string{"STORE_DRIVER": "mongo"}},
		{"production without dsn", map[string]string{"ENVIRONMENT": "production"}},
		{"bad ttl", map[string]string{"CACHE_TTL": "soon"}},
		{"bcrypt cost out of range", map[string]string{"BCRYPT_COST": "40"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
