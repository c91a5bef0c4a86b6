// AngelaMos | 2026
// config_test.go

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/glee")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	c, err := load("")
	require.NoError(t, err)

	assert.Equal(t, 8080, c.Server.Port)
	assert.Equal(t, 24*time.Hour, c.JWT.AccessTokenExpire)
	assert.Equal(t, int64(5<<20), c.Upload.MaxBytes)
	assert.Equal(t, "Glee Threads", c.Store.Name)
	assert.False(t, c.Storage.Enabled())
	assert.True(t, c.IsDevelopment())
}

func TestLoadFileThenEnvOverride(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")

	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := []byte("server:\n  port: 7070\nstore:\n  currency: USD\n")
	require.NoError(t, os.WriteFile(path, yml, 0o600))

	c, err := load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, c.Server.Port)
	assert.Equal(t, "USD", c.Store.Currency)
}

func TestLoadMissingFileIsIgnored(t *testing.T) {
	setRequiredEnv(t)

	_, err := load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing secret",
			env:  map[string]string{"JWT_SECRET": ""},
		},
		{
			name: "short secret in production",
			env: map[string]string{
				"JWT_SECRET":  "short",
				"ENVIRONMENT": "production",
			},
		},
		{
			name: "bucket without public url",
			env:  map[string]string{"S3_BUCKET": "assets"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := load("")
			assert.Error(t, err)
		})
	}
}
