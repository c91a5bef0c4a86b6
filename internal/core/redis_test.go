// AngelaMos | 2026
// redis_test.go

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gleethreads/storefront-api/internal/config"
)

func TestRedisOptions(t *testing.T) {
	opts, err := redisOptions(config.RedisConfig{
		URL:          "redis://:s3cret@cache.internal:6380/2",
		PoolSize:     20,
		MinIdleConns: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, "cache.internal:6380", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, "s3cret", opts.Password)
	assert.Equal(t, 20, opts.PoolSize)
	assert.Equal(t, 4, opts.MinIdleConns)
	assert.Equal(t, redisPoolTimeout, opts.PoolTimeout)
}

func TestRedisOptionsKeepsLibraryPoolDefaults(t *testing.T) {
	opts, err := redisOptions(config.RedisConfig{URL: "redis://localhost:6379/0"})
	require.NoError(t, err)
	assert.Zero(t, opts.PoolSize)
}

func TestRedisOptionsBadURL(t *testing.T) {
	_, err := redisOptions(config.RedisConfig{URL: "http://localhost:6379"})
	assert.Error(t, err)
}

func TestRedisNilSafe(t *testing.T) {
	var r *Redis
	assert.NoError(t, r.Close())
	assert.Nil(t, r.PoolStats())
}
