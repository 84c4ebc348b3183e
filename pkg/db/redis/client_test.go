package redis_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonotes/pkg/db/redis"
)

func TestNewClient(t *testing.T) {
	t.Run("connects to running server", func(t *testing.T) {
		srv := miniredis.RunT(t)

		client, err := redis.NewClient(context.Background(), &redis.Config{
			Host: srv.Host(),
			Port: mustPort(t, srv),
		})
		require.NoError(t, err)
		require.NotNil(t, client)
		assert.NoError(t, client.Close())
	})

	t.Run("fails when server is unreachable", func(t *testing.T) {
		client, err := redis.NewClient(context.Background(), &redis.Config{
			Host:        "127.0.0.1",
			Port:        1,
			DialTimeout: 100 * time.Millisecond,
		})
		require.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), redis.ErrConnect)
	})
}

func TestConfigAddress(t *testing.T) {
	cfg := &redis.Config{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", cfg.Address())
}

func mustPort(t *testing.T, srv *miniredis.Miniredis) int {
	t.Helper()
	port, err := strconv.Atoi(srv.Port())
	require.NoError(t, err)
	return port
}
