package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/dangerclosesec/modgate/internal/config"
	"github.com/dangerclosesec/modgate/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCacheServiceFromConfig(t *testing.T) {
	t.Run("process-local without redis", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Catalog.CacheTTL = time.Minute
		cfg.Catalog.CleanupFreq = time.Minute

		c, err := service.NewCacheServiceFromConfig(context.Background(), cfg, nil)
		require.NoError(t, err)
		defer c.Close()

		require.NoError(t, c.Set(context.Background(), "k", []string{"CRM"}))
		var got []string
		require.NoError(t, c.Get(context.Background(), "k", &got))
		assert.Equal(t, []string{"CRM"}, got)
	})

	t.Run("unreachable redis fails fast", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Redis.Addr = "127.0.0.1:1"
		cfg.Catalog.CacheTTL = time.Minute
		cfg.Catalog.BreakerTrips = 5

		_, err := service.NewCacheServiceFromConfig(context.Background(), cfg, nil)
		assert.ErrorContains(t, err, "pinging redis")
	})
}
