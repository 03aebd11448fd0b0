package infra

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"travelai/internal/config"
)

func TestInitRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	for _, url := range []string{mr.Addr(), "redis://" + mr.Addr() + "/0"} {
		cfg := config.NewForTesting()
		cfg.RedisURL = url
		client, err := InitRedis(context.Background(), cfg, zerolog.Nop())
		require.NoError(t, err)
		assert.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
		_ = client.Close()
	}
}

func TestInitRedis_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := config.NewForTesting()
	cfg.RedisURL = addr
	_, err := InitRedis(context.Background(), cfg, zerolog.Nop())
	assert.Error(t, err)
}

func TestInitPostgresql_RequiresURL(t *testing.T) {
	_, err := InitPostgresql(config.NewForTesting(), zerolog.Nop())
	assert.Error(t, err)
}
