package injector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/rpsarena/internal/config"
	"github.com/zeusync/rpsarena/internal/core/observability/log"
)

func TestInitializeApp(t *testing.T) {
	cfg := config.Default()
	cfg.Server.ListenAddr = "127.0.0.1:0"

	a, err := InitializeApp(cfg, log.NewNop())
	require.NoError(t, err)
	assert.Equal(t, cfg.Counts.Total(), a.World.Len())
	assert.NotNil(t, a.Server)
	assert.NotNil(t, a.Runner)
}

func TestInitializeAppWithoutServer(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Enabled = false

	a, err := InitializeApp(cfg, log.NewNop())
	require.NoError(t, err)
	assert.Nil(t, a.Server)
}
