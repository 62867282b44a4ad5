package log

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug": LevelDebug,
		"":      LevelInfo,
		"INFO":  LevelInfo,
		"warn":  LevelWarn,
		"error": LevelError,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestLoggerFieldsReachZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core), LevelDebug)

	l.Named("arena").With(Int("agents", 3)).Info("placed",
		String("kind", "ROCK"),
		Uint64("tick", 7),
		Error(errors.New("boom")),
	)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "arena", entries[0].LoggerName)
	ctx := entries[0].ContextMap()
	assert.EqualValues(t, 3, ctx["agents"])
	assert.Equal(t, "ROCK", ctx["kind"])
	assert.EqualValues(t, 7, ctx["tick"])
	assert.Equal(t, "boom", ctx["error"])
}

func TestLogRespectsLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core), LevelWarn)

	l.Log(LevelInfo, "dropped")
	l.Log(LevelError, "kept")
	assert.Equal(t, 1, logs.Len())

	l.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, l.GetLevel())
	l.Log(LevelDebug, "kept too")
	assert.Equal(t, 2, logs.Len())
}

func TestProvideNeverNil(t *testing.T) {
	assert.NotNil(t, Provide())
}
