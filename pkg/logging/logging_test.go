package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"DEBUG":   zapcore.DebugLevel,
		"warning": zapcore.WarnLevel,
		"warn":    zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}

	for in, want := range cases {
		assert.Equal(t, want, parseLevel(in), "level %q", in)
	}
}

func TestNopLoggerIsUsable(t *testing.T) {
	l := NewNop().With("k", "v").Named("test")
	l.Info("ignored", "n", 1)
	assert.NoError(t, l.Sync())
}

func TestNamedScopesEntries(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewFromZap(zap.New(core)).Named("sessions").With("session_id", "abc")

	l.Debug("dropped")
	l.Info("session opened")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "sessions", entries[0].LoggerName)
	assert.Equal(t, "session opened", entries[0].Message)
	assert.Equal(t, "abc", entries[0].ContextMap()["session_id"])
}
