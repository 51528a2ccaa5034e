package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/amirhossein-jamali/studrev/internal/domain/port/core"
)

func TestZapLogger_FieldsAndLevels(t *testing.T) {
	observed, logs := observer.New(zap.DebugLevel)
	log := NewZapLoggerWithCore(observed, core.LogLevelInfo)

	log.Debug("hidden", nil)
	log.Info("Session completed", map[string]any{"session": 2, "email": "a@b.com"})
	log.Error("Failed to save question pool", map[string]any{"error": errors.New("disk full")})

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)

	assert.Equal(t, "Session completed", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 2, fields["session"])
	assert.Equal(t, "a@b.com", fields["email"])

	assert.Equal(t, zap.ErrorLevel, entries[1].Level)
	assert.Equal(t, "disk full", entries[1].ContextMap()["error"])
}

func TestZapLogger_SetLevel(t *testing.T) {
	observed, logs := observer.New(zap.DebugLevel)
	log := NewZapLoggerWithCore(observed, core.LogLevelError)

	log.Warn("dropped", nil)
	assert.Equal(t, 0, logs.Len())

	log.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, log.GetLevel())

	log.Debug("kept", nil)
	assert.Equal(t, 1, logs.Len())
}

func TestNewZapLogger(t *testing.T) {
	for _, production := range []bool{true, false} {
		log, err := NewZapLogger(production, core.LogLevelWarn)
		require.NoError(t, err)
		assert.Equal(t, core.LogLevelWarn, log.GetLevel())
	}
}

func TestNoopLogger(t *testing.T) {
	var log core.Logger = NewNoopLogger()
	log.SetLevel(core.LogLevelError)
	log.Info("ignored", map[string]any{"k": "v"})
	assert.Equal(t, core.LogLevelError, log.GetLevel())
	assert.NoError(t, log.Flush())
}
