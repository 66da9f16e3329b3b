package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_ReturnsWorkingLogger(t *testing.T) {
	logger, err := New(true)

	require.NoError(t, err)
	assert.NotNil(t, logger)
	logger.Info(context.Background(), "hello", "k", "v")
}

func TestFromZap_ForwardsFieldsAndLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core).With(zap.String("run_id", "r-1")))

	ctx := context.Background()
	logger.Debug(ctx, "d")
	logger.Info(ctx, "i", "step", "migrate")
	logger.Warn(ctx, "w")
	logger.Error(ctx, "e")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)

	fields := entries[1].ContextMap()
	assert.Equal(t, "r-1", fields["run_id"])
	assert.Equal(t, "migrate", fields["step"])
}

func TestNop_DiscardsOutput(t *testing.T) {
	logger := Nop()

	logger.Error(context.Background(), "ignored")
}
