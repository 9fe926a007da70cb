package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_RequestID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZap(zap.New(core))

	t.Run("with request id", func(t *testing.T) {
		ctx := SetRequestIDToContext(context.Background(), "req-1")
		l.Infof(ctx, "post.usecase.Create: %s", "ok")

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, "post.usecase.Create: ok", entries[0].Message)
		assert.Equal(t, "req-1", entries[0].ContextMap()[RequestIDField])
	})

	t.Run("without request id", func(t *testing.T) {
		l.Warn(context.Background(), "plain")

		entries := logs.TakeAll()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
		_, ok := entries[0].ContextMap()[RequestIDField]
		assert.False(t, ok)
	})
}

func TestSetRequestIDToContext_Empty(t *testing.T) {
	ctx := SetRequestIDToContext(context.Background(), "")
	assert.Equal(t, "", GetRequestIDFromContext(ctx))
}

func TestInit_UnknownLevel(t *testing.T) {
	l := Init(ZapConfig{Level: "nope", Mode: ModeDevelopment, Encoding: EncodingConsole})
	assert.NotNil(t, l)
}
