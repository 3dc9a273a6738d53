package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_WritesJSONWithBaseFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf, LevelInfo, "service", "football-manager")

	logger.Debug("hidden")
	logger.Info("team created", "team", "Sevilla", "players", 13)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "team created", entry["msg"])
	assert.Equal(t, "football-manager", entry["service"])
	assert.Equal(t, "Sevilla", entry["team"])
	assert.EqualValues(t, 13, entry["players"])
	assert.Contains(t, entry["caller"], "logger_test.go")
}

func TestLogger_FieldsAndErrors(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core)).Named("season").With("league", "La Liga")

	logger.Warn("retire failed", "error", errors.New("boom"), "dangling")

	entries := logs.All()
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "season", entry.LoggerName)
	ctx := entry.ContextMap()
	assert.Equal(t, "La Liga", ctx["league"])
	assert.Equal(t, "boom", ctx["error"])
	assert.Contains(t, ctx, "dangling")
}

func TestLogger_ContextAddsTraceIDs(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	logger := FromZap(zap.New(core))

	traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	spanID, _ := trace.SpanIDFromHex("0102030405060708")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  spanID,
	}))

	logger.InfoContext(ctx, "match played")
	logger.InfoContext(context.Background(), "no span")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, traceID.String(), entries[0].ContextMap()["trace_id"])
	assert.Equal(t, spanID.String(), entries[0].ContextMap()["span_id"])
	assert.NotContains(t, entries[1].ContextMap(), "trace_id")
}

func TestDefault_NilSafe(t *testing.T) {
	var logger *Logger
	logger.Info("goes to default")
	assert.NotNil(t, logger.With("k", "v"))
	assert.NoError(t, logger.Sync())

	SetDefault(nil)
	assert.NotNil(t, Default())
}
