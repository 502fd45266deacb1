package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/investlab/investment-gateway/src/internal/commons"
)

func captureLogs(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Setup(&buf, level)
	return &buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	return line
}

func TestInfoAddsRequestIDAndMasksSecrets(t *testing.T) {
	buf := captureLogs(t, "info")
	ctx := commons.ContextWithRequestID(context.Background(), "rq-1")

	Info(ctx, "db connect", Fields{
		"host":        "db.internal",
		"db_password": "s3cret",
		"payload":     map[string]any{"user": "app", "Password": "hunter2"},
	})

	line := decodeLine(t, buf)
	assert.Equal(t, "db connect", line["msg"])
	assert.Equal(t, "INFO", line["level"])
	assert.Equal(t, "rq-1", line["rqID"])
	assert.Equal(t, "db.internal", line["host"])
	assert.Equal(t, "******", line["db_password"])
	assert.Equal(t, map[string]any{"user": "app", "Password": "******"}, line["payload"])
}

func TestDebugSuppressedAtInfo(t *testing.T) {
	buf := captureLogs(t, "info")

	Debug(context.Background(), "noisy", nil)

	assert.Zero(t, buf.Len())
}

func TestErrorCarriesError(t *testing.T) {
	buf := captureLogs(t, "debug")

	Error(context.Background(), "query failed", errors.New("connection reset"), Fields{"op": "FetchAll"})

	line := decodeLine(t, buf)
	assert.Equal(t, "ERROR", line["level"])
	assert.Equal(t, "connection reset", line["error"])
	assert.Equal(t, "FetchAll", line["op"])
	assert.NotContains(t, line, "rqID")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("whatever"))
}

func TestSanitizePayloadHandlesStructs(t *testing.T) {
	type creds struct {
		User     string `json:"user"`
		Password string `json:"password"`
	}

	got := SanitizePayload([]creds{{User: "a", Password: "b"}})

	assert.Equal(t, []any{map[string]any{"user": "a", "password": "******"}}, got)
}
