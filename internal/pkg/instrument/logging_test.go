package instrument

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestLogger_MasksFields(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "otpgate", nil, []string{"password"}, "info")

	logger.Info("credentials submitted", "email", "john@example.com", "password", "hunter2")

	line := decodeLine(t, &buf)
	assert.Equal(t, "***", line["password"])
	assert.Equal(t, "john@example.com", line["email"])
	assert.Equal(t, "otpgate", line["service"])
	assert.Equal(t, "INFO", line["severity"])
	assert.Contains(t, line, "ts")
}

func TestLogger_MasksJSONBody(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "otpgate", nil, []string{"password"}, "info")

	logger.Info("request", "body", `{"email":"a@b.c","password":"secret"}`)

	line := decodeLine(t, &buf)
	assert.JSONEq(t, `{"email":"a@b.c","password":"***"}`, line["body"].(string))
}

func TestLogger_CorrelationID(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "otpgate", nil, nil, "debug")

	ctx := SetCorrelationID(context.Background(), "cid-1")
	logger.DebugContext(ctx, "tick")

	line := decodeLine(t, &buf)
	assert.Equal(t, "cid-1", line["_cID"])
}

func TestLogger_ClientIP(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "otpgate", nil, nil, "info")

	ctx := SetClientIP(context.Background(), "203.0.113.7")
	logger.InfoContext(ctx, "verification session opened")

	line := decodeLine(t, &buf)
	assert.Equal(t, "203.0.113.7", line["client_ip"])
	assert.Empty(t, GetClientIP(context.Background()))
}

func TestLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "otpgate", nil, nil, "warn")

	logger.Info("hidden")
	assert.Zero(t, buf.Len())

	logger.Warn("shown")
	assert.NotZero(t, buf.Len())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}

func TestCorrelationID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetCorrelationID(ctx))
	assert.Equal(t, ctx, SetCorrelationID(ctx, ""))
	assert.Equal(t, "abc", GetCorrelationID(SetCorrelationID(ctx, "abc")))
}
