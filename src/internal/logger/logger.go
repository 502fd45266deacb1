package logger

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"

	"github.com/investlab/investment-gateway/src/internal/commons"
)

type Fields map[string]any

var sensitiveKeys = map[string]struct{}{
	"password":      {},
	"dbpassword":    {},
	"db_password":   {},
	"authorization": {},
	"keyhash":       {},
	"key_hash":      {},
	"dsn":           {},
	"databasedsn":   {},
	"database_dsn":  {},
}

// Setup installs the process-wide JSON logger.
func Setup(w io.Writer, level string) {
	slog.SetDefault(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})))
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warning", "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func Debug(ctx context.Context, message string, fields Fields) {
	write(ctx, slog.LevelDebug, message, fields)
}

func Info(ctx context.Context, message string, fields Fields) {
	write(ctx, slog.LevelInfo, message, fields)
}

func Warn(ctx context.Context, message string, fields Fields) {
	write(ctx, slog.LevelWarn, message, fields)
}

func Error(ctx context.Context, message string, err error, fields Fields) {
	base := Fields{}
	for k, v := range fields {
		base[k] = v
	}
	if err != nil {
		base["error"] = err.Error()
	}

	write(ctx, slog.LevelError, message, base)
}

func write(ctx context.Context, level slog.Level, message string, fields Fields) {
	if ctx == nil {
		ctx = context.Background()
	}

	l := slog.Default()
	if !l.Enabled(ctx, level) {
		return
	}

	attrs := make([]slog.Attr, 0, len(fields)+1)
	if rqID := commons.RequestIDFromContext(ctx); rqID != "" {
		attrs = append(attrs, slog.String("rqID", rqID))
	}
	for k, v := range fields {
		if isSensitiveKey(k) {
			attrs = append(attrs, slog.String(k, "******"))
			continue
		}
		attrs = append(attrs, slog.Any(k, SanitizePayload(v)))
	}

	l.LogAttrs(ctx, level, message, attrs...)
}

// SanitizePayload round-trips payload through JSON and masks sensitive keys at any depth.
func SanitizePayload(payload any) any {
	switch payload.(type) {
	case nil, string, bool, int, int32, int64, float64:
		return payload
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "<unavailable>"
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return "<unavailable>"
	}

	return sanitizeValue(data)
}

func sanitizeValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, inner := range typed {
			if isSensitiveKey(key) {
				out[key] = "******"
				continue
			}
			out[key] = sanitizeValue(inner)
		}
		return out
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			out = append(out, sanitizeValue(item))
		}
		return out
	default:
		return value
	}
}

func isSensitiveKey(key string) bool {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(key), "-", ""))
	_, ok := sensitiveKeys[normalized]
	return ok
}
