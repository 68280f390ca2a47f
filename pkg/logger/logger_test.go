package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
	}{
		{"debug level text", &Config{Level: "debug", Format: "text"}},
		{"info level json", &Config{Level: "info", Format: "json"}},
		{"warn level text", &Config{Level: "warn", Format: "text"}},
		{"error level json", &Config{Level: "error", Format: "json"}},
		{"unknown level defaults to info", &Config{Level: "bogus", Format: "text"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.config)
			slog.Info("test message")
		})
	}
}

func TestWithContextCarriesRequestAndUser(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	defer slog.SetDefault(prev)
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))

	ctx := context.Background()
	ctx = context.WithValue(ctx, RequestIDKey, "req-42")
	ctx = context.WithValue(ctx, UserIDKey, "user-7")

	Info(ctx, "contract submitted")

	out := buf.String()
	assert.Contains(t, out, "request_id=req-42")
	assert.Contains(t, out, "user_id=user-7")
	assert.Contains(t, out, "contract submitted")
}

func TestWithContextEmpty(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	defer slog.SetDefault(prev)
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))

	Warn(context.Background(), "no request scope")

	out := buf.String()
	assert.Contains(t, out, "no request scope")
	assert.NotContains(t, out, "request_id")
	assert.NotContains(t, out, "user_id")
}
