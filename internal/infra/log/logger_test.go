package logs

import (
	"bytes"
	"log/slog"
	"testing"

	"examhub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "", want: slog.LevelInfo},
		{input: "INFO", want: slog.LevelInfo},
		{input: "warning", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseLogLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := parseLogLevel("verbose")
	assert.Error(t, err)
}

func TestNewLogger_RedactsSensitiveAttributes(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "examhub"
	cfg.Env.Env = "develop"

	var buf bytes.Buffer
	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Info("login", slog.String("email", "ana@example.com"), slog.String("password", "s3cret123"), slog.String("Token", "abc"))

	out := buf.String()
	assert.Contains(t, out, `"email":"ana@example.com"`)
	assert.Contains(t, out, `"service":"examhub"`)
	assert.Contains(t, out, `"password":"[REDACTED]"`)
	assert.Contains(t, out, `"Token":"[REDACTED]"`)
	assert.NotContains(t, out, "s3cret123")
}
