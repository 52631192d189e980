package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/nihongo-api/internal/config"
)

func TestSetup_ParsesLevels(t *testing.T) {
	cases := []struct {
		configured string
		level      slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tc := range cases {
		logger := Setup(config.ServerConfig{LogLevel: tc.configured})
		assert.True(t, logger.Enabled(context.Background(), tc.level),
			"level %s should be enabled for config %q", tc.level, tc.configured)
		if tc.level > slog.LevelDebug {
			assert.False(t, logger.Enabled(context.Background(), tc.level-4),
				"level below %s should be disabled for config %q", tc.level, tc.configured)
		}
	}
}

func TestFromContext_RoundTrip(t *testing.T) {
	t.Parallel()
	base := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := WithLogger(context.Background(), base)

	assert.Same(t, base, FromContext(ctx))
	assert.Same(t, base, FromContextOrDefault(ctx))
	assert.Nil(t, FromContext(context.Background()))
	assert.NotNil(t, FromContextOrDefault(context.Background()))
}
