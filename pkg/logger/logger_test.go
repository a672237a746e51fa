package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Levels(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"":      zapcore.InfoLevel,
	}
	for level, want := range cases {
		l, err := NewLogger(level, "console", "hvac-registry")
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(want), "level %s", level)
		if want > zapcore.DebugLevel {
			assert.False(t, l.Core().Enabled(want-1), "level %s", level)
		}
	}
}

func TestNewLogger_Formats(t *testing.T) {
	for _, format := range []string{"", "json", "console"} {
		l, err := NewLogger("info", format, "hvac-registry")
		require.NoError(t, err, "format %q", format)
		assert.NotNil(t, l)
	}
}

func TestNewLogger_RejectsUnknownValues(t *testing.T) {
	_, err := NewLogger("verbose", "json", "hvac-registry")
	assert.ErrorContains(t, err, `unknown log level "verbose"`)

	_, err = NewLogger("info", "xml", "hvac-registry")
	assert.ErrorContains(t, err, `unknown log format "xml"`)
}
