package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"negative is warn", -1, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetupLogger(tt.verbosity, &buf)
			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
		})
	}
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetupLogger(1, &buf)

	logger := GetLogger("scene")
	logger.Info().Msg("loaded")
	logger.Debug().Msg("hidden")

	assert.Contains(t, buf.String(), "loaded")
	assert.Contains(t, buf.String(), "component=")
	assert.Contains(t, buf.String(), "scene")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	SetupLogger(2, &buf)

	done := LogOperationStart(GetLogger("test"), "render")
	assert.Contains(t, buf.String(), "Operation started")
	done()
	assert.Contains(t, buf.String(), "Operation completed")
	assert.Contains(t, buf.String(), "render")
}
