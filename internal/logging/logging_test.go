package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		env     string
		want    zapcore.Level
		wantErr bool
	}{
		{name: "explicit", level: "debug", want: zapcore.DebugLevel},
		{name: "trimmed and cased", level: " WARN ", want: zapcore.WarnLevel},
		{name: "from env", env: "error", want: zapcore.ErrorLevel},
		{name: "explicit beats env", level: "debug", env: "error", want: zapcore.DebugLevel},
		{name: "default", want: zapcore.InfoLevel},
		{name: "invalid", level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.env)
			got, err := ParseLevel(tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Level())
		})
	}
}

func TestNew(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	logger, err := New("warn")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	_, err = New("loud")
	assert.Error(t, err)
}
