// Package logging builds the structured JSON logger shared by the CLI and the rpc server.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLevel = "info"

// New constructs a zap logger emitting JSON to stderr. An empty level falls
// back to LOG_LEVEL, then to info.
func New(level string) (*zap.Logger, error) {
	atomic, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	encoderCfg := zapcore.EncoderConfig{
		MessageKey: "message",
		TimeKey:    "timestamp",
		LevelKey:   "severity",
		EncodeTime: zapcore.RFC3339NanoTimeEncoder,
		EncodeLevel: func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(strings.ToUpper(level.String()))
		},
		CallerKey:     "caller",
		EncodeCaller:  zapcore.ShortCallerEncoder,
		StacktraceKey: "stacktrace",
	}

	cfg := zap.Config{
		Level:             atomic,
		Encoding:          "json",
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: true,
	}
	return cfg.Build()
}

// ParseLevel resolves level, LOG_LEVEL and the default in that order.
func ParseLevel(level string) (zap.AtomicLevel, error) {
	atomic := zap.NewAtomicLevel()
	text := strings.ToLower(strings.TrimSpace(level))
	if text == "" {
		text = strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	}
	if text == "" {
		text = defaultLevel
	}
	if err := atomic.UnmarshalText([]byte(text)); err != nil {
		return atomic, err
	}
	return atomic, nil
}
