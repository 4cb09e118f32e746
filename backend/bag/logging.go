package bag

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the process wide logger. It can be replaced before any work
// starts, for example in tests.
var Logger *zap.SugaredLogger

var level zap.AtomicLevel

func init() {
	level = zap.NewAtomicLevelAt(zap.InfoLevel)
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = level
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	l, err := cfg.Build()
	if err != nil {
		l = zap.NewNop()
	}
	Logger = l.Sugar()
}

// Level type
type Level int

const (
	// ErrorLevel level. Logs. Used for errors that should definitely be noted.
	ErrorLevel Level = iota
	// WarnLevel level. Non-critical entries that deserve eyes.
	WarnLevel
	// InfoLevel level. General operational entries about what's going on
	// inside the application.
	InfoLevel
	// DebugLevel level. Usually only enabled when debugging. Very verbose
	// logging.
	DebugLevel
)

// SetLogLevel sets the logging level
func SetLogLevel(l Level) {
	switch l {
	case ErrorLevel:
		level.SetLevel(zap.ErrorLevel)
	case WarnLevel:
		level.SetLevel(zap.WarnLevel)
	case InfoLevel:
		level.SetLevel(zap.InfoLevel)
	case DebugLevel:
		level.SetLevel(zap.DebugLevel)
	}
}

// LogError logs with log level ErrorLevel
func LogError(args ...interface{}) {
	Logger.Error(args...)
}
