package logger

import (
	"os"

	"mtgsim/internal/state"

	"go.uber.org/zap"
)

var globalLogger *zap.Logger

// Init initializes the global logger
func Init(logLevel *string) error {
	var err error

	// Create config based on GO_ENV for formatting
	env := os.Getenv("GO_ENV")
	var config zap.Config
	if env == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}

	var appliedLogLevel string
	if logLevel != nil {
		appliedLogLevel = *logLevel
	} else {
		appliedLogLevel = "info"
	}

	// Set the log level based on MTG_LOG_LEVEL
	switch appliedLogLevel {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		config.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	globalLogger, err = config.Build()
	if err != nil {
		return err
	}

	return nil
}

// Get returns the global logger
func Get() *zap.Logger {
	if globalLogger == nil {
		// Fallback to development logger if not initialized
		globalLogger, _ = zap.NewDevelopment()
	}
	return globalLogger
}

// Sync flushes the logger
func Sync() error {
	if globalLogger != nil {
		return globalLogger.Sync()
	}
	return nil
}

// Shutdown properly closes the logger
func Shutdown() error {
	return Sync()
}

// WithGameContext returns a logger annotated with the session id and the
// point in the game the log line refers to: turn count, phase/step, stack
// depth, and (when the stack is non-empty) the id of the object on top of
// it. Every engine-facing log line in this repo wants this shape rather than
// a bare session/player/client id tuple, since a session has exactly one
// game and the interesting question is always "where in that game".
func WithGameContext(sessionID string, g *state.GameState) *zap.Logger {
	fields := make([]zap.Field, 0, 6)
	if sessionID != "" {
		fields = append(fields, zap.String("session_id", sessionID))
	}
	if g == nil {
		return Get().With(fields...)
	}
	fields = append(fields,
		zap.Int("turn", g.TurnCount),
		zap.String("phase", string(g.Phase)),
		zap.String("step", string(g.Step)),
		zap.Int("stack_depth", len(g.Stack)),
	)
	if top := len(g.Stack); top > 0 {
		fields = append(fields, zap.String("top_stack_id", string(g.Stack[top-1].ID)))
	}
	return Get().With(fields...)
}
