// Package logger builds the service's logrus logger and carries the request
// correlation id through a context.
package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// CorrelationIDHeader is the HTTP header carrying the correlation id.
	CorrelationIDHeader = "X-Correlation-ID"
	// CorrelationIDFieldKey is the field key used for the correlation id in log entries.
	CorrelationIDFieldKey = "correlation_id"
)

type contextKey string

const (
	correlationIDContextKey contextKey = "correlation_id"
	loggerContextKey        contextKey = "logger"
)

// Config represents logger configuration.
type Config struct {
	Level  string    // debug, info, warn, error; anything else is info
	Format string    // "text" or "json" (default)
	Output io.Writer // defaults to os.Stdout
}

// New creates a logger with the given configuration.
func New(config Config) *logrus.Logger {
	log := logrus.New()

	if config.Format == "text" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	if config.Output != nil {
		log.SetOutput(config.Output)
	} else {
		log.SetOutput(os.Stdout)
	}

	log.SetLevel(ParseLevel(config.Level))
	return log
}

// ParseLevel maps a level name to a logrus level, defaulting to info.
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

////////////////////////////////////////////////////////////////////////
// Correlation ID
////////////////////////////////////////////////////////////////////////

// NewCorrelationID returns a fresh correlation id.
func NewCorrelationID() string {
	return uuid.NewString()
}

// WithCorrelationID adds a correlation id to ctx.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDContextKey, correlationID)
}

// CorrelationID returns the correlation id in ctx, or "".
func CorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDContextKey).(string); ok {
		return id
	}
	return ""
}

// WithLogger stores a request scoped logger in ctx.
func WithLogger(ctx context.Context, log logrus.FieldLogger) context.Context {
	return context.WithValue(ctx, loggerContextKey, log)
}

// FromContext returns the request scoped logger in ctx. Without one it
// returns fallback, tagged with the correlation id if ctx has one.
func FromContext(ctx context.Context, fallback logrus.FieldLogger) logrus.FieldLogger {
	if log, ok := ctx.Value(loggerContextKey).(logrus.FieldLogger); ok {
		return log
	}
	if id := CorrelationID(ctx); id != "" {
		return fallback.WithField(CorrelationIDFieldKey, id)
	}
	return fallback
}
