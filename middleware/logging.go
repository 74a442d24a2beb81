// Package middleware provides cross-cutting HTTP middleware for handlers
// built on the core/handler contracts: structured request logging, request
// IDs, and Prometheus metrics.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/assetkit/assetkit/core/handler"
	"github.com/assetkit/assetkit/core/logger"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Skip disables logging for matching requests (e.g. health checks).
	Skip func(ctx handler.Context) bool

	// Logger is the slog logger to use (default: slog.Default()).
	Logger *slog.Logger

	// Level for completed-request log records (default: slog.LevelInfo).
	Level slog.Level

	// SlowThreshold promotes requests slower than this to warning level.
	// Zero disables the promotion.
	SlowThreshold time.Duration

	// Component tags every record; defaults to "http".
	Component string
}

// Logging creates a request logging middleware with default configuration.
func Logging[C handler.Context]() handler.Middleware[C] {
	return LoggingWithConfig[C](LoggingConfig{})
}

// LoggingWithConfig creates a request logging middleware. One record is
// emitted per completed request with method, path, status, and elapsed
// time; the request ID is included when the requestid middleware ran
// earlier in the chain.
func LoggingWithConfig[C handler.Context](cfg LoggingConfig) handler.Middleware[C] {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Component == "" {
		cfg.Component = "http"
	}
	log := cfg.Logger.With(logger.Component(cfg.Component))

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			start := time.Now()
			resp := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
				err := resp(sw, r)

				elapsed := time.Since(start)
				level := cfg.Level
				if cfg.SlowThreshold > 0 && elapsed > cfg.SlowThreshold {
					level = slog.LevelWarn
				}

				requestID, _ := GetRequestID(ctx)
				log.LogAttrs(ctx, level, "request completed",
					logger.Method(r.Method),
					logger.Path(r.URL.Path),
					logger.StatusCode(sw.status),
					logger.Elapsed(start),
					logger.RequestID(requestID),
					logger.Error(err),
				)
				return err
			}
		}
	}
}

// statusWriter records the status code written by downstream handlers.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
