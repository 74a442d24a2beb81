package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/assetkit/assetkit/core/handler"
)

// requestIDContextKey keys the request ID in the request-scoped store.
type requestIDContextKey struct{}

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	// Generator creates new request IDs (default: UUID v4).
	Generator func() string

	// HeaderName is the response header carrying the ID (default: "X-Request-ID").
	HeaderName string

	// UseExisting reuses an incoming request's ID header instead of
	// generating a fresh one.
	UseExisting bool
}

// RequestID creates a request ID middleware with default configuration.
func RequestID[C handler.Context]() handler.Middleware[C] {
	return RequestIDWithConfig[C](RequestIDConfig{})
}

// RequestIDWithConfig assigns an identifier to each request for tracing
// and logging. The ID is stored in the context and echoed in a response
// header.
func RequestIDWithConfig[C handler.Context](cfg RequestIDConfig) handler.Middleware[C] {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Request-ID"
	}
	if cfg.Generator == nil {
		cfg.Generator = func() string { return uuid.New().String() }
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			var id string
			if cfg.UseExisting {
				id = ctx.Request().Header.Get(cfg.HeaderName)
			}
			if id == "" {
				id = cfg.Generator()
			}
			ctx.SetValue(requestIDContextKey{}, id)

			resp := next(ctx)

			return func(w http.ResponseWriter, r *http.Request) error {
				w.Header().Set(cfg.HeaderName, id)
				return resp(w, r)
			}
		}
	}
}

// GetRequestID retrieves the request ID stored by the middleware.
func GetRequestID(ctx handler.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey{}).(string)
	return id, ok
}
