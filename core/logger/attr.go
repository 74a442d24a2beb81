// Package logger provides slog attribute helpers used across the module.
//
// Helpers return an empty Attr for nil or zero input, so call sites never
// need explicit nil checks: log.Info("msg", logger.Error(err)) is safe
// whether or not err is nil.
package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// Returns an empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Path creates an attribute for URL or file paths.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// Method creates an attribute for HTTP methods.
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// StatusCode creates an attribute for HTTP status codes.
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// AssetClass creates an attribute for embedded asset class identifiers.
func AssetClass(class string) slog.Attr {
	if class == "" {
		return slog.Attr{}
	}
	return slog.String("asset_class", class)
}

// ContentType creates an attribute for MIME content types.
func ContentType(ct string) slog.Attr {
	if ct == "" {
		return slog.Attr{}
	}
	return slog.String("content_type", ct)
}

// Size creates an attribute for byte sizes.
func Size(n int64) slog.Attr {
	return slog.Int64("size", n)
}

// RequestID creates an attribute for HTTP request IDs.
// Returns an empty Attr for empty IDs.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed calculates and logs the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}
