package handler

import (
	"context"
	"net/http"
)

// Context is the contract a request context must satisfy to be usable by
// handlers in this module. It extends context.Context with access to the
// raw request/response pair, routing parameters, and a request-scoped
// key/value store.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	SetValue(key, val any)
}

// Response renders an HTTP response. Implementations set headers, status
// code, and body; rendering errors are resolved by the caller.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc is a type-safe HTTP request handler over a custom context type.
type HandlerFunc[C Context] func(ctx C) Response

// Middleware wraps handlers to add cross-cutting behavior.
type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]

// Chain applies middlewares to a handler in declaration order: the first
// middleware in the list is the outermost wrapper.
func Chain[C Context](h HandlerFunc[C], middlewares ...Middleware[C]) HandlerFunc[C] {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
