package main

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/assetkit/assetkit/core/handler"
	"github.com/assetkit/assetkit/core/logger"
)

// appContext is the request context for this binary. There is no router
// with path parameters here, so Param always reports empty.
type appContext struct {
	context.Context
	req    *http.Request
	w      http.ResponseWriter
	values map[any]any
}

func (c *appContext) Request() *http.Request              { return c.req }
func (c *appContext) ResponseWriter() http.ResponseWriter { return c.w }
func (c *appContext) Param(key string) string             { return "" }

func (c *appContext) SetValue(key, val any) {
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = val
}

func (c *appContext) Value(key any) any {
	if v, ok := c.values[key]; ok {
		return v
	}
	return c.Context.Value(key)
}

// toHTTP adapts a typed handler chain to net/http.
func toHTTP(h handler.HandlerFunc[*appContext], log *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := &appContext{Context: r.Context(), req: r, w: w}
		if err := h(ctx)(w, r); err != nil {
			log.Error("response render failed", logger.Path(r.URL.Path), logger.Error(err))
		}
	})
}
