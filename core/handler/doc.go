// Package handler defines the request-processing contracts shared across
// the module: a request Context interface, a Response render function, and
// generic HandlerFunc/Middleware types.
//
// The package is interface-only by design. Applications bring their own
// Context implementation (typically a thin struct around the request and
// response writer plus routing parameters), which keeps the asset
// dispatcher and middleware decoupled from any particular router.
//
// A minimal context implementation:
//
//	type appContext struct {
//		context.Context
//		req    *http.Request
//		w      http.ResponseWriter
//		values map[any]any
//	}
//
//	func (c *appContext) Request() *http.Request              { return c.req }
//	func (c *appContext) ResponseWriter() http.ResponseWriter { return c.w }
//	func (c *appContext) Param(key string) string             { return "" }
//	func (c *appContext) SetValue(key, val any)               { c.values[key] = val }
//
//	func (c *appContext) Value(key any) any {
//		if v, ok := c.values[key]; ok {
//			return v
//		}
//		return c.Context.Value(key)
//	}
package handler
