// Package assets implements a single-request static-asset dispatcher with
// conditional GET (If-Modified-Since/304) and single-range (Range/206/416)
// semantics over a three-tier asset lookup: a configured root directory, a
// bundled fallback directory, and an embedded in-memory asset library.
//
// # Dispatch model
//
// A Dispatcher is constructed once and shared across requests. Dispatch
// resolves the request URL path into a safe relative path and serves the
// first asset found; the returned boolean tells the caller whether a
// response was written ("handled") or routing should continue
// ("not handled"):
//
//	d := assets.New(
//		assets.WithRoot("./public"),
//		assets.WithLibrary(lib),
//	)
//
//	if d.Dispatch(ctx) {
//		return // response fully written
//	}
//	// fall through to normal routing
//
// For router integration, Files wraps a Dispatcher into a handler that
// responds 404 when no asset matches:
//
//	r.Get("/*", assets.Files[*appContext](d))
//
// # Lookup order
//
// The configured root is probed first. A file that exists there but is
// not readable terminates the lookup with 403; the bundled root and the
// embedded library are only consulted when the previous tier has no file
// at all. Embedded lookup is skipped for multi-extension names such as
// "page.tpl.html", which protects template sources registered alongside
// servable assets.
//
// # Safety
//
// Request paths are canonicalized with path.Clean before lookup, which
// resolves all interior "." and ".." segments; any ".." that survives
// canonicalization can only be a leading run, and such paths are rejected
// outright. See Resolve.
package assets
