package assets

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/assetkit/assetkit/core/handler"
	"github.com/assetkit/assetkit/core/logger"
)

// DefaultClass is the embedded asset class used when no override, no
// environment variable, and no configured default apply.
const DefaultClass = "default"

// BundledDirName is the directory probed next to the executable when no
// bundled root is configured explicitly.
const BundledDirName = "public"

// Multi-extension names like "page.tpl.html" are template sources, not
// servable assets; embedded lookup skips them.
var multiExtPattern = regexp.MustCompile(`^[^.]+(\.[^.]+){2,}$`)

type contextKey struct{ name string }

var (
	classOverrideKey = contextKey{"asset-class"}
	pathOverrideKey  = contextKey{"asset-path"}
)

// SetClassOverride stores a per-request embedded asset class in the
// context's key/value store. It takes priority over the environment
// variable and the configured default.
func SetClassOverride(ctx handler.Context, class string) {
	ctx.SetValue(classOverrideKey, class)
}

// SetPathOverride stores a per-request relative asset path. When set,
// Dispatch serves it instead of resolving the request URL path. The value
// is trusted and bypasses traversal checks; never populate it from raw
// client input.
func SetPathOverride(ctx handler.Context, relPath string) {
	ctx.SetValue(pathOverrideKey, relPath)
}

// Dispatcher serves static assets from up to three sources: a configured
// root directory, a bundled fallback directory, and an embedded Library.
// All formerly process-global state (bundled root, per-class name lists,
// the fallback timestamp for in-memory assets) is owned per instance and
// initialized lazily, so tests can construct fresh dispatchers freely.
//
// A Dispatcher is safe for concurrent use once constructed.
type Dispatcher struct {
	root         string
	bundledRoot  string
	library      *Library
	defaultClass string
	classEnv     string
	mimes        *MimeTable
	log          *slog.Logger

	bundledOnce     sync.Once
	resolvedBundled string

	stampOnce sync.Once
	stamp     time.Time

	mu    sync.Mutex
	names map[string]map[string]struct{}
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithRoot sets the primary directory assets are served from.
func WithRoot(root string) Option {
	return func(d *Dispatcher) { d.root = filepath.Clean(root) }
}

// WithBundledRoot overrides the bundled fallback directory. By default it
// is the "public" directory next to the running executable.
func WithBundledRoot(root string) Option {
	return func(d *Dispatcher) { d.bundledRoot = filepath.Clean(root) }
}

// WithLibrary attaches an embedded asset Library as the last-resort source.
func WithLibrary(lib *Library) Option {
	return func(d *Dispatcher) { d.library = lib }
}

// WithDefaultClass sets the embedded class used when no per-request or
// environment override applies.
func WithDefaultClass(class string) Option {
	return func(d *Dispatcher) { d.defaultClass = class }
}

// WithClassEnv names an environment variable consulted for the embedded
// class after the per-request override and before the configured default.
func WithClassEnv(name string) Option {
	return func(d *Dispatcher) { d.classEnv = name }
}

// WithMimeTable replaces the default content-type table.
func WithMimeTable(t *MimeTable) Option {
	return func(d *Dispatcher) { d.mimes = t }
}

// WithLogger sets the diagnostic logger. Without it the dispatcher is
// silent.
func WithLogger(log *slog.Logger) Option {
	return func(d *Dispatcher) { d.log = log.With(logger.Component("assets")) }
}

// New constructs a Dispatcher.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		mimes: NewMimeTable(),
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		names: make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch serves the asset addressed by the request URL path. It returns
// true when a response has been fully written and false when the request
// is not a static asset request (the response is untouched and the caller
// should continue routing). Traversal attempts are rejected silently.
func (d *Dispatcher) Dispatch(ctx handler.Context) bool {
	return d.dispatchTo(ctx, ctx.ResponseWriter())
}

// Serve serves the asset at a pre-resolved relative path, optionally from
// an explicit root instead of the configured one. The boolean follows the
// Dispatch contract.
func (d *Dispatcher) Serve(ctx handler.Context, relPath, rootOverride string) bool {
	return d.serveTo(ctx, ctx.ResponseWriter(), relPath, rootOverride)
}

func (d *Dispatcher) dispatchTo(ctx handler.Context, w http.ResponseWriter) bool {
	rel, _ := ctx.Value(pathOverrideKey).(string)
	if rel == "" {
		var err error
		rel, err = Resolve(ctx.Request().URL.Path)
		if err != nil {
			return false
		}
	}
	return d.serveTo(ctx, w, rel, "")
}

func (d *Dispatcher) serveTo(ctx handler.Context, w http.ResponseWriter, relPath, rootOverride string) bool {
	asset, meta, outcome := d.locate(ctx, relPath, rootOverride)
	switch outcome {
	case lookupMiss:
		return false
	case lookupForbidden:
		w.WriteHeader(http.StatusForbidden)
		return true
	}

	dec := decide(ctx.Request(), meta)
	if err := dec.write(w, asset); err != nil {
		d.log.Debug("asset stream interrupted",
			logger.Path(relPath),
			logger.StatusCode(dec.Status),
			logger.Error(err),
		)
	}
	return true
}

type lookupOutcome int

const (
	lookupMiss lookupOutcome = iota
	lookupHit
	lookupForbidden
)

// locate runs the three-tier short-circuit search. A file that exists in
// an earlier tier but cannot be opened stops the search with
// lookupForbidden; later tiers are only probed when the earlier one has
// no file at all.
func (d *Dispatcher) locate(ctx handler.Context, relPath, rootOverride string) (Asset, Metadata, lookupOutcome) {
	root := rootOverride
	if root == "" {
		root = d.root
	}

	if root != "" {
		if a, meta, outcome := d.openFile(root, relPath); outcome != lookupMiss {
			return a, meta, outcome
		}
	}

	if bundled := d.bundled(); bundled != "" {
		if a, meta, outcome := d.openFile(bundled, relPath); outcome != lookupMiss {
			return a, meta, outcome
		}
	}

	return d.openEmbedded(ctx, relPath)
}

func (d *Dispatcher) openFile(root, relPath string) (Asset, Metadata, lookupOutcome) {
	full := filepath.Join(root, filepath.FromSlash(relPath))

	info, err := os.Stat(full)
	if err != nil || !info.Mode().IsRegular() {
		return nil, Metadata{}, lookupMiss
	}

	f, err := os.Open(full)
	if err != nil {
		d.log.Debug("asset exists but is not readable", logger.Path(full), logger.Error(err))
		return nil, Metadata{}, lookupForbidden
	}

	meta := Metadata{
		ModTime:     info.ModTime(),
		Size:        info.Size(),
		ContentType: d.mimes.resolve(relPath, nil, full),
	}
	return &fileAsset{f: f, size: info.Size()}, meta, lookupHit
}

func (d *Dispatcher) openEmbedded(ctx handler.Context, relPath string) (Asset, Metadata, lookupOutcome) {
	if d.library == nil {
		return nil, Metadata{}, lookupMiss
	}
	if multiExtPattern.MatchString(baseName(relPath)) {
		return nil, Metadata{}, lookupMiss
	}

	class := d.resolveClass(ctx)
	if _, ok := d.classNames(class)[relPath]; !ok {
		return nil, Metadata{}, lookupMiss
	}

	data, err := d.library.ReadFile(class, relPath)
	if err != nil {
		d.log.Debug("embedded asset vanished from registry",
			logger.Path(relPath), logger.AssetClass(class), logger.Error(err))
		return nil, Metadata{}, lookupMiss
	}

	meta := Metadata{
		ModTime:     d.fallbackStamp(),
		Size:        int64(len(data)),
		ContentType: d.mimes.resolve(relPath, data, ""),
	}
	return &memoryAsset{data: data}, meta, lookupHit
}

// resolveClass picks the embedded asset class: per-request override, then
// environment, then configured default, then DefaultClass.
func (d *Dispatcher) resolveClass(ctx handler.Context) string {
	if class, ok := ctx.Value(classOverrideKey).(string); ok && class != "" {
		return class
	}
	if d.classEnv != "" {
		if class := os.Getenv(d.classEnv); class != "" {
			return class
		}
	}
	if d.defaultClass != "" {
		return d.defaultClass
	}
	return DefaultClass
}

// classNames returns the cached name set for a class, enumerating the
// library on first use. The set is immutable once computed.
func (d *Dispatcher) classNames(class string) map[string]struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()

	if set, ok := d.names[class]; ok {
		return set
	}

	set := make(map[string]struct{})
	for _, name := range d.library.Names(class) {
		set[name] = struct{}{}
	}
	d.names[class] = set
	return set
}

// bundled resolves the fallback directory once per dispatcher: an explicit
// WithBundledRoot value, or the "public" directory co-located with the
// executable. Resolution failure disables the tier.
func (d *Dispatcher) bundled() string {
	d.bundledOnce.Do(func() {
		if d.bundledRoot != "" {
			d.resolvedBundled = d.bundledRoot
			return
		}
		exe, err := os.Executable()
		if err != nil {
			return
		}
		d.resolvedBundled = filepath.Join(filepath.Dir(exe), BundledDirName)
	})
	return d.resolvedBundled
}

// fallbackStamp is the modification time reported for in-memory assets,
// fixed at first use for the dispatcher's lifetime so conditional GET
// stays stable across requests.
func (d *Dispatcher) fallbackStamp() time.Time {
	d.stampOnce.Do(func() { d.stamp = time.Now() })
	return d.stamp
}

func baseName(relPath string) string {
	if i := strings.LastIndexByte(relPath, '/'); i >= 0 {
		return relPath[i+1:]
	}
	return relPath
}

// Files wraps a Dispatcher into a handler that responds 404 Not Found
// when no asset matches, for mounting on a catch-all route. The response
// goes through the writer handed to the render function, so middleware
// wrappers observe the status code.
func Files[C handler.Context](d *Dispatcher) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			if !d.dispatchTo(ctx, w) {
				http.NotFound(w, r)
			}
			return nil
		}
	}
}
