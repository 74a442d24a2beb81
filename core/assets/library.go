package assets

import (
	"fmt"
	"io/fs"
	"sort"
)

// Library is a class-keyed registry of embedded asset trees, typically
// embed.FS values. Classes let one binary carry several asset sets (for
// example themed variants) and select between them per process or per
// request.
//
// Register all classes during startup; the Library is read-only afterwards
// and safe for concurrent use by the Dispatcher.
type Library struct {
	classes map[string]fs.FS
}

// NewLibrary returns an empty Library.
func NewLibrary() *Library {
	return &Library{classes: make(map[string]fs.FS)}
}

// Add registers an asset tree under a class identifier, replacing any
// previous registration for that class.
func (l *Library) Add(class string, fsys fs.FS) *Library {
	l.classes[class] = fsys
	return l
}

// Names enumerates the regular files registered under a class, as
// slash-separated paths relative to the class root, sorted. An unknown
// class yields nil.
func (l *Library) Names(class string) []string {
	fsys, ok := l.classes[class]
	if !ok {
		return nil
	}

	var names []string
	_ = fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.Type().IsRegular() {
			names = append(names, p)
		}
		return nil
	})
	sort.Strings(names)
	return names
}

// ReadFile returns the payload of a named asset within a class.
func (l *Library) ReadFile(class, name string) ([]byte, error) {
	fsys, ok := l.classes[class]
	if !ok {
		return nil, fmt.Errorf("assets: unknown class %q", class)
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s/%s: %w", class, name, err)
	}
	return data, nil
}
