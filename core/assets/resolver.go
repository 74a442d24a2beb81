package assets

import (
	"errors"
	"path"
	"strings"
)

var (
	// ErrNotAsset reports that the request path has no segments left after
	// canonicalization (e.g. "/" or ""), so it is not a file request at all.
	ErrNotAsset = errors.New("assets: not an asset request")

	// ErrTraversal reports that the canonicalized path begins with "..",
	// which would escape the served root.
	ErrTraversal = errors.New("assets: path escapes root")
)

// Resolve canonicalizes a raw URL path into a relative lookup key.
//
// The path is stripped of leading slashes and cleaned with path.Clean.
// path.Clean fully resolves "." and interior ".." segments, so the only
// ".." that can survive is a leading run; such paths are rejected with
// ErrTraversal. Paths that canonicalize to nothing return ErrNotAsset and
// the caller should continue normal routing.
func Resolve(rawPath string) (string, error) {
	rel := strings.TrimLeft(rawPath, "/")
	cleaned := path.Clean(rel)

	if cleaned == "." || cleaned == "" {
		return "", ErrNotAsset
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", ErrTraversal
	}
	return cleaned, nil
}
