package assets

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DefaultContentType is served when the extension is unknown or absent.
const DefaultContentType = "text/plain"

// MimeTable maps file extensions (without the leading dot, lowercase) to
// content types. The zero value is not usable; construct with NewMimeTable.
type MimeTable struct {
	types map[string]string
	sniff bool
}

// NewMimeTable returns a table seeded with common web asset types.
func NewMimeTable() *MimeTable {
	return &MimeTable{types: map[string]string{
		"html":  "text/html",
		"htm":   "text/html",
		"css":   "text/css",
		"js":    "application/javascript",
		"mjs":   "application/javascript",
		"json":  "application/json",
		"xml":   "application/xml",
		"txt":   "text/plain",
		"md":    "text/markdown",
		"csv":   "text/csv",
		"png":   "image/png",
		"jpg":   "image/jpeg",
		"jpeg":  "image/jpeg",
		"gif":   "image/gif",
		"svg":   "image/svg+xml",
		"webp":  "image/webp",
		"ico":   "image/x-icon",
		"avif":  "image/avif",
		"woff":  "font/woff",
		"woff2": "font/woff2",
		"ttf":   "font/ttf",
		"otf":   "font/otf",
		"pdf":   "application/pdf",
		"wasm":  "application/wasm",
		"map":   "application/json",
		"mp3":   "audio/mpeg",
		"ogg":   "audio/ogg",
		"mp4":   "video/mp4",
		"webm":  "video/webm",
		"zip":   "application/zip",
		"gz":    "application/gzip",
	}}
}

// Set registers or overrides the content type for an extension.
func (t *MimeTable) Set(ext, contentType string) *MimeTable {
	t.types[normalizeExt(ext)] = contentType
	return t
}

// Lookup returns the content type registered for an extension.
func (t *MimeTable) Lookup(ext string) (string, bool) {
	ct, ok := t.types[normalizeExt(ext)]
	return ct, ok
}

// EnableSniffing turns on content-based detection for extensions the table
// does not know. Detection inspects the asset's leading bytes; when it is
// off (the default) unknown extensions resolve to DefaultContentType.
func (t *MimeTable) EnableSniffing() *MimeTable {
	t.sniff = true
	return t
}

// resolve determines the content type for a relative path. The sniff
// arguments are optional: data for in-memory assets, filePath for files.
func (t *MimeTable) resolve(relPath string, data []byte, filePath string) string {
	ext := extensionOf(relPath)
	if ext != "" {
		if ct, ok := t.Lookup(ext); ok {
			return ct
		}
	}

	if t.sniff {
		if data != nil {
			return mimetype.Detect(data).String()
		}
		if filePath != "" {
			if mt, err := mimetype.DetectFile(filePath); err == nil {
				return mt.String()
			}
		}
	}
	return DefaultContentType
}

// extensionOf returns the substring after the last dot of the final path
// element, lowercased; empty when the element has no extension.
func extensionOf(relPath string) string {
	base := relPath
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	i := strings.LastIndexByte(base, '.')
	if i < 0 || i == len(base)-1 {
		return ""
	}
	return strings.ToLower(base[i+1:])
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
