package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		header    string
		wantOK    bool
		wantStart int64
		wantEnd   int64
		wantHas   bool
	}{
		{name: "closed_range", header: "bytes=10-19", wantOK: true, wantStart: 10, wantEnd: 19, wantHas: true},
		{name: "open_range", header: "bytes=1024-", wantOK: true, wantStart: 1024},
		{name: "zero_start", header: "bytes=0-0", wantOK: true, wantStart: 0, wantEnd: 0, wantHas: true},
		{name: "suffix_range_rejected", header: "bytes=-500", wantOK: false},
		{name: "multi_range_rejected", header: "bytes=0-1,5-9", wantOK: false},
		{name: "missing_unit", header: "10-19", wantOK: false},
		{name: "wrong_unit", header: "lines=10-19", wantOK: false},
		{name: "garbage", header: "bytes=abc-def", wantOK: false},
		{name: "inverted_range_rejected", header: "bytes=10-5", wantOK: false},
		{name: "empty", header: "", wantOK: false},
		{name: "whitespace_rejected", header: "bytes= 10-19", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rs, ok := parseRange(tt.header)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantStart, rs.start)
				assert.Equal(t, tt.wantEnd, rs.end)
				assert.Equal(t, tt.wantHas, rs.hasEnd)
			}
		})
	}
}

func TestExtensionOf(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"style.css":        "css",
		"js/app.JS":        "js",
		"noext":            "",
		"trailing.":        "",
		"dir.v2/readme":    "",
		"a/b/c.tar.gz":     "gz",
		".hidden":          "hidden",
		"assets/img.WebP":  "webp",
		"weird/.gitignore": "gitignore",
	}

	for in, want := range tests {
		assert.Equal(t, want, extensionOf(in), "extensionOf(%q)", in)
	}
}

func TestMultiExtPattern(t *testing.T) {
	t.Parallel()

	matches := []string{"page.tpl.html", "layout.html.erb", "a.b.c.d"}
	for _, name := range matches {
		assert.True(t, multiExtPattern.MatchString(name), "%q should match", name)
	}

	misses := []string{"app.js", "index.html", "README", ".hidden.txt", "noext"}
	for _, name := range misses {
		assert.False(t, multiExtPattern.MatchString(name), "%q should not match", name)
	}
}

func TestMimeResolveSniffing(t *testing.T) {
	t.Parallel()

	table := NewMimeTable()

	// Known extension wins regardless of content.
	assert.Equal(t, "text/css", table.resolve("style.css", []byte("<html></html>"), ""))

	// Unknown extension defaults to text/plain without sniffing.
	assert.Equal(t, DefaultContentType, table.resolve("blob.xyz", []byte("<html><body>x</body></html>"), ""))

	// With sniffing enabled the payload decides.
	sniffing := NewMimeTable().EnableSniffing()
	ct := sniffing.resolve("blob.xyz", []byte("<!DOCTYPE html><html><body>x</body></html>"), "")
	assert.Contains(t, ct, "text/html")
}
