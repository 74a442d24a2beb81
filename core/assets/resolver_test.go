package assets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetkit/assetkit/core/assets"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "simple_file", raw: "/style.css", want: "style.css"},
		{name: "nested_file", raw: "/js/app.js", want: "js/app.js"},
		{name: "no_leading_slash", raw: "img/logo.png", want: "img/logo.png"},
		{name: "double_slashes_collapse", raw: "//css//site.css", want: "css/site.css"},
		{name: "dot_segments_collapse", raw: "/a/./b/./c.txt", want: "a/b/c.txt"},
		{name: "interior_dotdot_resolves", raw: "/a/b/../c.txt", want: "a/c.txt"},
		{name: "root", raw: "/", wantErr: assets.ErrNotAsset},
		{name: "empty", raw: "", wantErr: assets.ErrNotAsset},
		{name: "only_dots", raw: "/./.", wantErr: assets.ErrNotAsset},
		{name: "leading_dotdot", raw: "/../etc/passwd", wantErr: assets.ErrTraversal},
		{name: "dotdot_only", raw: "/..", wantErr: assets.ErrTraversal},
		{name: "escape_after_descend", raw: "/a/../../etc/passwd", wantErr: assets.ErrTraversal},
		{name: "deep_escape", raw: "/a/b/../../../secret", wantErr: assets.ErrTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := assets.Resolve(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// The traversal rejection only inspects the head of the canonicalized
// path. That is sufficient exactly because path.Clean resolves every
// interior ".." segment; this test pins that canonicalizer contract so a
// future swap cannot silently weaken the check.
func TestResolveCanonicalizerContract(t *testing.T) {
	t.Parallel()

	// Every ".." that survives cleaning must be a leading run, so any
	// path that still references a parent directory is rejected, not
	// merely normalized.
	escapes := []string{
		"/a/../..",
		"/a/../../b",
		"/x/y/../../../../etc/shadow",
	}
	for _, raw := range escapes {
		_, err := assets.Resolve(raw)
		assert.ErrorIs(t, err, assets.ErrTraversal, "raw=%q", raw)
	}

	// And any path whose ".." segments all resolve inside the tree must
	// come back with no ".." at all.
	contained := map[string]string{
		"/a/b/../c":    "a/c",
		"/a/./b/../c/": "a/c",
	}
	for raw, want := range contained {
		got, err := assets.Resolve(raw)
		require.NoError(t, err, "raw=%q", raw)
		assert.Equal(t, want, got)
		assert.NotContains(t, got, "..")
	}
}
