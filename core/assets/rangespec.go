package assets

import (
	"regexp"
	"strconv"
)

// Single ascending byte window only. Suffix ranges ("bytes=-500") and
// multi-range requests ("bytes=0-1,5-9") deliberately fail the match and
// surface as 416.
var rangePattern = regexp.MustCompile(`^bytes=(\d+)-(\d*)$`)

type rangeSpec struct {
	start  int64
	end    int64
	hasEnd bool
}

func parseRange(header string) (rangeSpec, bool) {
	m := rangePattern.FindStringSubmatch(header)
	if m == nil {
		return rangeSpec{}, false
	}

	start, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return rangeSpec{}, false
	}

	rs := rangeSpec{start: start}
	if m[2] != "" {
		end, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			return rangeSpec{}, false
		}
		if end < start {
			return rangeSpec{}, false
		}
		rs.end = end
		rs.hasEnd = true
	}
	return rs, true
}
