package assets

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
)

// Decision is the per-request response plan produced by the responder
// state machine: status code, header mutations, and (for 200/206) the
// asset byte window to stream. A Decision is built fresh per request and
// never retained.
type Decision struct {
	Status  int
	Headers map[string]string
	Remove  []string

	// Inclusive byte window served when HasBody is true.
	Start, End int64
	HasBody    bool
}

// decide applies conditional-GET and range semantics to a located asset.
//
// If-Modified-Since wins over Range: a second-exact modification time
// match short-circuits to 304 and range handling is never evaluated.
// Unparsable conditional dates are treated as if the header were absent.
func decide(r *http.Request, meta Metadata) *Decision {
	dec := &Decision{Headers: make(map[string]string)}

	if ims := r.Header.Get("If-Modified-Since"); ims != "" {
		if t, err := http.ParseTime(ims); err == nil && t.Unix() == meta.ModTime.Unix() {
			dec.Status = http.StatusNotModified
			dec.Remove = []string{"Content-Type", "Content-Length", "Content-Disposition"}
			return dec
		}
	}

	// Default window is the whole asset, clamped to [0,0] for empty files
	// so the window stays non-negative.
	start, end := int64(0), meta.Size-1
	if end < 0 {
		end = 0
	}

	if header := r.Header.Get("Range"); header != "" {
		rs, ok := parseRange(header)
		if !ok || rs.start > end {
			dec.Status = http.StatusRequestedRangeNotSatisfiable
			return dec
		}
		start = rs.start
		if rs.hasEnd && rs.end <= end {
			end = rs.end
		}
		dec.Status = http.StatusPartialContent
		dec.Headers["Content-Length"] = strconv.FormatInt(end-start+1, 10)
		dec.Headers["Content-Range"] = fmt.Sprintf("bytes %d-%d/%d", start, end, meta.Size)
	} else {
		dec.Status = http.StatusOK
	}

	dec.Headers["Content-Type"] = meta.ContentType
	dec.Headers["Accept-Ranges"] = "bytes"
	dec.Headers["Last-Modified"] = meta.ModTime.UTC().Format(http.TimeFormat)
	dec.Start, dec.End = start, end
	dec.HasBody = true
	return dec
}

// write renders the decision and streams the asset window. The asset is
// always released: through the body reader on 200/206, or directly when
// the response has no body.
func (dec *Decision) write(w http.ResponseWriter, asset Asset) error {
	h := w.Header()
	for k, v := range dec.Headers {
		h.Set(k, v)
	}
	for _, k := range dec.Remove {
		h.Del(k)
	}
	w.WriteHeader(dec.Status)

	if !dec.HasBody {
		return asset.Close()
	}

	rc, err := asset.Range(dec.Start, dec.End)
	if err != nil {
		_ = asset.Close()
		return err
	}
	defer rc.Close()

	_, err = io.Copy(w, rc)
	return err
}
