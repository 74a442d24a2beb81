package assets

import (
	"bytes"
	"io"
	"os"
	"time"
)

// Asset is a readable byte source with a known total length. The two
// implementations are a filesystem file (opened at locate time, so
// readability is already proven) and an in-memory buffer materialized
// from the embedded library.
type Asset interface {
	// Size returns the total length of the asset in bytes.
	Size() int64

	// Range returns a reader over the inclusive byte window [start, end].
	// Closing the returned reader releases any underlying file handle.
	Range(start, end int64) (io.ReadCloser, error)

	// Close releases the asset without reading it. Used when the response
	// carries no body (304, 416).
	Close() error
}

// Metadata describes an asset for response-header purposes.
type Metadata struct {
	ModTime     time.Time
	Size        int64
	ContentType string
}

type fileAsset struct {
	f    *os.File
	size int64
}

func (a *fileAsset) Size() int64 { return a.size }

func (a *fileAsset) Range(start, end int64) (io.ReadCloser, error) {
	return &sectionCloser{
		r: io.NewSectionReader(a.f, start, end-start+1),
		c: a.f,
	}, nil
}

func (a *fileAsset) Close() error { return a.f.Close() }

// sectionCloser couples a section reader with the file handle it reads
// from, so the handle is released when the response body is done.
type sectionCloser struct {
	r *io.SectionReader
	c io.Closer
}

func (s *sectionCloser) Read(p []byte) (int, error) { return s.r.Read(p) }
func (s *sectionCloser) Close() error               { return s.c.Close() }

type memoryAsset struct {
	data []byte
}

func (a *memoryAsset) Size() int64 { return int64(len(a.data)) }

func (a *memoryAsset) Range(start, end int64) (io.ReadCloser, error) {
	if start >= int64(len(a.data)) {
		return io.NopCloser(bytes.NewReader(nil)), nil
	}
	if end >= int64(len(a.data)) {
		end = int64(len(a.data)) - 1
	}
	return io.NopCloser(bytes.NewReader(a.data[start : end+1])), nil
}

func (a *memoryAsset) Close() error { return nil }
