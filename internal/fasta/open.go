package fasta

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// isGzip reports whether the next bytes of br are the gzip magic number (1F 8B).
func isGzip(br *bufio.Reader) bool {
	sig, err := br.Peek(2)
	return err == nil && sig[0] == 0x1f && sig[1] == 0x8b
}

// NewReader returns a reader yielding the decompressed content of r.
// The returned closer releases the gzip reader only; closing r stays with the caller.
func NewReader(r io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	if !isGzip(br) {
		return io.NopCloser(br), nil
	}
	gr, err := gzip.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("opening gzip stream: %w", err)
	}
	return gr, nil
}

// Open opens path for reading, transparently decompressing gzip content.
func Open(path string) (io.ReadCloser, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	rc, err := NewReader(fh)
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	return &multiReadCloser{Reader: rc, closers: []io.Closer{rc, fh}}, nil
}

// ParseFile opens and parses the FASTA file at path.
func ParseFile(path string) (*Document, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	doc, err := Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}
