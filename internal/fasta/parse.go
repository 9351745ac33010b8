package fasta

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/seqres/internal/core/domain"
)

// ErrFormat indicates content that is not a well-formed FASTA document.
var ErrFormat = errors.New("invalid FASTA")

// maxLineSize bounds a single input line; unwrapped genomes can be long.
const maxLineSize = 64 << 20

// Document is a parsed FASTA file.
type Document struct {
	Records []*Record
}

// Find returns the first record whose ID equals id.
func (d *Document) Find(id string) (*Record, bool) {
	for _, rec := range d.Records {
		if rec.ID == id {
			return rec, true
		}
	}
	return nil, false
}

// Select picks the record named by id. An empty id selects the only record
// of a single-record document; it is an error for multi-record documents.
func (d *Document) Select(id string) (*Record, error) {
	if id != "" {
		rec, ok := d.Find(id)
		if !ok {
			return nil, fmt.Errorf("%w: record %q", domain.ErrNotFound, id)
		}
		return rec, nil
	}
	if len(d.Records) != 1 {
		return nil, fmt.Errorf("%w: %d records, a record id is required", domain.ErrInvalidInput, len(d.Records))
	}
	return d.Records[0], nil
}

// IDs returns the record IDs in file order.
func (d *Document) IDs() []string {
	ids := make([]string, len(d.Records))
	for i, rec := range d.Records {
		ids[i] = rec.ID
	}
	return ids
}

// Parse decodes a FASTA document from r. gzip input is accepted.
func Parse(r io.Reader) (*Document, error) {
	rc, err := NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	defer rc.Close()

	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	doc := &Document{}
	var (
		current *Record
		seq     strings.Builder
		lineNo  int
	)

	flush := func() {
		if current != nil {
			current.Sequence = seq.String()
			doc.Records = append(doc.Records, current)
			seq.Reset()
		}
	}

	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r \t")
		if line == "" {
			continue
		}

		if line[0] == '>' {
			flush()
			rec, err := parseHeader(line[1:])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrFormat, lineNo, err)
			}
			current = rec
			continue
		}

		if current == nil {
			return nil, fmt.Errorf("%w: line %d: sequence data before first header", ErrFormat, lineNo)
		}
		if i := invalidResidue(line); i >= 0 {
			return nil, fmt.Errorf("%w: line %d: unexpected character %q", ErrFormat, lineNo, line[i])
		}
		seq.WriteString(line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	flush()

	if len(doc.Records) == 0 {
		return nil, fmt.Errorf("%w: no records", ErrFormat)
	}
	return doc, nil
}

func parseHeader(header string) (*Record, error) {
	fields := strings.Fields(header)
	if len(fields) == 0 {
		return nil, errors.New("empty header")
	}
	rec := &Record{ID: fields[0]}
	if rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(header), fields[0])); rest != "" {
		rec.Description = rest
	}
	return rec, nil
}

// invalidResidue returns the index of the first byte that is not a letter, '*' or '-'.
func invalidResidue(line string) int {
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c == '*', c == '-':
		default:
			return i
		}
	}
	return -1
}
