package fasta

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/seqres/internal/core/domain"
)

const twoRecords = `>24.accession.Tag first record
ATTAGACA
CACAC

>second
ACGT-N*
`

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestParse_Records(t *testing.T) {
	doc, err := Parse(strings.NewReader(twoRecords))
	require.NoError(t, err)

	require.Len(t, doc.Records, 2)
	assert.Equal(t, []string{"24.accession.Tag", "second"}, doc.IDs())
	assert.Equal(t, "first record", doc.Records[0].Description)
	assert.Equal(t, "ATTAGACACACAC", doc.Records[0].Sequence)
	assert.Equal(t, "ACGT-N*", doc.Records[1].Sequence)

	rec, ok := doc.Find("second")
	require.True(t, ok)
	assert.Equal(t, "ACGT-N*", rec.Sequence)

	_, ok = doc.Find("missing")
	assert.False(t, ok)
}

func TestParse_CRLFAndEmptyRecord(t *testing.T) {
	doc, err := Parse(strings.NewReader(">a\r\nAC\r\nGT\r\n>empty\r\n"))
	require.NoError(t, err)

	require.Len(t, doc.Records, 2)
	assert.Equal(t, "ACGT", doc.Records[0].Sequence)
	assert.Equal(t, "", doc.Records[1].Sequence)
}

func TestParse_Gzip(t *testing.T) {
	doc, err := Parse(bytes.NewReader(gzipBytes(t, twoRecords)))
	require.NoError(t, err)
	assert.Len(t, doc.Records, 2)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"blank lines only", "\n\n  \n"},
		{"no header", "ACGT\n"},
		{"html error page", "<html>Service unavailable</html>\n"},
		{"empty header", ">\nACGT\n"},
		{"digits in sequence", ">a\nAC1GT\n"},
		{"truncated gzip", "\x1f\x8b\x08"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, ErrFormat)
			assert.Nil(t, doc)
		})
	}
}

func TestParseFile_PlainAndGzip(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "ref.fasta")
	zipped := filepath.Join(dir, "ref.fa")
	require.NoError(t, os.WriteFile(plain, []byte(twoRecords), 0600))
	// No .gz suffix: detection is by magic bytes.
	require.NoError(t, os.WriteFile(zipped, gzipBytes(t, twoRecords), 0600))

	for _, path := range []string{plain, zipped} {
		doc, err := ParseFile(path)
		require.NoError(t, err, path)
		assert.Equal(t, []string{"24.accession.Tag", "second"}, doc.IDs())
	}

	_, err := ParseFile(filepath.Join(dir, "missing.fasta"))
	assert.True(t, os.IsNotExist(err))
}

func TestRecord_Provider(t *testing.T) {
	ctx := context.Background()
	rec := &Record{ID: "a", Sequence: "ATTAGACACACAC"}

	seq, err := rec.Region(ctx, domain.Range{Begin: 2, End: 6})
	require.NoError(t, err)
	assert.Equal(t, "TAGA", seq)

	_, err = rec.Region(ctx, domain.Range{Begin: 10, End: 20})
	assert.ErrorIs(t, err, domain.ErrRangeUnavailable)

	avail, ok := rec.Available(ctx, domain.Range{Begin: 0, End: 3})
	require.True(t, ok)
	assert.Equal(t, domain.Range{Begin: 0, End: 13}, avail)

	_, ok = rec.Available(ctx, domain.Range{Begin: 12, End: 14})
	assert.False(t, ok)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "a desc", "ACGTACGTAC", 4))
	assert.Equal(t, ">a desc\nACGT\nACGT\nAC\n", buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, "b", "ACGT", 0))
	assert.Equal(t, ">b\nACGT\n", buf.String())
}

func TestDocument_Select(t *testing.T) {
	doc, err := Parse(strings.NewReader(twoRecords))
	require.NoError(t, err)

	rec, err := doc.Select("second")
	require.NoError(t, err)
	assert.Equal(t, "second", rec.ID)

	_, err = doc.Select("missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = doc.Select("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	single, err := Parse(strings.NewReader(">only\nACGT\n"))
	require.NoError(t, err)
	rec, err = single.Select("")
	require.NoError(t, err)
	assert.Equal(t, "only", rec.ID)
}
