package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/custodia-labs/seqres/internal/core/domain"
	"github.com/custodia-labs/seqres/internal/core/ports/driven"
)

// fragmentStore implements driven.FragmentStore.
type fragmentStore struct {
	store *Store
}

var _ driven.FragmentStore = (*fragmentStore)(nil)

// Put merges seq at offset into the stored spans of accession.
// Validation and rewrite happen in one transaction.
func (s *fragmentStore) Put(ctx context.Context, accession string, offset int, seq string) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	current, err := querySpans(ctx, tx, accession)
	if err != nil {
		return err
	}

	merged, changed, err := domain.MergeFragment(current, offset, seq)
	if err != nil {
		return domain.WithAccession(err, "put fragment", accession)
	}
	if !changed {
		return nil
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM spans WHERE accession = ?`, accession); err != nil {
		return fmt.Errorf("clearing spans: %w", err)
	}
	for _, span := range merged {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO spans (accession, begin_pos, end_pos, sequence)
			VALUES (?, ?, ?, ?)
		`, accession, span.Range.Begin, span.Range.End, span.Sequence)
		if err != nil {
			return fmt.Errorf("inserting span %s: %w", span.Range, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing spans: %w", err)
	}
	return nil
}

// Get returns the content of r if one span contains it.
func (s *fragmentStore) Get(ctx context.Context, accession string, r domain.Range) (string, bool, error) {
	// substr is 1-based.
	row := s.store.db.QueryRowContext(ctx, `
		SELECT substr(sequence, ? - begin_pos + 1, ?)
		FROM spans
		WHERE accession = ? AND begin_pos <= ? AND end_pos >= ?
		LIMIT 1
	`, r.Begin, r.Len(), accession, r.Begin, r.End)

	var seq string
	err := row.Scan(&seq)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("querying span: %w", err)
	}
	return seq, true, nil
}

// AvailableRange returns the span range containing r.
func (s *fragmentStore) AvailableRange(ctx context.Context, accession string, r domain.Range) (domain.Range, bool, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT begin_pos, end_pos
		FROM spans
		WHERE accession = ? AND begin_pos <= ? AND end_pos >= ?
		LIMIT 1
	`, accession, r.Begin, r.End)

	var found domain.Range
	err := row.Scan(&found.Begin, &found.End)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Range{}, false, nil
	}
	if err != nil {
		return domain.Range{}, false, fmt.Errorf("querying span range: %w", err)
	}
	return found, true, nil
}

// Spans returns the spans of accession ordered by position.
func (s *fragmentStore) Spans(ctx context.Context, accession string) ([]domain.Span, error) {
	return querySpans(ctx, s.store.db, accession)
}

// Accessions lists stored accessions, sorted.
func (s *fragmentStore) Accessions(ctx context.Context) ([]string, error) {
	rows, err := s.store.db.QueryContext(ctx, `SELECT DISTINCT accession FROM spans ORDER BY accession`)
	if err != nil {
		return nil, fmt.Errorf("querying accessions: %w", err)
	}
	defer rows.Close()

	var accessions []string //nolint:prealloc // size unknown from query
	for rows.Next() {
		var acc string
		if err := rows.Scan(&acc); err != nil {
			return nil, fmt.Errorf("scanning accession: %w", err)
		}
		accessions = append(accessions, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating accessions: %w", err)
	}
	return accessions, nil
}

// queryer is satisfied by *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func querySpans(ctx context.Context, q queryer, accession string) ([]domain.Span, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT begin_pos, end_pos, sequence
		FROM spans
		WHERE accession = ?
		ORDER BY begin_pos
	`, accession)
	if err != nil {
		return nil, fmt.Errorf("querying spans: %w", err)
	}
	defer rows.Close()

	var spans []domain.Span //nolint:prealloc // size unknown from query
	for rows.Next() {
		var span domain.Span
		if err := rows.Scan(&span.Range.Begin, &span.Range.End, &span.Sequence); err != nil {
			return nil, fmt.Errorf("scanning span: %w", err)
		}
		spans = append(spans, span)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating spans: %w", err)
	}
	return spans, nil
}

// SupportsConcurrentAccess reports that the store may be shared across goroutines.
func (s *fragmentStore) SupportsConcurrentAccess() bool {
	return true
}
