package dictionary

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
)

// SQLSource runs an arbitrary query and streams its rows as
// separator-delimited lines shaped like a flat dictionary file, so the same
// LoadDictionary/LoadBigramDictionary consumer works against either a file
// or a database. The query may return two columns (term, count) or three
// (word1, word2, count); no fixed schema is assumed, matching a deployment
// that builds ad hoc aggregation queries per corpus rather than reading
// from one blessed table.
type SQLSource struct {
	pr *io.PipeReader
}

// NewSQLSource executes query against db and begins streaming its result
// set in the background as lines joined by separator.
func NewSQLSource(ctx context.Context, db *sql.DB, separator, query string, args ...any) (*SQLSource, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("dictionary: querying source: %w", err)
	}

	pr, pw := io.Pipe()
	go streamRows(rows, pw, separator)
	return &SQLSource{pr: pr}, nil
}

func streamRows(rows *sql.Rows, pw *io.PipeWriter, separator string) {
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		pw.CloseWithError(fmt.Errorf("dictionary: reading columns: %w", err))
		return
	}

	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}

	w := bufio.NewWriter(pw)
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			// malformed row: skip rather than aborting the whole stream
			continue
		}
		parts := make([]string, len(vals))
		for i, v := range vals {
			parts[i] = fmt.Sprint(v)
		}
		if _, err := fmt.Fprintln(w, strings.Join(parts, separator)); err != nil {
			pw.CloseWithError(fmt.Errorf("dictionary: writing row: %w", err))
			return
		}
	}

	if err := w.Flush(); err != nil {
		pw.CloseWithError(fmt.Errorf("dictionary: flushing rows: %w", err))
		return
	}
	if err := rows.Err(); err != nil {
		pw.CloseWithError(fmt.Errorf("dictionary: reading rows: %w", err))
		return
	}
	pw.Close()
}

func (s *SQLSource) Read(p []byte) (int, error) {
	return s.pr.Read(p)
}
