package source

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alyonazakharova/excel-constructor/pkg/sheetbuilder"
)

// DB abstracts database query execution so the source works with *sql.DB,
// *sql.Tx, or a test double.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// PostgresSource exports the result set of a SQL query. The header is
// derived from the result columns.
type PostgresSource struct {
	db    DB
	query string
	args  []interface{}
}

func NewPostgresSource(db DB, query string, args ...interface{}) *PostgresSource {
	return &PostgresSource{db: db, query: query, args: args}
}

func (s *PostgresSource) Fetch(ctx context.Context) (sheetbuilder.Header, []sheetbuilder.Row, error) {
	rows, err := s.db.QueryContext(ctx, s.query, s.args...)
	if err != nil {
		return nil, nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("getting columns: %w", err)
	}

	var out []sheetbuilder.Row
	for rows.Next() {
		values := make([]interface{}, len(columns))
		valuePtrs := make([]interface{}, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}
		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, nil, fmt.Errorf("scanning row: %w", err)
		}

		row := make(sheetbuilder.Row, len(columns))
		for i, col := range columns {
			// SQL NULL leaves the key absent so the cell stays blank.
			if v := formatValue(values[i]); v != nil {
				row[col] = v
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating rows: %w", err)
	}

	return headerFromColumns(columns), out, nil
}

// formatValue normalizes driver values for cell writes.
func formatValue(value interface{}) interface{} {
	switch v := value.(type) {
	case nil:
		return nil
	case []byte:
		return string(v)
	case time.Time:
		return v
	default:
		return v
	}
}
