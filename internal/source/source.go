// Package source adapts external data stores to the sheet builder: each
// RowSource turns a query result into an ordered header and row maps ready
// for workbook construction.
package source

import (
	"context"
	"strings"

	"github.com/alyonazakharova/excel-constructor/pkg/sheetbuilder"
)

const defaultColumnWidth = 20

// RowSource produces one worksheet worth of data.
type RowSource interface {
	Fetch(ctx context.Context) (sheetbuilder.Header, []sheetbuilder.Row, error)
}

// headerFromColumns derives a header from raw column names, in order.
func headerFromColumns(columns []string) sheetbuilder.Header {
	header := make(sheetbuilder.Header, len(columns))
	for i, col := range columns {
		header[i] = sheetbuilder.Column{
			Field: col,
			Name:  columnLabel(col),
			Width: defaultColumnWidth,
		}
	}
	return header
}

// columnLabel turns a snake_case column name into a display label
// ("hire_date" -> "Hire Date").
func columnLabel(column string) string {
	parts := strings.Split(column, "_")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}
