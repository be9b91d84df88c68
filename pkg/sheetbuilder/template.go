package sheetbuilder

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Template declares workbook structure in YAML so reports can be reshaped
// without a rebuild:
//
//	sheets:
//	  - name: "Employees"
//	    columns:
//	      - field: "id"
//	        header: "ID"
//	        width: 10
//
// Data is bound at render time, by sheet name.
type Template struct {
	Sheets []SheetTemplate `yaml:"sheets"`
}

// SheetTemplate declares one worksheet and its ordered columns.
type SheetTemplate struct {
	Name    string           `yaml:"name"`
	Columns []ColumnTemplate `yaml:"columns"`
}

// ColumnTemplate declares one column.
type ColumnTemplate struct {
	Field  string  `yaml:"field"`
	Header string  `yaml:"header"`
	Width  float64 `yaml:"width"`
}

// ParseTemplate decodes a YAML template.
func ParseTemplate(data []byte) (*Template, error) {
	var tmpl Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, fmt.Errorf("decode template: %w", err)
	}
	if len(tmpl.Sheets) == 0 {
		return nil, fmt.Errorf("template declares no sheets")
	}
	return &tmpl, nil
}

// Sheet returns the sheet template with the given name, or nil.
func (t *Template) Sheet(name string) *SheetTemplate {
	for i := range t.Sheets {
		if t.Sheets[i].Name == name {
			return &t.Sheets[i]
		}
	}
	return nil
}

// Header converts the declared columns to a builder Header.
func (st *SheetTemplate) Header() Header {
	header := make(Header, len(st.Columns))
	for i, col := range st.Columns {
		header[i] = Column{Field: col.Field, Name: col.Header, Width: col.Width}
	}
	return header
}

// Batch binds row data to the template by sheet name and returns the
// parallel slices CreateBuffer consumes, in template order. Sheets with no
// bound data are rendered with an empty row set.
func (t *Template) Batch(data map[string][]Row) ([]Header, [][]Row, []string) {
	headers := make([]Header, len(t.Sheets))
	rows := make([][]Row, len(t.Sheets))
	names := make([]string, len(t.Sheets))
	for i := range t.Sheets {
		headers[i] = t.Sheets[i].Header()
		rows[i] = data[t.Sheets[i].Name]
		names[i] = t.Sheets[i].Name
	}
	return headers, rows, names
}
