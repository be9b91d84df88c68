package handler

// ExportRequest is the body of POST /export.
type ExportRequest struct {
	Sheets []SheetRequest `json:"sheets"`
}

// SheetRequest describes one worksheet to build.
type SheetRequest struct {
	Name    string                   `json:"name"`
	Columns []ColumnRequest          `json:"columns"`
	Rows    []map[string]interface{} `json:"rows"`
}

// ColumnRequest describes one column; order in the request is column order.
type ColumnRequest struct {
	Field  string  `json:"field"`
	Header string  `json:"header"`
	Width  float64 `json:"width"`
}

// TemplateExportRequest is the body of POST /export/template: row data keyed
// by template sheet name.
type TemplateExportRequest struct {
	Data map[string][]map[string]interface{} `json:"data"`
}
