package sheetbuilder

// Column describes one worksheet column: the key it reads from row maps,
// the display label written into the header row, and the column width.
type Column struct {
	Field string
	Name  string
	Width float64
}

// Header is the ordered column list of a worksheet. Slice order defines
// column order: column A is the first element.
type Header []Column

// Row is one data row, keyed by Column.Field. A missing key leaves the
// corresponding cell blank.
type Row map[string]interface{}

// ComplexHeader is one entry of a complex (merged) header. Exactly one of
// Cell or the From/To pair must be set: Cell writes Value into a single
// cell, From/To merges the rectangle and writes Value into the From cell.
type ComplexHeader struct {
	Cell  string
	From  string
	To    string
	Value interface{}
}

// Alignment mirrors the excelize alignment options the builder supports.
type Alignment struct {
	Horizontal string
	Vertical   string
	WrapText   bool
}

// DefaultAlignment is applied to every column unless overridden.
func DefaultAlignment() Alignment {
	return Alignment{Horizontal: "center", Vertical: "center", WrapText: true}
}
