package sheetbuilder

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

const (
	defaultPaperSize   = 9 // A4
	defaultOrientation = "landscape"
)

// Builder maps header/row descriptions to excelize worksheet writes and
// serializes the result to an in-memory buffer. A Builder is stateless
// across calls: every CreateBuffer owns its own workbook, so concurrent
// calls are independent.
type Builder struct {
	paperSize   int
	orientation string
	align       Alignment
}

// Option configures a Builder.
type Option func(*Builder)

// WithPaperSize overrides the paper size used in page setup.
func WithPaperSize(size int) Option {
	return func(b *Builder) { b.paperSize = size }
}

// WithDefaultAlignment overrides the alignment applied to columns by default.
func WithDefaultAlignment(a Alignment) Option {
	return func(b *Builder) { b.align = a }
}

func New(opts ...Option) *Builder {
	b := &Builder{
		paperSize:   defaultPaperSize,
		orientation: defaultOrientation,
		align:       DefaultAlignment(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// CreateBuffer builds one worksheet per (header, rows, name) triple and
// returns the serialized workbook. The three slices must have equal length;
// otherwise a *ValidationError is returned before any worksheet is created.
func (b *Builder) CreateBuffer(ctx context.Context, headers []Header, data [][]Row, names []string) ([]byte, error) {
	if len(headers) != len(data) || len(data) != len(names) {
		return nil, &ValidationError{Headers: len(headers), Data: len(data), Names: len(names)}
	}

	f := excelize.NewFile()
	defer f.Close()

	for i := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := b.buildSheet(f, i, names[i], headers[i], data[i]); err != nil {
			return nil, fmt.Errorf("building sheet %q: %w", names[i], err)
		}
	}

	buf := new(bytes.Buffer)
	if _, err := f.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// CreateSheetBuffer is the single-worksheet convenience around CreateBuffer.
func (b *Builder) CreateSheetBuffer(ctx context.Context, header Header, rows []Row, name string) ([]byte, error) {
	return b.CreateBuffer(ctx, []Header{header}, [][]Row{rows}, []string{name})
}

// buildSheet populates one worksheet. Column styles are applied before any
// cell exists so the bold header row style is not clobbered; data cells then
// inherit the column alignment.
func (b *Builder) buildSheet(f *excelize.File, index int, name string, header Header, rows []Row) error {
	if index == 0 {
		if err := f.SetSheetName("Sheet1", name); err != nil {
			return fmt.Errorf("renaming default sheet: %w", err)
		}
	} else if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}

	size := b.paperSize
	orientation := b.orientation
	if err := f.SetPageLayout(name, &excelize.PageLayoutOptions{
		Size:        &size,
		Orientation: &orientation,
	}); err != nil {
		return fmt.Errorf("setting page layout: %w", err)
	}

	if err := b.SetColumnWidths(f, name, header); err != nil {
		return err
	}
	if err := b.MakeRowsBold(f, name, 1); err != nil {
		return err
	}
	if err := b.SetHeaders(f, name, header); err != nil {
		return err
	}
	for j, row := range rows {
		if err := b.AddDataRow(f, name, header, row, 2+j); err != nil {
			return err
		}
	}
	return nil
}

// SetHeaders writes the display names of header into row 1, starting at A.
func (b *Builder) SetHeaders(f *excelize.File, sheet string, header Header) error {
	for i, col := range header {
		cell := ColumnLetter(i+1) + "1"
		if err := f.SetCellValue(sheet, cell, col.Name); err != nil {
			return fmt.Errorf("writing header %q: %w", col.Name, err)
		}
	}
	return nil
}

// SetColumnWidths sets each column's width from the header and applies the
// default alignment to every column.
func (b *Builder) SetColumnWidths(f *excelize.File, sheet string, header Header) error {
	for i, col := range header {
		letter := ColumnLetter(i + 1)
		if err := f.SetColWidth(sheet, letter, letter, col.Width); err != nil {
			return fmt.Errorf("setting width of column %s: %w", letter, err)
		}
	}
	return b.AlignColumns(f, sheet, len(header), nil)
}

// SetPartialColumnWidths applies one width to the named subset of header
// columns, leaving the rest untouched. Unknown field names are ignored.
func (b *Builder) SetPartialColumnWidths(f *excelize.File, sheet string, header Header, fields []string, width float64) error {
	for _, field := range fields {
		for i, col := range header {
			if col.Field != field {
				continue
			}
			letter := ColumnLetter(i + 1)
			if err := f.SetColWidth(sheet, letter, letter, width); err != nil {
				return fmt.Errorf("setting width of column %s: %w", letter, err)
			}
		}
	}
	return nil
}

// AlignColumns applies the builder's default alignment to the first count
// columns. Overrides, keyed by column letter, replace the default for the
// named columns.
func (b *Builder) AlignColumns(f *excelize.File, sheet string, count int, overrides map[string]Alignment) error {
	for i := 1; i <= count; i++ {
		letter := ColumnLetter(i)
		align := b.align
		if ov, ok := overrides[letter]; ok {
			align = ov
		}
		styleID, err := f.NewStyle(&excelize.Style{Alignment: alignmentOptions(align)})
		if err != nil {
			return fmt.Errorf("creating alignment style: %w", err)
		}
		if err := f.SetColStyle(sheet, letter, styleID); err != nil {
			return fmt.Errorf("aligning column %s: %w", letter, err)
		}
	}
	return nil
}

// AlignRows applies one alignment to the given rows.
func (b *Builder) AlignRows(f *excelize.File, sheet string, align Alignment, rows ...int) error {
	styleID, err := f.NewStyle(&excelize.Style{Alignment: alignmentOptions(align)})
	if err != nil {
		return fmt.Errorf("creating alignment style: %w", err)
	}
	for _, row := range rows {
		if err := f.SetRowStyle(sheet, row, row, styleID); err != nil {
			return fmt.Errorf("aligning row %d: %w", row, err)
		}
	}
	return nil
}

// MakeRowsBold marks the given rows bold. The style keeps the builder's
// default alignment: excelize styles are whole-cell, so a bare bold style
// would drop the centered/wrapped look of the header row.
func (b *Builder) MakeRowsBold(f *excelize.File, sheet string, rows ...int) error {
	styleID, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: alignmentOptions(b.align),
	})
	if err != nil {
		return fmt.Errorf("creating bold style: %w", err)
	}
	for _, row := range rows {
		if err := f.SetRowStyle(sheet, row, row, styleID); err != nil {
			return fmt.Errorf("bolding row %d: %w", row, err)
		}
	}
	return nil
}

// MergeCells merges the rectangular range between the two cell references.
func (b *Builder) MergeCells(f *excelize.File, sheet, from, to string) error {
	if err := f.MergeCell(sheet, from, to); err != nil {
		return fmt.Errorf("merging %s:%s: %w", from, to, err)
	}
	return nil
}

// AddDataRow writes one row map into the given 1-based row number, one
// column per header field in header order. Fields absent from the row leave
// their cell blank.
func (b *Builder) AddDataRow(f *excelize.File, sheet string, header Header, row Row, rowNum int) error {
	for i, col := range header {
		value, ok := row[col.Field]
		if !ok {
			continue
		}
		cell := ColumnLetter(i+1) + strconv.Itoa(rowNum)
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("writing cell %s: %w", cell, err)
		}
	}
	return nil
}

// SetComplexHeaders writes a header containing merged cells. Each entry
// either names a single cell or a From/To range; the range is merged and the
// value written to its anchor (From) cell. Any other shape fails with a
// *ConfigurationError carrying the entry.
func (b *Builder) SetComplexHeaders(f *excelize.File, sheet string, entries []ComplexHeader) error {
	for i, entry := range entries {
		switch {
		case entry.Cell != "" && (entry.From != "" || entry.To != ""):
			return &ConfigurationError{Index: i, Entry: entry}
		case entry.Cell != "":
			if err := f.SetCellValue(sheet, entry.Cell, entry.Value); err != nil {
				return fmt.Errorf("writing cell %s: %w", entry.Cell, err)
			}
		case entry.From != "" && entry.To != "":
			if err := b.MergeCells(f, sheet, entry.From, entry.To); err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, entry.From, entry.Value); err != nil {
				return fmt.Errorf("writing cell %s: %w", entry.From, err)
			}
		default:
			return &ConfigurationError{Index: i, Entry: entry}
		}
	}
	return nil
}

// ColumnLetter converts a 1-based column index to its spreadsheet letter
// label (A, B, ... Z, AA, AB, ...), the bijective base-26 scheme excelize
// itself uses for cell references.
func ColumnLetter(n int) string {
	if n < 1 {
		return ""
	}
	var letters []byte
	for n > 0 {
		n--
		letters = append([]byte{byte('A' + n%26)}, letters...)
		n /= 26
	}
	return string(letters)
}

func alignmentOptions(a Alignment) *excelize.Alignment {
	return &excelize.Alignment{
		Horizontal: a.Horizontal,
		Vertical:   a.Vertical,
		WrapText:   a.WrapText,
	}
}
