package sheetbuilder

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleHeader() Header {
	return Header{
		{Field: "id", Name: "ID", Width: 10},
		{Field: "label", Name: "Label", Width: 20},
	}
}

func sampleRows() []Row {
	return []Row{
		{"id": 1, "label": "a"},
		{"id": 2, "label": "b"},
	}
}

func openBuffer(t *testing.T, buf []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(buf))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestCreateBuffer_HeaderAndDataRoundTrip(t *testing.T) {
	b := New()

	buf, err := b.CreateBuffer(context.Background(), []Header{sampleHeader()}, [][]Row{sampleRows()}, []string{"Report"})
	require.NoError(t, err)

	f := openBuffer(t, buf)

	rows, err := f.GetRows("Report")
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"ID", "Label"},
		{"1", "a"},
		{"2", "b"},
	}, rows)

	// Row 1 must be bold
	styleID, err := f.GetCellStyle("Report", "A1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)

	// Column widths come from the header definition
	widthA, err := f.GetColWidth("Report", "A")
	require.NoError(t, err)
	assert.Equal(t, 10.0, widthA)

	widthB, err := f.GetColWidth("Report", "B")
	require.NoError(t, err)
	assert.Equal(t, 20.0, widthB)
}

func TestCreateBuffer_PageSetup(t *testing.T) {
	b := New()

	buf, err := b.CreateBuffer(context.Background(), []Header{sampleHeader()}, [][]Row{nil}, []string{"Report"})
	require.NoError(t, err)

	f := openBuffer(t, buf)

	layout, err := f.GetPageLayout("Report")
	require.NoError(t, err)
	require.NotNil(t, layout.Orientation)
	assert.Equal(t, "landscape", *layout.Orientation)
	require.NotNil(t, layout.Size)
	assert.Equal(t, 9, *layout.Size)
}

func TestCreateBuffer_DefaultColumnAlignment(t *testing.T) {
	b := New()

	buf, err := b.CreateBuffer(context.Background(), []Header{sampleHeader()}, [][]Row{sampleRows()}, []string{"Report"})
	require.NoError(t, err)

	f := openBuffer(t, buf)

	// Data cells inherit the column style
	styleID, err := f.GetCellStyle("Report", "A2")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Alignment)
	assert.Equal(t, "center", style.Alignment.Horizontal)
	assert.Equal(t, "center", style.Alignment.Vertical)
	assert.True(t, style.Alignment.WrapText)
}

func TestCreateBuffer_SizeMismatch(t *testing.T) {
	b := New()

	headers := []Header{sampleHeader(), sampleHeader()}
	data := [][]Row{sampleRows(), sampleRows()}
	names := []string{"Only One"}

	buf, err := b.CreateBuffer(context.Background(), headers, data, names)
	require.Error(t, err)
	assert.Nil(t, buf)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, 2, vErr.Headers)
	assert.Equal(t, 2, vErr.Data)
	assert.Equal(t, 1, vErr.Names)
	assert.Contains(t, err.Error(), "size mismatch")
}

func TestCreateSheetBuffer_MatchesBatch(t *testing.T) {
	b := New()
	ctx := context.Background()

	single, err := b.CreateSheetBuffer(ctx, sampleHeader(), sampleRows(), "Report")
	require.NoError(t, err)

	batch, err := b.CreateBuffer(ctx, []Header{sampleHeader()}, [][]Row{sampleRows()}, []string{"Report"})
	require.NoError(t, err)

	fSingle := openBuffer(t, single)
	fBatch := openBuffer(t, batch)

	assert.Equal(t, fBatch.GetSheetList(), fSingle.GetSheetList())

	rowsSingle, err := fSingle.GetRows("Report")
	require.NoError(t, err)
	rowsBatch, err := fBatch.GetRows("Report")
	require.NoError(t, err)
	assert.Equal(t, rowsBatch, rowsSingle)
}

func TestCreateBuffer_MultiSheet(t *testing.T) {
	b := New()

	headers := []Header{
		sampleHeader(),
		{{Field: "month", Name: "Month", Width: 15}, {Field: "amount", Name: "Amount", Width: 12}},
	}
	data := [][]Row{
		sampleRows(),
		{{"month": "January", "amount": 5000.0}},
	}
	names := []string{"Items", "Sales"}

	buf, err := b.CreateBuffer(context.Background(), headers, data, names)
	require.NoError(t, err)

	f := openBuffer(t, buf)
	assert.Equal(t, []string{"Items", "Sales"}, f.GetSheetList())

	itemRows, err := f.GetRows("Items")
	require.NoError(t, err)
	assert.Len(t, itemRows, 3)

	salesRows, err := f.GetRows("Sales")
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"Month", "Amount"},
		{"January", "5000"},
	}, salesRows)
}

func TestCreateBuffer_MissingFieldLeavesBlank(t *testing.T) {
	b := New()

	rows := []Row{{"id": 1}} // no "label"
	buf, err := b.CreateBuffer(context.Background(), []Header{sampleHeader()}, [][]Row{rows}, []string{"Report"})
	require.NoError(t, err)

	f := openBuffer(t, buf)

	value, err := f.GetCellValue("Report", "B2")
	require.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestCreateBuffer_CancelledContext(t *testing.T) {
	b := New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.CreateBuffer(ctx, []Header{sampleHeader()}, [][]Row{sampleRows()}, []string{"Report"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
