package sheetbuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func colAlignment(t *testing.T, f *excelize.File, sheet, col string) *excelize.Alignment {
	t.Helper()
	styleID, err := f.GetColStyle(sheet, col)
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Alignment)
	return style.Alignment
}

func TestAlignColumns_DefaultAndOverride(t *testing.T) {
	b := New()
	f := excelize.NewFile()
	defer f.Close()

	err := b.AlignColumns(f, "Sheet1", 2, map[string]Alignment{
		"B": {Horizontal: "left", Vertical: "top"},
	})
	require.NoError(t, err)

	alignA := colAlignment(t, f, "Sheet1", "A")
	assert.Equal(t, "center", alignA.Horizontal)
	assert.Equal(t, "center", alignA.Vertical)
	assert.True(t, alignA.WrapText)

	alignB := colAlignment(t, f, "Sheet1", "B")
	assert.Equal(t, "left", alignB.Horizontal)
	assert.Equal(t, "top", alignB.Vertical)
	assert.False(t, alignB.WrapText)
}

func TestAlignRows(t *testing.T) {
	b := New()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetCellValue("Sheet1", "A3", "cell"))

	err := b.AlignRows(f, "Sheet1", Alignment{Horizontal: "right", Vertical: "bottom"}, 3)
	require.NoError(t, err)

	styleID, err := f.GetCellStyle("Sheet1", "A3")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Alignment)
	assert.Equal(t, "right", style.Alignment.Horizontal)
	assert.Equal(t, "bottom", style.Alignment.Vertical)
}

func TestMakeRowsBold(t *testing.T) {
	b := New()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, b.MakeRowsBold(f, "Sheet1", 1, 2))
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "title"))

	for _, cell := range []string{"A1", "A2"} {
		styleID, err := f.GetCellStyle("Sheet1", cell)
		require.NoError(t, err)
		style, err := f.GetStyle(styleID)
		require.NoError(t, err)
		require.NotNil(t, style.Font, "cell %s", cell)
		assert.True(t, style.Font.Bold, "cell %s", cell)
	}
}

func TestSetPartialColumnWidths(t *testing.T) {
	b := New()
	f := excelize.NewFile()
	defer f.Close()

	header := Header{
		{Field: "id", Name: "ID", Width: 10},
		{Field: "label", Name: "Label", Width: 20},
		{Field: "note", Name: "Note", Width: 15},
	}
	require.NoError(t, b.SetColumnWidths(f, "Sheet1", header))

	err := b.SetPartialColumnWidths(f, "Sheet1", header, []string{"label", "unknown"}, 33)
	require.NoError(t, err)

	widthA, err := f.GetColWidth("Sheet1", "A")
	require.NoError(t, err)
	assert.Equal(t, 10.0, widthA)

	widthB, err := f.GetColWidth("Sheet1", "B")
	require.NoError(t, err)
	assert.Equal(t, 33.0, widthB)

	widthC, err := f.GetColWidth("Sheet1", "C")
	require.NoError(t, err)
	assert.Equal(t, 15.0, widthC)
}

func TestMergeCells(t *testing.T) {
	b := New()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, b.MergeCells(f, "Sheet1", "A1", "C2"))

	merges, err := f.GetMergeCells("Sheet1")
	require.NoError(t, err)
	require.Len(t, merges, 1)
	assert.Equal(t, "A1", merges[0].GetStartAxis())
	assert.Equal(t, "C2", merges[0].GetEndAxis())
}
