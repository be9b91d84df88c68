package handler

import (
	"errors"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/alyonazakharova/excel-constructor/internal/source"
	"github.com/alyonazakharova/excel-constructor/pkg/sheetbuilder"
)

// ExportHandler serves workbook downloads: ad-hoc exports from a JSON body,
// exports of registered datasets, and template-driven exports.
type ExportHandler struct {
	builder      *sheetbuilder.Builder
	datasets     map[string]source.RowSource
	templatePath string
}

func NewExportHandler(builder *sheetbuilder.Builder, templatePath string) *ExportHandler {
	return &ExportHandler{
		builder:      builder,
		datasets:     make(map[string]source.RowSource),
		templatePath: templatePath,
	}
}

// RegisterDataset makes a RowSource exportable under /export/datasets/:name.
func (h *ExportHandler) RegisterDataset(name string, src source.RowSource) {
	h.datasets[name] = src
}

// Export builds a workbook from the request body.
func (h *ExportHandler) Export(c echo.Context) error {
	var req ExportRequest
	if err := c.Bind(&req); err != nil {
		return responseError(c, http.StatusBadRequest, "Invalid request body", err)
	}
	if len(req.Sheets) == 0 {
		return responseError(c, http.StatusBadRequest, "Request contains no sheets", nil)
	}

	headers := make([]sheetbuilder.Header, len(req.Sheets))
	data := make([][]sheetbuilder.Row, len(req.Sheets))
	names := make([]string, len(req.Sheets))
	for i, sheet := range req.Sheets {
		header := make(sheetbuilder.Header, len(sheet.Columns))
		for j, col := range sheet.Columns {
			header[j] = sheetbuilder.Column{Field: col.Field, Name: col.Header, Width: col.Width}
		}
		rows := make([]sheetbuilder.Row, len(sheet.Rows))
		for j, row := range sheet.Rows {
			rows[j] = sheetbuilder.Row(row)
		}
		headers[i] = header
		data[i] = rows
		names[i] = sheet.Name
	}

	buf, err := h.builder.CreateBuffer(c.Request().Context(), headers, data, names)
	if err != nil {
		var vErr *sheetbuilder.ValidationError
		if errors.As(err, &vErr) {
			return responseError(c, http.StatusBadRequest, "Invalid export request", err)
		}
		return responseError(c, http.StatusInternalServerError, "Failed to generate excel file", err)
	}

	return writeAttachment(c, "export.xlsx", buf)
}

// ExportDataset exports a registered dataset as a single-sheet workbook.
func (h *ExportHandler) ExportDataset(c echo.Context) error {
	name := c.Param("name")
	src, ok := h.datasets[name]
	if !ok {
		return responseError(c, http.StatusNotFound, "Unknown dataset", nil)
	}

	ctx := c.Request().Context()
	header, rows, err := src.Fetch(ctx)
	if err != nil {
		return responseError(c, http.StatusInternalServerError, "Failed to fetch dataset", err)
	}

	buf, err := h.builder.CreateSheetBuffer(ctx, header, rows, name)
	if err != nil {
		return responseError(c, http.StatusInternalServerError, "Failed to generate excel file", err)
	}

	return writeAttachment(c, name+".xlsx", buf)
}

// ExportTemplate renders the configured YAML template with the bound data.
func (h *ExportHandler) ExportTemplate(c echo.Context) error {
	raw, err := os.ReadFile(h.templatePath)
	if err != nil {
		return responseError(c, http.StatusInternalServerError, "Failed to read report template", err)
	}
	tmpl, err := sheetbuilder.ParseTemplate(raw)
	if err != nil {
		return responseError(c, http.StatusInternalServerError, "Invalid report template", err)
	}

	var req TemplateExportRequest
	if err := c.Bind(&req); err != nil {
		return responseError(c, http.StatusBadRequest, "Invalid request body", err)
	}

	bound := make(map[string][]sheetbuilder.Row, len(req.Data))
	for name, rows := range req.Data {
		converted := make([]sheetbuilder.Row, len(rows))
		for i, row := range rows {
			converted[i] = sheetbuilder.Row(row)
		}
		bound[name] = converted
	}

	headers, data, names := tmpl.Batch(bound)
	buf, err := h.builder.CreateBuffer(c.Request().Context(), headers, data, names)
	if err != nil {
		return responseError(c, http.StatusInternalServerError, "Failed to generate excel file", err)
	}

	return writeAttachment(c, "report.xlsx", buf)
}
