package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alyonazakharova/excel-constructor/internal/logger"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// APIResponse is the JSON envelope for non-file responses.
type APIResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func responseError(c echo.Context, status int, message string, err error) error {
	if err != nil {
		logger.Error(c.Request().Context(), message, err)
	} else {
		logger.Warn(c.Request().Context(), message)
	}
	return c.JSON(status, APIResponse{Message: message})
}

// writeAttachment sends workbook bytes as a file download.
func writeAttachment(c echo.Context, filename string, data []byte) error {
	c.Response().Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Response().Header().Set("Content-Transfer-Encoding", "binary")
	return c.Blob(http.StatusOK, contentTypeXLSX, data)
}
