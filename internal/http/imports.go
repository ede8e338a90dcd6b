package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartwork/dashboard/internal/exporters"
	"github.com/smartwork/dashboard/internal/importers"
	"github.com/smartwork/dashboard/internal/metrics"
	"github.com/smartwork/dashboard/internal/services"
)

// uploadField is the multipart field carrying the spreadsheet.
const uploadField = "file"

type ImportController struct {
	imports        *services.ImportService
	metrics        *metrics.Metrics
	maxUploadBytes int64
}

func NewImportController(imports *services.ImportService, m *metrics.Metrics, maxUploadBytes int64) *ImportController {
	return &ImportController{imports: imports, metrics: m, maxUploadBytes: maxUploadBytes}
}

// Select uploads a spreadsheet and returns its preview. A new upload
// replaces the current preview.
// POST /api/imports/:entity
func (ic *ImportController) Select(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	kind := c.Param("entity")

	if ic.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, ic.maxUploadBytes)
	}
	fh, err := c.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
				Error: fmt.Sprintf("file exceeds %d bytes", ic.maxUploadBytes),
				Code:  "file_too_large",
			})
			return
		}
		respondBadRequest(c, "multipart field \""+uploadField+"\" is required")
		return
	}

	f, err := fh.Open()
	if err != nil {
		respondInternalError(c, err, "open upload")
		return
	}
	defer f.Close()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, f); err != nil {
		respondInternalError(c, err, "read upload")
		return
	}

	preview, err := ic.imports.Select(c.Request.Context(), ws, kind, importers.NewBytesSource(fh.Filename, buf.Bytes()))
	if err != nil {
		respondError(c, err, kind)
		return
	}
	c.JSON(http.StatusOK, preview)
}

// Current returns the preview state
// GET /api/imports/:entity
func (ic *ImportController) Current(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	kind := c.Param("entity")
	preview, err := ic.imports.Current(ws, kind)
	if err != nil {
		respondError(c, err, kind)
		return
	}
	c.JSON(http.StatusOK, preview)
}

// Confirm appends the valid rows to the workspace
// POST /api/imports/:entity/confirm
func (ic *ImportController) Confirm(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	kind := c.Param("entity")
	summary, err := ic.imports.Confirm(c.Request.Context(), ws, kind)

	var importErr *importers.ImportError
	if err == nil || errors.As(err, &importErr) {
		ic.metrics.ObserveImport(kind, summary.Imported, summary.RejectedCount, err)
	}
	if err != nil {
		if importErr != nil {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error(), Code: "import_failed"})
			return
		}
		respondError(c, err, kind)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Cancel drops the preview
// DELETE /api/imports/:entity
func (ic *ImportController) Cancel(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	kind := c.Param("entity")
	if err := ic.imports.Cancel(ws, kind); err != nil {
		respondError(c, err, kind)
		return
	}
	c.Status(http.StatusNoContent)
}

// Template downloads the template workbook
// GET /api/imports/:entity/template
func (ic *ImportController) Template(c *gin.Context) {
	var buf bytes.Buffer
	name, err := ic.imports.Template(c.Param("entity"), &buf)
	if err != nil {
		respondError(c, err, "template")
		return
	}
	sendDocument(c, services.Document{
		FileName:    name,
		ContentType: exporters.FormatExcel.ContentType(),
		Body:        buf.Bytes(),
	})
}

// Kinds lists the importable entities
// GET /api/imports
func (ic *ImportController) Kinds(c *gin.Context) {
	respondList(c, ic.imports.Kinds())
}
