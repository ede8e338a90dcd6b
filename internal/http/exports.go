package http

import (
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartwork/dashboard/internal/exporters"
	"github.com/smartwork/dashboard/internal/metrics"
	"github.com/smartwork/dashboard/internal/services"
)

type ExportController struct {
	exports *services.ExportService
	metrics *metrics.Metrics
}

func NewExportController(exports *services.ExportService, m *metrics.Metrics) *ExportController {
	return &ExportController{exports: exports, metrics: m}
}

// Export renders one entity as a PDF table or an Excel sheet
// GET /api/export/:entity?format=pdf|xlsx
func (ec *ExportController) Export(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	format, err := exporters.ParseFormat(c.DefaultQuery("format", string(exporters.FormatExcel)))
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	entity := c.Param("entity")
	doc, err := ec.exports.Export(ws, entity, format)
	if err != nil {
		respondError(c, err, entity)
		return
	}
	ec.metrics.ObserveExport(entity, string(format))
	sendDocument(c, doc)
}

// Entities lists what can be exported
// GET /api/export
func (ec *ExportController) Entities(c *gin.Context) {
	respondList(c, ec.exports.Entities())
}

// Report renders the global report
// GET /api/reports/summary.pdf
func (ec *ExportController) Report(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	doc, err := ec.exports.Report(ws)
	if err != nil {
		respondError(c, err, "report")
		return
	}
	ec.metrics.ObserveExport("report", string(exporters.FormatPDF))
	sendDocument(c, doc)
}

// sendDocument streams a rendered file as an attachment.
func sendDocument(c *gin.Context, doc services.Document) {
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.FileName}))
	c.Data(http.StatusOK, doc.ContentType, doc.Body)
}
