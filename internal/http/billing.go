package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartwork/dashboard/internal/entities"
	"github.com/smartwork/dashboard/internal/services"
	"github.com/smartwork/dashboard/internal/store"
)

type BillingController struct {
	service *services.BillingService
	exports *services.ExportService
}

func NewBillingController(service *services.BillingService, exports *services.ExportService) *BillingController {
	return &BillingController{service: service, exports: exports}
}

// search backs GET /api/invoices?q=&status=
func (bc *BillingController) search(c *gin.Context, ws *store.Workspace) []entities.Invoice {
	return bc.service.Search(ws, c.Query("q"), entities.InvoiceStatus(c.Query("status")))
}

// Stats returns invoiced, paid and pending totals
// GET /api/invoices/stats
func (bc *BillingController) Stats(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, bc.service.Stats(ws))
}

// POST /api/invoices/:id/send
func (bc *BillingController) Send(c *gin.Context) {
	bc.transition(c, bc.service.Send)
}

// POST /api/invoices/:id/pay
func (bc *BillingController) Pay(c *gin.Context) {
	bc.transition(c, bc.service.Pay)
}

// POST /api/invoices/:id/cancel
func (bc *BillingController) Cancel(c *gin.Context) {
	bc.transition(c, bc.service.Cancel)
}

func (bc *BillingController) transition(c *gin.Context, action func(*store.Workspace, int) (entities.Invoice, error)) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	inv, err := action(ws, id)
	if err != nil {
		respondError(c, err, "invoice")
		return
	}
	c.JSON(http.StatusOK, inv)
}

// PDF renders one invoice
// GET /api/invoices/:id/pdf
func (bc *BillingController) PDF(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	doc, err := bc.exports.Invoice(ws, id)
	if err != nil {
		respondError(c, err, "invoice")
		return
	}
	sendDocument(c, doc)
}

type PayrollController struct {
	service *services.PayrollService
	exports *services.ExportService
}

func NewPayrollController(service *services.PayrollService, exports *services.ExportService) *PayrollController {
	return &PayrollController{service: service, exports: exports}
}

// Stats returns payroll totals
// GET /api/payslips/stats
func (pc *PayrollController) Stats(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, pc.service.Stats(ws))
}

// POST /api/payslips/:id/validate
func (pc *PayrollController) Validate(c *gin.Context) {
	pc.transition(c, pc.service.Validate)
}

// POST /api/payslips/:id/pay
func (pc *PayrollController) Pay(c *gin.Context) {
	pc.transition(c, pc.service.Pay)
}

func (pc *PayrollController) transition(c *gin.Context, action func(*store.Workspace, int) (entities.Payslip, error)) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	p, err := action(ws, id)
	if err != nil {
		respondError(c, err, "payslip")
		return
	}
	c.JSON(http.StatusOK, p)
}

// PDF renders one payslip
// GET /api/payslips/:id/pdf
func (pc *PayrollController) PDF(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	doc, err := pc.exports.Payslip(ws, id)
	if err != nil {
		respondError(c, err, "payslip")
		return
	}
	sendDocument(c, doc)
}
