package services

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/smartwork/dashboard/internal/entities"
	"github.com/smartwork/dashboard/internal/exporters"
	"github.com/smartwork/dashboard/internal/store"
)

// Document is a rendered export ready to be downloaded or written to disk.
type Document struct {
	FileName    string
	ContentType string
	Body        []byte
	Records     int
}

// exportFunc renders the records of one entity.
type exportFunc func(ws *store.Workspace, format exporters.Format, now time.Time, w io.Writer) (fileName string, records int, err error)

func projectionExport[T any](p exporters.Projection[T], list func(*store.Workspace) []T) exportFunc {
	return func(ws *store.Workspace, format exporters.Format, now time.Time, w io.Writer) (string, int, error) {
		records := list(ws)
		table := p.Render(records, format)
		var err error
		if format == exporters.FormatPDF {
			err = exporters.WritePDF(w, table, now)
		} else {
			err = exporters.WriteExcel(w, table)
		}
		return p.FileName(format, now), len(records), err
	}
}

// ExportService renders workspace collections and single documents.
type ExportService struct {
	deps      Deps
	billing   *BillingService
	dashboard *DashboardService
	exports   map[string]exportFunc
}

func NewExportService(billing *BillingService, dashboard *DashboardService, inventory *InventoryService, deps Deps) *ExportService {
	return &ExportService{
		deps:      deps.withDefaults(),
		billing:   billing,
		dashboard: dashboard,
		exports: map[string]exportFunc{
			"employees":       projectionExport(exporters.Employees, func(ws *store.Workspace) []entities.Employee { return ws.Employees.List() }),
			"clients":         projectionExport(exporters.Clients, func(ws *store.Workspace) []entities.Client { return ws.Clients.List() }),
			"tasks":           projectionExport(exporters.Tasks, func(ws *store.Workspace) []entities.Task { return ws.Tasks.List() }),
			"products":        projectionExport(exporters.Products, func(ws *store.Workspace) []entities.Product { return ws.Products.List() }),
			"stock-movements": projectionExport(exporters.Movements, inventory.Movements),
			"invoices":        projectionExport(exporters.Invoices, func(ws *store.Workspace) []entities.Invoice { return ws.Invoices.List() }),
			"payslips":        projectionExport(exporters.Payslips, func(ws *store.Workspace) []entities.Payslip { return ws.Payslips.List() }),
			"attendance":      projectionExport(exporters.Attendance, func(ws *store.Workspace) []entities.AttendanceRecord { return ws.Attendance.List() }),
		},
	}
}

// Entities lists the names accepted by Export, sorted.
func (s *ExportService) Entities() []string {
	names := make([]string, 0, len(s.exports))
	for name := range s.exports {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Export renders every record of entity in format.
func (s *ExportService) Export(ws *store.Workspace, entity string, format exporters.Format) (Document, error) {
	export, ok := s.exports[entity]
	if !ok {
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownEntity, entity)
	}

	var buf bytes.Buffer
	name, records, err := export(ws, format, s.deps.Now(), &buf)
	s.deps.Journal.LogExport(ws.ID, entity, name, records, err)
	if err != nil {
		return Document{}, fmt.Errorf("export %s: %w", entity, err)
	}
	return Document{FileName: name, ContentType: format.ContentType(), Body: buf.Bytes(), Records: records}, nil
}

func (s *ExportService) Invoice(ws *store.Workspace, id int) (Document, error) {
	inv, err := ws.Invoices.Get(id)
	if err != nil {
		return Document{}, err
	}
	var buf bytes.Buffer
	name := exporters.InvoiceFileName(inv)
	err = exporters.WriteInvoice(&buf, inv, s.billing.Issuer(ws), s.deps.Now())
	s.deps.Journal.LogExport(ws.ID, "invoice", name, 1, err)
	if err != nil {
		return Document{}, fmt.Errorf("render invoice %s: %w", inv.Number, err)
	}
	return Document{FileName: name, ContentType: exporters.FormatPDF.ContentType(), Body: buf.Bytes(), Records: 1}, nil
}

func (s *ExportService) Payslip(ws *store.Workspace, id int) (Document, error) {
	p, err := ws.Payslips.Get(id)
	if err != nil {
		return Document{}, err
	}
	var buf bytes.Buffer
	name := exporters.PayslipFileName(p)
	err = exporters.WritePayslip(&buf, p, s.deps.Now())
	s.deps.Journal.LogExport(ws.ID, "payslip", name, 1, err)
	if err != nil {
		return Document{}, fmt.Errorf("render payslip %d: %w", id, err)
	}
	return Document{FileName: name, ContentType: exporters.FormatPDF.ContentType(), Body: buf.Bytes(), Records: 1}, nil
}

// Report renders the global report.
func (s *ExportService) Report(ws *store.Workspace) (Document, error) {
	now := s.deps.Now()
	var buf bytes.Buffer
	name := exporters.ReportFileName(now)
	err := exporters.WriteReport(&buf, s.dashboard.Report(ws), now)
	s.deps.Journal.LogExport(ws.ID, "report", name, 1, err)
	if err != nil {
		return Document{}, fmt.Errorf("render report: %w", err)
	}
	return Document{FileName: name, ContentType: exporters.FormatPDF.ContentType(), Body: buf.Bytes(), Records: 1}, nil
}
