package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/smartwork/dashboard/internal/config"
	"github.com/smartwork/dashboard/internal/entities"
	"github.com/smartwork/dashboard/internal/exporters"
	"github.com/smartwork/dashboard/internal/importers"
	"github.com/smartwork/dashboard/internal/store"
)

func newServices(j *journalRecorder) *Services {
	cfg := &config.Config{
		Import:  config.Import{PreviewRows: 10},
		Billing: config.Billing{TaxRate: entities.DefaultTaxRate, NumberPrefix: "FAC"},
	}
	return New(cfg, &stubSender{}, testDeps(j))
}

func TestDashboardService_Overview(t *testing.T) {
	svc := newServices(&journalRecorder{})
	o := svc.Dashboard.Overview(demoWorkspace())

	assert.Equal(t, 6, o.Employees)
	assert.Equal(t, 4, o.ActiveTasks)
	assert.Equal(t, 3, o.ActiveClients)
	assert.Equal(t, "2025-11-14", o.AttendanceDay)
	assert.Equal(t, 5, o.PresentToday)
	assert.Equal(t, 2, o.StockAlerts)
	assert.Equal(t, int64(767000), o.Invoices.Paid)
	assert.Equal(t, 2, o.Messages.EmailsSent+o.Messages.WhatsAppSent)
}

func TestDashboardService_Report(t *testing.T) {
	svc := newServices(&journalRecorder{})
	r := svc.Dashboard.Report(demoWorkspace())

	labels := map[string]string{}
	for _, ind := range r.Indicators {
		labels[ind.Label] = ind.Value
	}
	assert.Equal(t, "6", labels["Employés"])
	assert.Equal(t, "5", labels["Présents (14/11/2025)"])
	assert.Equal(t, "2", labels["Tâches terminées"])
	assert.Equal(t, "9 485 000 FCFA", labels["Valeur du stock"])
	require.Len(t, r.TopProducts, 4)
	assert.Equal(t, "HP-LAP-001", r.TopProducts[0].SKU)
}

func TestExportService_Export(t *testing.T) {
	j := &journalRecorder{}
	svc := newServices(j)
	ws := demoWorkspace()

	t.Run("excel", func(t *testing.T) {
		doc, err := svc.Exports.Export(ws, "employees", exporters.FormatExcel)
		require.NoError(t, err)
		assert.Equal(t, "employes-2024-03-01.xlsx", doc.FileName)
		assert.Equal(t, 6, doc.Records)
		assert.Equal(t, exporters.FormatExcel.ContentType(), doc.ContentType)

		f, err := excelize.OpenReader(bytes.NewReader(doc.Body))
		require.NoError(t, err)
		defer f.Close()
		rows, err := f.GetRows(f.GetSheetName(0))
		require.NoError(t, err)
		assert.Len(t, rows, 7)

		assert.Equal(t, "export", j.last().kind)
		assert.Equal(t, "employes-2024-03-01.xlsx", j.last().text)
	})

	t.Run("pdf", func(t *testing.T) {
		doc, err := svc.Exports.Export(ws, "stock-movements", exporters.FormatPDF)
		require.NoError(t, err)
		assert.Equal(t, "mouvements-2024-03-01.pdf", doc.FileName)
		assert.True(t, bytes.HasPrefix(doc.Body, []byte("%PDF")))
	})

	t.Run("unknown entity", func(t *testing.T) {
		_, err := svc.Exports.Export(ws, "suppliers", exporters.FormatPDF)
		assert.ErrorIs(t, err, ErrUnknownEntity)
	})

	t.Run("documents", func(t *testing.T) {
		inv, err := svc.Exports.Invoice(ws, 1)
		require.NoError(t, err)
		assert.Equal(t, "FAC-2024-001.pdf", inv.FileName)

		slip, err := svc.Exports.Payslip(ws, 1)
		require.NoError(t, err)
		assert.Equal(t, "bulletin-Amadou-Diallo-Janvier-2024.pdf", slip.FileName)

		report, err := svc.Exports.Report(ws)
		require.NoError(t, err)
		assert.Equal(t, "rapport-2024-03-01.pdf", report.FileName)

		_, err = svc.Exports.Invoice(ws, 99)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	assert.Equal(t, []string{"attendance", "clients", "employees", "invoices", "payslips", "products", "stock-movements", "tasks"}, svc.Exports.Entities())
}

func TestImportService(t *testing.T) {
	ctx := context.Background()
	csv := "Nom;SKU;Quantité;Stock Minimum;Prix Vente\n" +
		"Souris;MS-001;2;5;15 000 FCFA\n" +
		";NO-NAME;1;1;100\n" +
		"Casque;HS-001;12;5;45000\n"

	t.Run("confirm appends to the workspace", func(t *testing.T) {
		j := &journalRecorder{}
		svc := newServices(j)
		ws := demoWorkspace()

		preview, err := svc.Imports.Select(ctx, ws, "products", importers.NewBytesSource("stock.csv", []byte(csv)))
		require.NoError(t, err)
		assert.True(t, preview.CanConfirm)
		assert.Equal(t, 3, preview.TotalRows)

		summary, err := svc.Imports.Confirm(ctx, ws, "products")
		require.NoError(t, err)
		assert.Equal(t, 2, summary.Imported)
		assert.Equal(t, 1, summary.RejectedCount)
		assert.Equal(t, summary.Total-summary.Imported, summary.RejectedCount)

		products := ws.Products.List()
		require.Len(t, products, 6)
		assert.Equal(t, 5, products[4].ID)
		assert.Equal(t, entities.StockLow, products[4].Status)
		assert.Equal(t, int64(15000), products[4].UnitPrice)
		assert.Equal(t, 6, products[5].ID)
		assert.Equal(t, entities.StockAvailable, products[5].Status)

		assert.Equal(t, "import", j.last().kind)
		assert.Equal(t, 2, j.last().summary.Imported)

		current, err := svc.Imports.Current(ws, "products")
		require.NoError(t, err)
		assert.Equal(t, importers.StateIdle, current.State)
	})

	t.Run("sessions are per workspace", func(t *testing.T) {
		svc := newServices(&journalRecorder{})
		a, b := demoWorkspace(), store.NewWorkspace("other", store.Dataset{})

		_, err := svc.Imports.Select(ctx, a, "products", importers.NewBytesSource("stock.csv", []byte(csv)))
		require.NoError(t, err)

		other, err := svc.Imports.Current(b, "products")
		require.NoError(t, err)
		assert.Equal(t, importers.StateIdle, other.State)

		require.NoError(t, svc.Imports.Cancel(a, "products"))
		_, err = svc.Imports.Confirm(ctx, a, "products")
		assert.ErrorIs(t, err, importers.ErrNotPreviewing)
	})

	t.Run("tasks get a creation date", func(t *testing.T) {
		svc := newServices(&journalRecorder{})
		ws := demoWorkspace()

		_, err := svc.Imports.Select(ctx, ws, "tasks", importers.NewBytesSource("tasks.csv", []byte("Titre,Statut\nClôture mensuelle,En cours\n")))
		require.NoError(t, err)
		_, err = svc.Imports.Confirm(ctx, ws, "tasks")
		require.NoError(t, err)

		task, err := ws.Tasks.Get(7)
		require.NoError(t, err)
		assert.Equal(t, entities.TaskInProgress, task.Status)
		assert.Equal(t, "2024-03-01", task.CreatedAt)
	})

	t.Run("unknown kind", func(t *testing.T) {
		svc := newServices(&journalRecorder{})
		_, err := svc.Imports.Current(demoWorkspace(), "invoices")
		assert.ErrorIs(t, err, ErrUnknownEntity)
	})

	t.Run("template", func(t *testing.T) {
		svc := newServices(&journalRecorder{})
		var buf bytes.Buffer
		name, err := svc.Imports.Template("products", &buf)
		require.NoError(t, err)
		assert.Equal(t, "template-produits.xlsx", name)

		sheet, err := importers.Decode(name, buf.Bytes())
		require.NoError(t, err)
		assert.Equal(t, "Nom", sheet.Headers[0])
		assert.True(t, strings.EqualFold("Requis", sheet.Rows[0]["Nom"]))

		assert.Equal(t, []string{"clients", "employees", "products", "tasks"}, svc.Imports.Kinds())
	})
}
