package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartwork/dashboard/internal/entities"
	"github.com/smartwork/dashboard/internal/store"
)

func newBilling(j *journalRecorder) *BillingService {
	return NewBillingService(NewSettingsService(entities.DefaultSettings(), testDeps(j)), testDeps(j))
}

func TestBillingService_Create(t *testing.T) {
	j := &journalRecorder{}
	svc := newBilling(j)
	ws := demoWorkspace()

	inv := svc.Create(ws, entities.Invoice{
		ClientName: "Acme Corporation",
		Status:     entities.InvoicePaid,
		Items: []entities.InvoiceItem{
			{Description: "Consultation IT", Quantity: 10, UnitPrice: 50000},
			{Description: "Maintenance serveur", Quantity: 1, UnitPrice: 150000},
		},
	})

	assert.Equal(t, "FAC-2024-004", inv.Number)
	assert.Equal(t, entities.InvoiceDraft, inv.Status)
	assert.Equal(t, "2024-03-01", inv.Date)
	assert.Equal(t, "2024-03-31", inv.DueDate)
	assert.Equal(t, int64(500000), inv.Items[0].Total)
	assert.Equal(t, []int{1, 2}, []int{inv.Items[0].ID, inv.Items[1].ID})
	assert.Equal(t, int64(650000), inv.Subtotal)
	assert.Equal(t, int64(117000), inv.Tax)
	assert.Equal(t, int64(767000), inv.Total)
	assert.Equal(t, "Merci pour votre confiance.", inv.Notes)
	assert.Equal(t, entities.AuditEventCreate, j.last().event)
}

func TestBillingService_FollowsWorkspaceSettings(t *testing.T) {
	svc := newBilling(&journalRecorder{})
	ws := demoWorkspace()

	st := svc.settings.Get(ws)
	st.InvoicePrefix = "INV"
	st.TaxRate = decimal.RequireFromString("0.10")
	st.PaymentTermDays = 15
	st.InvoiceNotes = "Payable à réception"
	_, err := svc.settings.Update(ws, st)
	require.NoError(t, err)

	inv := svc.Create(ws, entities.Invoice{
		ClientName: "Acme Corporation",
		Items:      []entities.InvoiceItem{{Description: "Audit", Quantity: 1, UnitPrice: 650000}},
	})
	assert.Equal(t, "INV-2024-004", inv.Number)
	assert.Equal(t, "2024-03-16", inv.DueDate)
	assert.Equal(t, int64(65000), inv.Tax)
	assert.Equal(t, "Payable à réception", inv.Notes)

	kept := svc.Create(ws, entities.Invoice{ClientName: "B", Notes: "Acompte reçu"})
	assert.Equal(t, "Acompte reçu", kept.Notes)

	other := store.NewWorkspace("other", store.Dataset{})
	assert.Equal(t, "FAC-2024-001", svc.Create(other, entities.Invoice{ClientName: "C"}).Number)
}

func TestBillingService_NumberingUsesCollectionSize(t *testing.T) {
	svc := newBilling(&journalRecorder{})
	ws := store.NewWorkspace("empty", store.Dataset{})

	first := svc.Create(ws, entities.Invoice{ClientName: "A"})
	second := svc.Create(ws, entities.Invoice{ClientName: "B"})
	assert.Equal(t, "FAC-2024-001", first.Number)
	assert.Equal(t, "FAC-2024-002", second.Number)
}

func TestBillingService_UpdateRecomputesTotals(t *testing.T) {
	svc := newBilling(&journalRecorder{})
	ws := demoWorkspace()

	inv, err := svc.Get(ws, 2)
	require.NoError(t, err)
	inv.Items = append(inv.Items, entities.InvoiceItem{Description: "Hébergement", Quantity: 2, UnitPrice: 25000})

	updated, err := svc.Update(ws, 2, inv)
	require.NoError(t, err)
	assert.Equal(t, int64(2050000), updated.Subtotal)
	assert.Equal(t, int64(369000), updated.Tax)
	assert.Equal(t, int64(2419000), updated.Total)
}

func TestBillingService_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    entities.InvoiceStatus
		action  func(*BillingService, *store.Workspace, int) (entities.Invoice, error)
		want    entities.InvoiceStatus
		wantErr bool
	}{
		{"send draft", entities.InvoiceDraft, (*BillingService).Send, entities.InvoiceSent, false},
		{"send sent", entities.InvoiceSent, (*BillingService).Send, "", true},
		{"pay sent", entities.InvoiceSent, (*BillingService).Pay, entities.InvoicePaid, false},
		{"pay overdue", entities.InvoiceOverdue, (*BillingService).Pay, entities.InvoicePaid, false},
		{"pay draft", entities.InvoiceDraft, (*BillingService).Pay, "", true},
		{"cancel overdue", entities.InvoiceOverdue, (*BillingService).Cancel, entities.InvoiceCancelled, false},
		{"cancel paid", entities.InvoicePaid, (*BillingService).Cancel, "", true},
		{"cancel cancelled", entities.InvoiceCancelled, (*BillingService).Cancel, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newBilling(&journalRecorder{})
			ws := demoWorkspace()
			_, err := ws.Invoices.Update(1, func(inv *entities.Invoice) error {
				inv.Status = tt.from
				return nil
			})
			require.NoError(t, err)

			inv, err := tt.action(svc, ws, 1)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTransition)
				stored, _ := ws.Invoices.Get(1)
				assert.Equal(t, tt.from, stored.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, inv.Status)
		})
	}

	t.Run("unknown invoice", func(t *testing.T) {
		svc := newBilling(&journalRecorder{})
		_, err := svc.Send(demoWorkspace(), 99)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestBillingService_SweepOverdue(t *testing.T) {
	j := &journalRecorder{}
	svc := newBilling(j)
	ws := demoWorkspace()

	// Draft past due and a sent invoice due in the future stay as they are.
	ws.Invoices.InsertAll([]entities.Invoice{
		{Number: "FAC-2024-004", Status: entities.InvoiceDraft, DueDate: "2024-01-01"},
		{Number: "FAC-2024-005", Status: entities.InvoiceSent, DueDate: "2024-03-01"},
		{Number: "FAC-2024-006", Status: entities.InvoiceSent, DueDate: "2024-02-29"},
	})

	swept := svc.SweepOverdue(ws)
	assert.Equal(t, []string{"FAC-2024-002", "FAC-2024-006"}, swept)
	assert.Equal(t, swept, j.last().invoices)

	want := map[string]entities.InvoiceStatus{
		"FAC-2024-001": entities.InvoicePaid,
		"FAC-2024-002": entities.InvoiceOverdue,
		"FAC-2024-003": entities.InvoiceOverdue,
		"FAC-2024-004": entities.InvoiceDraft,
		"FAC-2024-005": entities.InvoiceSent,
		"FAC-2024-006": entities.InvoiceOverdue,
	}
	for _, inv := range ws.Invoices.List() {
		assert.Equal(t, want[inv.Number], inv.Status, inv.Number)
	}

	t.Run("second sweep changes nothing", func(t *testing.T) {
		before := j.count()
		assert.Empty(t, svc.SweepOverdue(ws))
		assert.Equal(t, before, j.count())
	})
}

func TestBillingService_Stats(t *testing.T) {
	svc := newBilling(&journalRecorder{})
	stats := svc.Stats(demoWorkspace())

	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, int64(767000+2360000+590000), stats.Total)
	assert.Equal(t, int64(767000), stats.Paid)
	assert.Equal(t, int64(2360000+590000), stats.Pending)
	assert.Equal(t, 1, stats.Overdue)
}
