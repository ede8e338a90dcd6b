package services

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/smartwork/dashboard/internal/entities"
	"github.com/smartwork/dashboard/internal/store"
)

// InvoiceStats are the amounts shown above the invoice list.
type InvoiceStats struct {
	Count   int   `json:"count"`
	Total   int64 `json:"total"`
	Paid    int64 `json:"paid"`
	Pending int64 `json:"pending"`
	Overdue int   `json:"overdue"`
}

// BillingService numbers, prices and moves invoices through
// Brouillon → Envoyée → Payée, with Annulée and En retard on the side.
type BillingService struct {
	*Records[entities.Invoice, *entities.Invoice]
	settings *SettingsService
}

func NewBillingService(settings *SettingsService, deps Deps) *BillingService {
	s := &BillingService{settings: settings}
	s.Records = &Records[entities.Invoice, *entities.Invoice]{
		entity:     "invoice",
		collection: func(ws *store.Workspace) *store.Invoices { return ws.Invoices },
		matches: func(inv entities.Invoice, q string) bool {
			return contains(q, inv.Number, inv.ClientName)
		},
		prepare: func(ws *store.Workspace, inv *entities.Invoice) {
			inv.Recalculate(settings.Get(ws).TaxRate)
		},
		describe: func(inv entities.Invoice) string { return "invoice " + inv.Number },
		deps:     deps.withDefaults(),
	}
	return s
}

// Issuer returns the settings printed on the workspace's invoice documents.
func (s *BillingService) Issuer(ws *store.Workspace) entities.Settings {
	return s.settings.Get(ws)
}

// Create numbers the invoice <prefix>-<year>-NNN from the collection size and
// starts it as a draft dated today. The due date and notes default from the
// workspace settings.
func (s *BillingService) Create(ws *store.Workspace, inv entities.Invoice) entities.Invoice {
	now := s.deps.Now()
	st := s.settings.Get(ws)
	inv.Number = entities.FormatInvoiceNumber(st.InvoicePrefix, now.Year(), ws.Invoices.Len()+1)
	inv.Status = entities.InvoiceDraft
	if inv.Date == "" {
		inv.Date = now.Format(entities.DateLayout)
	}
	if inv.DueDate == "" {
		if issued, err := time.Parse(entities.DateLayout, inv.Date); err == nil {
			inv.DueDate = issued.AddDate(0, 0, st.PaymentTermDays).Format(entities.DateLayout)
		}
	}
	if inv.Notes == "" {
		inv.Notes = st.InvoiceNotes
	}
	for i := range inv.Items {
		inv.Items[i].ID = i + 1
	}
	return s.Records.Create(ws, inv)
}

// Search filters by query and, when status is set, by status.
func (s *BillingService) Search(ws *store.Workspace, query string, status entities.InvoiceStatus) []entities.Invoice {
	invoices := s.List(ws, query)
	if status == "" {
		return invoices
	}
	out := make([]entities.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if inv.Status == status {
			out = append(out, inv)
		}
	}
	return out
}

// Send marks a draft as sent.
func (s *BillingService) Send(ws *store.Workspace, id int) (entities.Invoice, error) {
	return s.transition(ws, id, entities.InvoiceSent, entities.InvoiceDraft)
}

// Pay settles a sent or overdue invoice.
func (s *BillingService) Pay(ws *store.Workspace, id int) (entities.Invoice, error) {
	return s.transition(ws, id, entities.InvoicePaid, entities.InvoiceSent, entities.InvoiceOverdue)
}

// Cancel voids any invoice that has not been paid.
func (s *BillingService) Cancel(ws *store.Workspace, id int) (entities.Invoice, error) {
	return s.transition(ws, id, entities.InvoiceCancelled, entities.InvoiceDraft, entities.InvoiceSent, entities.InvoiceOverdue)
}

func (s *BillingService) transition(ws *store.Workspace, id int, to entities.InvoiceStatus, from ...entities.InvoiceStatus) (entities.Invoice, error) {
	inv, err := ws.Invoices.Update(id, func(inv *entities.Invoice) error {
		for _, st := range from {
			if inv.Status == st {
				inv.Status = to
				return nil
			}
		}
		return fmt.Errorf("%w: invoice %s is %s", ErrInvalidTransition, inv.Number, inv.Status)
	})
	if err != nil {
		return inv, err
	}

	event := entities.AuditEventUpdate
	if to == entities.InvoiceSent {
		event = entities.AuditEventSend
	}
	s.deps.Journal.LogChange(ws.ID, event, s.entity, id, fmt.Sprintf("Invoice %s is now %s", inv.Number, to))
	return inv, nil
}

// SweepOverdue marks every sent invoice whose due date is before today as
// overdue. It returns the numbers of the invoices it changed.
func (s *BillingService) SweepOverdue(ws *store.Workspace) []string {
	today := s.deps.today()
	var swept []string
	ws.Invoices.UpdateAll(func(inv *entities.Invoice) bool {
		if inv.Status != entities.InvoiceSent || inv.DueDate == "" || inv.DueDate >= today {
			return false
		}
		inv.Status = entities.InvoiceOverdue
		swept = append(swept, inv.Number)
		return true
	})

	if len(swept) > 0 {
		s.deps.Logger.Info("invoices marked overdue",
			zap.String("workspace", ws.ID),
			zap.Strings("invoices", swept))
		s.deps.Journal.LogSweep(ws.ID, swept)
	}
	return swept
}

func (s *BillingService) Stats(ws *store.Workspace) InvoiceStats {
	invoices := ws.Invoices.List()
	stats := InvoiceStats{Count: len(invoices)}
	for _, inv := range invoices {
		stats.Total += inv.Total
		switch inv.Status {
		case entities.InvoicePaid:
			stats.Paid += inv.Total
		case entities.InvoiceSent:
			stats.Pending += inv.Total
		case entities.InvoiceOverdue:
			stats.Pending += inv.Total
			stats.Overdue++
		}
	}
	return stats
}
