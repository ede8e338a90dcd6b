package entities

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDeriveStockStatus(t *testing.T) {
	tests := []struct {
		quantity, minStock int
		want               StockStatus
	}{
		{0, 5, StockOut},
		{0, 0, StockOut},
		{1, 5, StockLow},
		{4, 5, StockLow},
		{5, 5, StockAvailable},
		{25, 10, StockAvailable},
		{3, 0, StockAvailable},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DeriveStockStatus(tt.quantity, tt.minStock), "qty=%d min=%d", tt.quantity, tt.minStock)
	}
}

func TestApplyMovement(t *testing.T) {
	t.Run("entry adds stock and refreshes status", func(t *testing.T) {
		p := Product{Quantity: 0, MinStock: 5}
		p.Refresh()
		assert.Equal(t, StockOut, p.Status)

		ApplyMovement(&p, MovementIn, 3)
		assert.Equal(t, 3, p.Quantity)
		assert.Equal(t, StockLow, p.Status)

		ApplyMovement(&p, MovementIn, 10)
		assert.Equal(t, 13, p.Quantity)
		assert.Equal(t, StockAvailable, p.Status)
	})

	t.Run("exit larger than stock clamps at zero", func(t *testing.T) {
		p := Product{Quantity: 3, MinStock: 5}
		ApplyMovement(&p, MovementOut, 10)
		assert.Equal(t, 0, p.Quantity)
		assert.Equal(t, StockOut, p.Status)
	})

	t.Run("exit ignores sign of quantity", func(t *testing.T) {
		p := Product{Quantity: 8, MinStock: 5}
		ApplyMovement(&p, MovementOut, -2)
		assert.Equal(t, 6, p.Quantity)
	})

	t.Run("adjustment applies signed delta", func(t *testing.T) {
		p := Product{Quantity: 8, MinStock: 5}
		ApplyMovement(&p, MovementAdjustment, -4)
		assert.Equal(t, 4, p.Quantity)
		assert.Equal(t, StockLow, p.Status)

		ApplyMovement(&p, MovementAdjustment, -40)
		assert.Equal(t, 0, p.Quantity)
	})
}

func TestParseMovementType(t *testing.T) {
	mt, ok := ParseMovementType(" ENTRÉE ")
	assert.True(t, ok)
	assert.Equal(t, MovementIn, mt)

	_, ok = ParseMovementType("transfer")
	assert.False(t, ok)
}

func TestInvoice_Recalculate(t *testing.T) {
	inv := Invoice{Items: []InvoiceItem{
		{Description: "Consultation IT", Quantity: 10, UnitPrice: 50000},
		{Description: "Maintenance serveur", Quantity: 1, UnitPrice: 150000},
	}}

	inv.Recalculate(DefaultTaxRate)

	assert.Equal(t, int64(500000), inv.Items[0].Total)
	assert.Equal(t, int64(150000), inv.Items[1].Total)
	assert.Equal(t, int64(650000), inv.Subtotal)
	assert.Equal(t, int64(117000), inv.Tax)
	assert.Equal(t, int64(767000), inv.Total)
	assert.Equal(t, 1, inv.Items[0].ID)
	assert.Equal(t, 2, inv.Items[1].ID)
}

func TestInvoice_RecalculateRoundsTax(t *testing.T) {
	inv := Invoice{Items: []InvoiceItem{{Quantity: 1, UnitPrice: 1003}}}
	inv.Recalculate(decimal.RequireFromString("0.18"))
	// 1003 * 0.18 = 180.54
	assert.Equal(t, int64(181), inv.Tax)
	assert.Equal(t, int64(1184), inv.Total)
}

func TestInvoice_RecalculateEmpty(t *testing.T) {
	inv := Invoice{Subtotal: 10, Tax: 2, Total: 12}
	inv.Recalculate(DefaultTaxRate)
	assert.Zero(t, inv.Subtotal)
	assert.Zero(t, inv.Tax)
	assert.Zero(t, inv.Total)
}

func TestFormatInvoiceNumber(t *testing.T) {
	assert.Equal(t, "FAC-2024-004", FormatInvoiceNumber("FAC", 2024, 4))
	assert.Equal(t, "FAC-2025-1234", FormatInvoiceNumber("FAC", 2025, 1234))
}

func TestPayslip_Recalculate(t *testing.T) {
	p := Payslip{BaseSalary: 450000, Bonuses: 50000, Deductions: 45000}
	p.Recalculate()
	assert.Equal(t, int64(455000), p.NetSalary)

	p.Bonuses = 0
	p.Recalculate()
	assert.Equal(t, int64(405000), p.NetSalary)
}

func TestTaskStatus(t *testing.T) {
	st, ok := ParseTaskStatus("En cours")
	assert.True(t, ok)
	assert.Equal(t, TaskInProgress, st)

	st, ok = ParseTaskStatus("inProgress")
	assert.True(t, ok)
	assert.Equal(t, TaskInProgress, st)

	assert.Equal(t, "Terminé", TaskDone.Label())
	assert.Equal(t, "À faire", TaskTodo.Label())
}

func TestParseStatuses_Defaults(t *testing.T) {
	assert.Equal(t, EmployeeActive, ParseEmployeeStatus(""))
	assert.Equal(t, EmployeeOnLeave, ParseEmployeeStatus("EN CONGÉ"))
	assert.Equal(t, ClientLead, ParseClientStatus("unknown"))
	assert.Equal(t, ClientLost, ParseClientStatus("Perdu"))
	assert.Equal(t, PriorityMedium, ParseTaskPriority(""))
	assert.Equal(t, PriorityHigh, ParseTaskPriority("high"))
}

func TestMessageTemplate_Render(t *testing.T) {
	tpl := MessageTemplate{
		Subject: "Rappel - {{facture}}",
		Content: "Bonjour {{nom}}, la facture n°{{facture}} reste en attente. {{inconnu}}",
	}
	subject, content := tpl.Render(map[string]string{"nom": "Alice", "facture": "FAC-2024-002"})
	assert.Equal(t, "Rappel - FAC-2024-002", subject)
	assert.Equal(t, "Bonjour Alice, la facture n°FAC-2024-002 reste en attente. {{inconnu}}", content)
}
