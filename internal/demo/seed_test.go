package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartwork/dashboard/internal/entities"
)

func TestDataset(t *testing.T) {
	ds := Dataset()

	assert.Len(t, ds.Employees, 6)
	assert.Len(t, ds.Clients, 6)
	assert.Len(t, ds.Tasks, 6)
	assert.Len(t, ds.Products, 4)
	assert.Len(t, ds.Movements, 3)
	assert.Len(t, ds.Invoices, 3)
	assert.Len(t, ds.Payslips, 3)
	assert.Len(t, ds.Messages, 3)
	assert.Len(t, ds.Attendance, 6)

	t.Run("product status is derived", func(t *testing.T) {
		statuses := map[string]entities.StockStatus{}
		for _, p := range ds.Products {
			statuses[p.SKU] = p.Status
		}
		assert.Equal(t, entities.StockAvailable, statuses["HP-LAP-001"])
		assert.Equal(t, entities.StockLow, statuses["CAN-PRT-001"])
		assert.Equal(t, entities.StockOut, statuses["CHAIR-001"])
	})

	t.Run("invoice totals are computed", func(t *testing.T) {
		inv := ds.Invoices[0]
		assert.Equal(t, int64(650000), inv.Subtotal)
		assert.Equal(t, int64(117000), inv.Tax)
		assert.Equal(t, int64(767000), inv.Total)
		assert.Equal(t, int64(2360000), ds.Invoices[1].Total)
		assert.Equal(t, int64(590000), ds.Invoices[2].Total)
	})

	t.Run("payslip net is computed", func(t *testing.T) {
		assert.Equal(t, int64(455000), ds.Payslips[0].NetSalary)
		assert.Equal(t, int64(372000), ds.Payslips[1].NetSalary)
		assert.Equal(t, int64(288000), ds.Payslips[2].NetSalary)
	})

	t.Run("ids are unique per collection", func(t *testing.T) {
		seen := map[int]bool{}
		for _, e := range ds.Employees {
			require.False(t, seen[e.ID], "duplicate id %d", e.ID)
			seen[e.ID] = true
		}
	})
}

func TestDatasetReturnsIndependentCopies(t *testing.T) {
	a := Dataset()
	b := Dataset()

	a.Products[0].Quantity = 99
	a.Invoices[0].Items[0].Quantity = 99

	assert.Equal(t, 15, b.Products[0].Quantity)
	assert.Equal(t, 10, b.Invoices[0].Items[0].Quantity)
}
