package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartwork/dashboard/internal/entities"
)

func newEmployees() *Employees {
	return NewCollection[entities.Employee](
		entities.Employee{Model: entities.Model{ID: 1}, Name: "Marie Kouassi"},
		entities.Employee{Model: entities.Model{ID: 2}, Name: "Jean Touré"},
		entities.Employee{Model: entities.Model{ID: 3}, Name: "Sophie Diallo"},
	)
}

func TestCollection_Insert(t *testing.T) {
	c := newEmployees()

	added := c.Insert(entities.Employee{Name: "Kofi Mensah"})

	assert.Equal(t, 4, added.ID)
	assert.Equal(t, 4, c.Len())

	got, err := c.Get(4)
	require.NoError(t, err)
	assert.Equal(t, "Kofi Mensah", got.Name)
}

func TestCollection_InsertIntoEmpty(t *testing.T) {
	c := NewCollection[entities.Employee]()
	added := c.Insert(entities.Employee{Name: "First"})
	assert.Equal(t, 1, added.ID)
}

func TestCollection_InsertAll(t *testing.T) {
	c := newEmployees()

	added := c.InsertAll([]entities.Employee{{Name: "A"}, {Name: "B"}})

	require.Len(t, added, 2)
	assert.Equal(t, 4, added[0].ID)
	assert.Equal(t, 5, added[1].ID)
	assert.Equal(t, 5, c.Len())
}

func TestCollection_ReusesMaxIDAfterDelete(t *testing.T) {
	c := newEmployees()

	_, err := c.Delete(3)
	require.NoError(t, err)

	added := c.Insert(entities.Employee{Name: "Replacement"})
	assert.Equal(t, 3, added.ID)
}

func TestCollection_Update(t *testing.T) {
	c := newEmployees()

	t.Run("applies mutation and keeps id", func(t *testing.T) {
		updated, err := c.Update(2, func(e *entities.Employee) error {
			e.Role = "Chef de Projet"
			e.ID = 99
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 2, updated.ID)
		assert.Equal(t, "Chef de Projet", updated.Role)

		got, _ := c.Get(2)
		assert.Equal(t, "Chef de Projet", got.Role)
	})

	t.Run("failed mutation leaves record untouched", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := c.Update(1, func(e *entities.Employee) error {
			e.Name = "changed"
			return boom
		})
		assert.ErrorIs(t, err, boom)

		got, _ := c.Get(1)
		assert.Equal(t, "Marie Kouassi", got.Name)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := c.Update(42, func(*entities.Employee) error { return nil })
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCollection_Delete(t *testing.T) {
	c := newEmployees()

	removed, err := c.Delete(2)
	require.NoError(t, err)
	assert.Equal(t, "Jean Touré", removed.Name)
	assert.Equal(t, 2, c.Len())

	_, err = c.Get(2)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.Delete(2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollection_ListReturnsCopy(t *testing.T) {
	c := newEmployees()

	list := c.List()
	list[0].Name = "mutated"

	got, _ := c.Get(1)
	assert.Equal(t, "Marie Kouassi", got.Name)
}

func TestCollection_FilterAndUpdateAll(t *testing.T) {
	c := newEmployees()

	matches := c.Filter(func(e entities.Employee) bool { return e.ID%2 == 1 })
	assert.Len(t, matches, 2)

	changed := c.UpdateAll(func(e *entities.Employee) bool {
		if e.ID == 1 {
			e.Status = entities.EmployeeOnLeave
			return true
		}
		return false
	})
	assert.Equal(t, 1, changed)

	got, _ := c.Get(1)
	assert.Equal(t, entities.EmployeeOnLeave, got.Status)
}

func TestCollection_CloneDetachesItems(t *testing.T) {
	c := NewCollection[entities.Invoice](entities.Invoice{
		Model: entities.Model{ID: 1},
		Items: []entities.InvoiceItem{{ID: 1, Quantity: 10, UnitPrice: 50000, Total: 500000}},
	})

	got, err := c.Get(1)
	require.NoError(t, err)
	got.Items[0].Quantity = 99
	c.List()[0].Items[0].UnitPrice = 1
	c.Filter(func(entities.Invoice) bool { return true })[0].Items[0].Total = 0

	_, err = c.Update(1, func(inv *entities.Invoice) error {
		inv.Items[0].Quantity = 42
		return errors.New("rejected")
	})
	require.Error(t, err)

	stored, _ := c.Get(1)
	assert.Equal(t, entities.InvoiceItem{ID: 1, Quantity: 10, UnitPrice: 50000, Total: 500000}, stored.Items[0])

	inserted := c.Insert(entities.Invoice{Items: []entities.InvoiceItem{{Quantity: 1}}})
	inserted.Items[0].Quantity = 7
	stored, _ = c.Get(inserted.ID)
	assert.Equal(t, 1, stored.Items[0].Quantity)
}
