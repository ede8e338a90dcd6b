package services

import (
	"cmp"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/smartwork/dashboard/internal/entities"
	"github.com/smartwork/dashboard/internal/store"
)

// ProductStats summarises the stock of a workspace.
type ProductStats struct {
	Products   int      `json:"products"`
	TotalValue int64    `json:"total_value"`
	LowStock   int      `json:"low_stock"`
	OutOfStock int      `json:"out_of_stock"`
	Categories []string `json:"categories"`
}

// InventoryService manages products and the stock movements applied to them.
// Every quantity change goes through entities.ApplyMovement or
// Product.Refresh so the stock status never drifts.
type InventoryService struct {
	*Records[entities.Product, *entities.Product]
}

func NewInventoryService(deps Deps) *InventoryService {
	return &InventoryService{&Records[entities.Product, *entities.Product]{
		entity:     "product",
		collection: func(ws *store.Workspace) *store.Products { return ws.Products },
		matches: func(p entities.Product, q string) bool {
			return contains(q, p.Name, p.SKU)
		},
		prepare: func(_ *store.Workspace, p *entities.Product) {
			p.Quantity = max(p.Quantity, 0)
			p.MinStock = max(p.MinStock, 0)
			p.Refresh()
		},
		describe: func(p entities.Product) string { return "product " + p.Name + " (" + p.SKU + ")" },
		deps:     deps.withDefaults(),
	}}
}

// Search filters products by name or SKU and, when category is set, by category.
func (s *InventoryService) Search(ws *store.Workspace, query, category string) []entities.Product {
	products := s.List(ws, query)
	if category == "" {
		return products
	}
	out := make([]entities.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Categories lists the distinct product categories, sorted.
func (s *InventoryService) Categories(ws *store.Workspace) []string {
	seen := map[string]bool{}
	categories := []string{}
	for _, p := range ws.Products.List() {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	slices.Sort(categories)
	return categories
}

func (s *InventoryService) Stats(ws *store.Workspace) ProductStats {
	products := ws.Products.List()
	stats := ProductStats{Products: len(products), Categories: s.Categories(ws)}
	for _, p := range products {
		stats.TotalValue += p.StockValue()
		switch p.Status {
		case entities.StockLow:
			stats.LowStock++
		case entities.StockOut:
			stats.OutOfStock++
		}
	}
	return stats
}

// TopByValue returns the n products holding the most stock value.
func (s *InventoryService) TopByValue(ws *store.Workspace, n int) []entities.Product {
	products := ws.Products.List()
	slices.SortStableFunc(products, func(a, b entities.Product) int {
		return cmp.Compare(b.StockValue(), a.StockValue())
	})
	return products[:min(n, len(products))]
}

// Movements lists stock movements, most recent first.
func (s *InventoryService) Movements(ws *store.Workspace) []entities.StockMovement {
	movements := ws.Movements.List()
	slices.SortStableFunc(movements, func(a, b entities.StockMovement) int {
		if c := cmp.Compare(b.Date, a.Date); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return movements
}

// RecordMovement applies mv to its product, clamping stock at zero, and
// journals the movement with the product name denormalized onto it.
func (s *InventoryService) RecordMovement(ws *store.Workspace, mv entities.StockMovement) (entities.StockMovement, entities.Product, error) {
	kind, ok := entities.ParseMovementType(string(mv.Type))
	if !ok {
		return entities.StockMovement{}, entities.Product{}, fmt.Errorf("%w: unknown type %q", ErrInvalidMovement, mv.Type)
	}
	if mv.Quantity == 0 {
		return entities.StockMovement{}, entities.Product{}, fmt.Errorf("%w: quantity must not be zero", ErrInvalidMovement)
	}

	product, err := ws.Products.Update(mv.ProductID, func(p *entities.Product) error {
		entities.ApplyMovement(p, kind, mv.Quantity)
		return nil
	})
	if err != nil {
		return entities.StockMovement{}, entities.Product{}, fmt.Errorf("%w: %d", ErrUnknownProduct, mv.ProductID)
	}

	mv.Type = kind
	mv.ProductName = product.Name
	if mv.Date == "" {
		mv.Date = s.deps.today()
	}
	if kind != entities.MovementAdjustment && mv.Quantity < 0 {
		mv.Quantity = -mv.Quantity
	}
	recorded := ws.Movements.Insert(mv)

	s.deps.Logger.Debug("stock movement recorded",
		zap.String("workspace", ws.ID),
		zap.Int("product_id", product.ID),
		zap.String("type", string(kind)),
		zap.Int("quantity", mv.Quantity),
		zap.Int("stock", product.Quantity))
	s.deps.Journal.LogChange(ws.ID, entities.AuditEventCreate, "stock_movement", recorded.ID,
		fmt.Sprintf("%s of %d units of %s", kind, mv.Quantity, product.Name))

	return recorded, product, nil
}
