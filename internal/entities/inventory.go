package entities

type StockStatus string

const (
	StockAvailable StockStatus = "En stock"
	StockLow       StockStatus = "Stock faible"
	StockOut       StockStatus = "Rupture"
)

// DefaultMinStock applies to products created or imported without a threshold.
const DefaultMinStock = 5

// DefaultCategory labels products imported without a category.
const DefaultCategory = "Non défini"

// DeriveStockStatus classifies a stock level against its alert threshold.
func DeriveStockStatus(quantity, minStock int) StockStatus {
	switch {
	case quantity <= 0:
		return StockOut
	case quantity < minStock:
		return StockLow
	default:
		return StockAvailable
	}
}

type Product struct {
	Model
	Name      string      `json:"name" binding:"required"`
	SKU       string      `json:"sku" binding:"required"`
	Category  string      `json:"category"`
	Quantity  int         `json:"quantity" binding:"gte=0"`
	MinStock  int         `json:"min_stock" binding:"gte=0"`
	UnitPrice int64       `json:"unit_price" binding:"gte=0"`
	CostPrice int64       `json:"cost_price" binding:"gte=0"`
	Supplier  string      `json:"supplier,omitempty"`
	Status    StockStatus `json:"status"`
}

// NewProduct returns a blank product carrying the default stock threshold.
// Forms bind onto it so an omitted threshold gets the default and an explicit
// 0 is kept.
func NewProduct() Product {
	return Product{MinStock: DefaultMinStock}
}

// Refresh recomputes the derived status; call after any quantity change.
func (p *Product) Refresh() {
	p.Status = DeriveStockStatus(p.Quantity, p.MinStock)
}

// StockValue is the quantity on hand valued at cost.
func (p Product) StockValue() int64 {
	return int64(p.Quantity) * p.CostPrice
}

type MovementType string

const (
	MovementIn         MovementType = "Entrée"
	MovementOut        MovementType = "Sortie"
	MovementAdjustment MovementType = "Ajustement"
)

var movementTypes = map[string]MovementType{
	"entrée":     MovementIn,
	"entree":     MovementIn,
	"in":         MovementIn,
	"sortie":     MovementOut,
	"out":        MovementOut,
	"ajustement": MovementAdjustment,
	"adjustment": MovementAdjustment,
}

func ParseMovementType(s string) (MovementType, bool) {
	return matchLabel(s, movementTypes)
}

// Delta is the signed change a movement applies to stock. Entrée and Sortie
// use the magnitude of Quantity; Ajustement applies Quantity as given.
func (t MovementType) Delta(quantity int) int {
	abs := quantity
	if abs < 0 {
		abs = -abs
	}
	switch t {
	case MovementIn:
		return abs
	case MovementOut:
		return -abs
	default:
		return quantity
	}
}

type StockMovement struct {
	Model
	ProductID   int          `json:"product_id" binding:"required"`
	ProductName string       `json:"product_name"`
	Type        MovementType `json:"type" binding:"required"`
	Quantity    int          `json:"quantity"`
	Date        string       `json:"date"`
	Reference   string       `json:"reference,omitempty"`
	Notes       string       `json:"notes,omitempty"`
}

// ApplyMovement adjusts the product's stock, clamped at zero, and refreshes its status.
func ApplyMovement(p *Product, t MovementType, quantity int) {
	p.Quantity += t.Delta(quantity)
	if p.Quantity < 0 {
		p.Quantity = 0
	}
	p.Refresh()
}
