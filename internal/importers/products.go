package importers

import "github.com/smartwork/dashboard/internal/entities"

var productColumns = []Column{
	{Key: "name", Label: "Nom", Required: true},
	{Key: "sku", Label: "SKU", Required: true},
	{Key: "category", Label: "Catégorie"},
	{Key: "quantity", Label: "Quantité"},
	{Key: "min_stock", Label: "Stock Minimum"},
	{Key: "unit_price", Label: "Prix Vente"},
	{Key: "cost_price", Label: "Prix Achat"},
	{Key: "supplier", Label: "Fournisseur"},
}

// ProductDefinition imports inventory items. Stock status is derived from
// the imported quantity and threshold.
var ProductDefinition = Definition[entities.Product]{
	Kind:         "products",
	TemplateName: "produits",
	Columns:      productColumns,
	Parse:        parseProduct,
}

func parseProduct(r Row) Outcome[entities.Product] {
	p := entities.Product{
		Name:      r.Text("nom", "name"),
		SKU:       r.Text("sku", "référence", "reference"),
		Category:  r.TextOr(entities.DefaultCategory, "catégorie", "categorie", "category"),
		Quantity:  r.Int(0, "quantité", "quantite", "quantity"),
		MinStock:  r.Int(entities.DefaultMinStock, "stock minimum", "minstock", "min stock"),
		UnitPrice: r.Amount(0, "prix vente", "unitprice", "prix"),
		CostPrice: r.Amount(0, "prix achat", "costprice", "coût", "cout"),
		Supplier:  r.Text("fournisseur", "supplier"),
	}
	if p.Name == "" || p.SKU == "" {
		return Reject[entities.Product]("name and sku are required")
	}
	if p.Quantity < 0 {
		p.Quantity = 0
	}
	if p.MinStock < 0 {
		p.MinStock = entities.DefaultMinStock
	}
	p.Refresh()
	return Accept(p)
}
