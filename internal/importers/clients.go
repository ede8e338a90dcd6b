package importers

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/smartwork/dashboard/internal/entities"
)

var clientColumns = []Column{
	{Key: "name", Label: "Nom", Required: true},
	{Key: "contact", Label: "Contact"},
	{Key: "email", Label: "Email", Required: true},
	{Key: "phone", Label: "Téléphone"},
	{Key: "company", Label: "Entreprise"},
	{Key: "status", Label: "Statut"},
	{Key: "value", Label: "Valeur"},
	{Key: "last_contact", Label: "Dernier Contact"},
}

var ClientDefinition = Definition[entities.Client]{
	Kind:         "clients",
	TemplateName: "clients",
	Columns:      clientColumns,
	Parse:        parseClient,
}

func parseClient(r Row) Outcome[entities.Client] {
	c := entities.Client{
		Name:        r.Text("nom", "name"),
		Contact:     r.Text("contact"),
		Email:       r.Text("email", "e-mail"),
		Phone:       r.Text("téléphone", "telephone", "phone"),
		Company:     r.Text("entreprise", "company", "société"),
		Status:      entities.ParseClientStatus(r.Text("statut", "status")),
		Value:       clientValue(r.Text("valeur", "value")),
		LastContact: r.Text("dernier contact", "last contact"),
	}
	if c.Name == "" || c.Email == "" {
		return Reject[entities.Client]("name and email are required")
	}
	return Accept(c)
}

// clientValue renders numeric cells as "125,000 FCFA" and keeps free text as typed.
func clientValue(raw string) string {
	if raw == "" {
		return ""
	}
	n, ok := ParseAmount(raw)
	if !ok {
		return raw
	}
	return GroupThousands(n, ",") + " FCFA"
}

// GroupThousands formats n with sep between each group of three digits.
func GroupThousands(n int64, sep string) string {
	digits := decimal.NewFromInt(n).Abs().String()
	var b strings.Builder
	if n < 0 {
		b.WriteByte('-')
	}
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteRune(d)
	}
	return b.String()
}
