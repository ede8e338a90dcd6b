package importers

import "github.com/smartwork/dashboard/internal/entities"

var employeeColumns = []Column{
	{Key: "name", Label: "Nom", Required: true},
	{Key: "email", Label: "Email", Required: true},
	{Key: "phone", Label: "Téléphone"},
	{Key: "role", Label: "Poste"},
	{Key: "department", Label: "Département"},
	{Key: "status", Label: "Statut"},
}

var EmployeeDefinition = Definition[entities.Employee]{
	Kind:         "employees",
	TemplateName: "employes",
	Columns:      employeeColumns,
	Parse:        parseEmployee,
}

func parseEmployee(r Row) Outcome[entities.Employee] {
	e := entities.Employee{
		Name:       r.Text("nom", "name"),
		Email:      r.Text("email", "e-mail", "courriel"),
		Phone:      r.Text("téléphone", "telephone", "phone", "tél"),
		Role:       r.Text("poste", "role", "fonction"),
		Department: r.Text("département", "departement", "department"),
		Status:     entities.ParseEmployeeStatus(r.Text("statut", "status")),
	}
	if e.Name == "" || e.Email == "" {
		return Reject[entities.Employee]("name and email are required")
	}
	return Accept(e)
}
