package exporters

import "github.com/smartwork/dashboard/internal/entities"

func text[T any](header string, width float64, v func(T) string) Column[T] {
	return Column[T]{Header: header, Width: width, Value: func(r T) any { return v(r) }}
}

func number[T any](header string, width float64, v func(T) int64) Column[T] {
	return Column[T]{Header: header, Width: width, Value: func(r T) any { return v(r) }}
}

func amount[T any](header string, width float64, v func(T) int64) Column[T] {
	return Column[T]{Header: header, Width: width, Value: func(r T) any { return FormatAmount(v(r)) }}
}

var (
	employeeName   = text("Nom", 40, func(e entities.Employee) string { return e.Name })
	employeeRole   = text("Poste", 35, func(e entities.Employee) string { return e.Role })
	employeeEmail  = text("Email", 50, func(e entities.Employee) string { return e.Email })
	employeePhone  = text("Téléphone", 35, func(e entities.Employee) string { return e.Phone })
	employeeStatus = text("Statut", 20, func(e entities.Employee) string { return string(e.Status) })
)

var Employees = Projection[entities.Employee]{
	Title:     "Liste des Employés",
	SheetName: "Employés",
	Prefix:    "employes",
	PDF:       []Column[entities.Employee]{employeeName, employeeRole, employeeEmail, employeePhone, employeeStatus},
	Excel: []Column[entities.Employee]{
		employeeName, employeeRole, employeeEmail, employeePhone, employeeStatus,
		text("Département", 20, func(e entities.Employee) string { return e.Department }),
	},
}

var (
	clientName    = text("Nom", 40, func(c entities.Client) string { return c.Name })
	clientContact = text("Contact", 30, func(c entities.Client) string { return c.Contact })
	clientEmail   = text("Email", 45, func(c entities.Client) string { return c.Email })
	clientPhone   = text("Téléphone", 30, func(c entities.Client) string { return c.Phone })
	clientStatus  = text("Statut", 18, func(c entities.Client) string { return string(c.Status) })
	clientValue   = text("Valeur", 25, func(c entities.Client) string { return c.Value })
)

var Clients = Projection[entities.Client]{
	Title:     "Liste des Clients",
	SheetName: "Clients",
	Prefix:    "clients",
	PDF:       []Column[entities.Client]{clientName, clientContact, clientEmail, clientPhone, clientStatus, clientValue},
	Excel: []Column[entities.Client]{
		clientName, clientContact, clientEmail, clientPhone, clientStatus, clientValue,
		text("Entreprise", 25, func(c entities.Client) string { return c.Company }),
		text("Dernier Contact", 18, func(c entities.Client) string { return c.LastContact }),
	},
}

var (
	taskTitle    = text("Titre", 60, func(t entities.Task) string { return t.Title })
	taskAssignee = text("Assigné", 35, func(t entities.Task) string { return t.Assignee })
	taskPriority = text("Priorité", 20, func(t entities.Task) string { return string(t.Priority) })
	taskStatus   = text("Statut", 20, func(t entities.Task) string { return t.Status.Label() })
	taskDue      = text("Date Limite", 25, func(t entities.Task) string { return t.DueDate })
)

var Tasks = Projection[entities.Task]{
	Title:     "Liste des Tâches",
	SheetName: "Tâches",
	Prefix:    "taches",
	PDF:       []Column[entities.Task]{taskTitle, taskAssignee, taskPriority, taskStatus, taskDue},
	Excel: []Column[entities.Task]{
		taskTitle, taskAssignee, taskPriority, taskStatus, taskDue,
		text("Description", 50, func(t entities.Task) string { return t.Description }),
	},
}

var (
	productName     = text("Nom", 50, func(p entities.Product) string { return p.Name })
	productSKU      = text("SKU", 25, func(p entities.Product) string { return p.SKU })
	productCategory = text("Catégorie", 30, func(p entities.Product) string { return p.Category })
	productQuantity = number("Quantité", 18, func(p entities.Product) int64 { return int64(p.Quantity) })
	productStatus   = text("Statut", 22, func(p entities.Product) string { return string(p.Status) })
)

var Products = Projection[entities.Product]{
	Title:     "Inventaire des Produits",
	SheetName: "Inventaire",
	Prefix:    "inventaire",
	PDF: []Column[entities.Product]{
		productName, productSKU, productCategory, productQuantity,
		amount("Prix Vente", 30, func(p entities.Product) int64 { return p.UnitPrice }),
		productStatus,
	},
	Excel: []Column[entities.Product]{
		productName, productSKU, productCategory, productQuantity,
		number("Prix Vente", 15, func(p entities.Product) int64 { return p.UnitPrice }),
		productStatus,
		number("Stock Minimum", 15, func(p entities.Product) int64 { return int64(p.MinStock) }),
		number("Prix Achat", 15, func(p entities.Product) int64 { return p.CostPrice }),
		text("Fournisseur", 25, func(p entities.Product) string { return p.Supplier }),
	},
}

var (
	movementDate      = text("Date", 25, func(m entities.StockMovement) string { return m.Date })
	movementProduct   = text("Produit", 50, func(m entities.StockMovement) string { return m.ProductName })
	movementType      = text("Type", 25, func(m entities.StockMovement) string { return string(m.Type) })
	movementQuantity  = number("Quantité", 18, func(m entities.StockMovement) int64 { return int64(m.Quantity) })
	movementReference = text("Référence", 30, func(m entities.StockMovement) string { return m.Reference })
)

var Movements = Projection[entities.StockMovement]{
	Title:     "Mouvements de Stock",
	SheetName: "Mouvements",
	Prefix:    "mouvements",
	PDF:       []Column[entities.StockMovement]{movementDate, movementProduct, movementType, movementQuantity, movementReference},
	Excel: []Column[entities.StockMovement]{
		movementDate, movementProduct, movementType, movementQuantity, movementReference,
		text("Notes", 40, func(m entities.StockMovement) string { return m.Notes }),
	},
}

var (
	invoiceNumber = text("Numéro", 30, func(i entities.Invoice) string { return i.Number })
	invoiceClient = text("Client", 45, func(i entities.Invoice) string { return i.ClientName })
	invoiceDate   = text("Date", 25, func(i entities.Invoice) string { return i.Date })
	invoiceDue    = text("Échéance", 25, func(i entities.Invoice) string { return i.DueDate })
	invoiceStatus = text("Statut", 22, func(i entities.Invoice) string { return string(i.Status) })
)

var Invoices = Projection[entities.Invoice]{
	Title:     "Liste des Factures",
	SheetName: "Factures",
	Prefix:    "factures",
	PDF: []Column[entities.Invoice]{
		invoiceNumber, invoiceClient, invoiceDate, invoiceDue,
		amount("Total", 35, func(i entities.Invoice) int64 { return i.Total }),
		invoiceStatus,
	},
	Excel: []Column[entities.Invoice]{
		invoiceNumber, invoiceClient, invoiceDate, invoiceDue,
		number("Total", 15, func(i entities.Invoice) int64 { return i.Total }),
		invoiceStatus,
		number("Sous-total", 15, func(i entities.Invoice) int64 { return i.Subtotal }),
		number("TVA", 15, func(i entities.Invoice) int64 { return i.Tax }),
	},
}

var (
	payslipEmployee = text("Employé", 45, func(p entities.Payslip) string { return p.EmployeeName })
	payslipPeriod   = text("Période", 30, func(p entities.Payslip) string { return p.Period })
	payslipStatus   = text("Statut", 22, func(p entities.Payslip) string { return string(p.Status) })
)

var Payslips = Projection[entities.Payslip]{
	Title:     "Bulletins de Paie",
	SheetName: "Bulletins",
	Prefix:    "bulletins",
	PDF: []Column[entities.Payslip]{
		payslipEmployee, payslipPeriod,
		amount("Salaire Net", 35, func(p entities.Payslip) int64 { return p.NetSalary }),
		payslipStatus,
	},
	Excel: []Column[entities.Payslip]{
		payslipEmployee, payslipPeriod,
		number("Salaire Net", 15, func(p entities.Payslip) int64 { return p.NetSalary }),
		payslipStatus,
		number("Salaire de base", 15, func(p entities.Payslip) int64 { return p.BaseSalary }),
		number("Primes", 15, func(p entities.Payslip) int64 { return p.Bonuses }),
		number("Retenues", 15, func(p entities.Payslip) int64 { return p.Deductions }),
	},
}

var attendanceColumns = []Column[entities.AttendanceRecord]{
	text("Employé", 45, func(a entities.AttendanceRecord) string { return a.Name }),
	text("Date", 25, func(a entities.AttendanceRecord) string { return a.Date }),
	text("Entrée", 20, func(a entities.AttendanceRecord) string { return a.CheckIn }),
	text("Sortie", 20, func(a entities.AttendanceRecord) string { return a.CheckOut }),
	text("Heures", 18, func(a entities.AttendanceRecord) string { return a.Hours }),
	text("Statut", 22, func(a entities.AttendanceRecord) string { return string(a.Status) }),
}

var Attendance = Projection[entities.AttendanceRecord]{
	Title:     "Rapport de Présence",
	SheetName: "Présence",
	Prefix:    "presence",
	PDF:       attendanceColumns,
	Excel:     attendanceColumns,
}
