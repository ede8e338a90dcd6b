// Package demo holds the sample records every new workspace starts from.
package demo

import (
	"github.com/smartwork/dashboard/internal/entities"
	"github.com/smartwork/dashboard/internal/store"
)

// Dataset builds a fresh copy of the demo records. Each call returns new
// slices, so workspaces never share backing arrays.
func Dataset() store.Dataset {
	return store.Dataset{
		Employees:  employees(),
		Clients:    clients(),
		Tasks:      tasks(),
		Products:   products(),
		Movements:  movements(),
		Invoices:   invoices(),
		Payslips:   payslips(),
		Messages:   messages(),
		Attendance: attendance(),
	}
}

// Empty is the dataset used when seeding is disabled.
func Empty() store.Dataset {
	return store.Dataset{}
}

func employees() []entities.Employee {
	return []entities.Employee{
		{Model: entities.Model{ID: 1}, Name: "Marie Kouassi", Role: "Développeur Full-Stack", Department: "Technique", Status: entities.EmployeeActive, Email: "marie.k@company.com", Phone: "+225 07 00 00 01"},
		{Model: entities.Model{ID: 2}, Name: "Jean Touré", Role: "Chef de Projet", Department: "Gestion de projet", Status: entities.EmployeeActive, Email: "jean.t@company.com", Phone: "+225 07 00 00 02"},
		{Model: entities.Model{ID: 3}, Name: "Sophie Diallo", Role: "Commercial Senior", Department: "Commercial", Status: entities.EmployeeActive, Email: "sophie.d@company.com", Phone: "+225 07 00 00 03"},
		{Model: entities.Model{ID: 4}, Name: "Kofi Mensah", Role: "Designer UI/UX", Department: "Design", Status: entities.EmployeeOnLeave, Email: "kofi.m@company.com", Phone: "+225 07 00 00 04"},
		{Model: entities.Model{ID: 5}, Name: "Aminata Sow", Role: "Responsable RH", Department: "Ressources Humaines", Status: entities.EmployeeActive, Email: "aminata.s@company.com", Phone: "+225 07 00 00 05"},
		{Model: entities.Model{ID: 6}, Name: "Ibrahim Keita", Role: "Développeur Backend", Department: "Technique", Status: entities.EmployeeActive, Email: "ibrahim.k@company.com", Phone: "+225 07 00 00 06"},
	}
}

func clients() []entities.Client {
	return []entities.Client{
		{Model: entities.Model{ID: 1}, Name: "Acme Corporation", Contact: "Alice Johnson", Status: entities.ClientActive, Email: "alice@acme.com", Phone: "+225 07 10 20 30", LastContact: "2025-11-10", Value: "125,000 FCFA"},
		{Model: entities.Model{ID: 2}, Name: "TechStart Solutions", Contact: "Bob Martin", Status: entities.ClientLead, Email: "bob@techstart.com", Phone: "+225 07 11 22 33", LastContact: "2025-11-12", Value: "85,000 FCFA"},
		{Model: entities.Model{ID: 3}, Name: "Global Ventures", Contact: "Carol White", Status: entities.ClientActive, Email: "carol@globalv.com", Phone: "+225 07 12 23 34", LastContact: "2025-11-13", Value: "200,000 FCFA"},
		{Model: entities.Model{ID: 4}, Name: "Digital Dreams", Contact: "David Lee", Status: entities.ClientLost, Email: "david@digitald.com", Phone: "+225 07 13 24 35", LastContact: "2025-10-20", Value: "45,000 FCFA"},
		{Model: entities.Model{ID: 5}, Name: "Innovation Hub", Contact: "Emma Brown", Status: entities.ClientLead, Email: "emma@innohub.com", Phone: "+225 07 14 25 36", LastContact: "2025-11-14", Value: "150,000 FCFA"},
		{Model: entities.Model{ID: 6}, Name: "SmartBiz Ltd", Contact: "Frank Wilson", Status: entities.ClientActive, Email: "frank@smartbiz.com", Phone: "+225 07 15 26 37", LastContact: "2025-11-11", Value: "95,000 FCFA"},
	}
}

func tasks() []entities.Task {
	return []entities.Task{
		{Model: entities.Model{ID: 1}, Title: "Mise à jour du site web", Assignee: "Marie Kouassi", AssigneeID: 1, Priority: entities.PriorityHigh, Status: entities.TaskTodo, DueDate: "2025-11-15"},
		{Model: entities.Model{ID: 2}, Title: "Réunion client Acme Corp", Assignee: "Sophie Diallo", AssigneeID: 3, Priority: entities.PriorityMedium, Status: entities.TaskTodo, DueDate: "2025-11-16"},
		{Model: entities.Model{ID: 3}, Title: "Développement API v2", Assignee: "Ibrahim Keita", AssigneeID: 6, Priority: entities.PriorityHigh, Status: entities.TaskInProgress, DueDate: "2025-11-20"},
		{Model: entities.Model{ID: 4}, Title: "Design nouvelle interface", Assignee: "Kofi Mensah", AssigneeID: 4, Priority: entities.PriorityMedium, Status: entities.TaskInProgress, DueDate: "2025-11-18"},
		{Model: entities.Model{ID: 5}, Title: "Rapport mensuel Q4", Assignee: "Jean Touré", AssigneeID: 2, Priority: entities.PriorityLow, Status: entities.TaskDone, DueDate: "2025-11-13"},
		{Model: entities.Model{ID: 6}, Title: "Formation nouveaux employés", Assignee: "Aminata Sow", AssigneeID: 5, Priority: entities.PriorityMedium, Status: entities.TaskDone, DueDate: "2025-11-12"},
	}
}

func products() []entities.Product {
	list := []entities.Product{
		{Model: entities.Model{ID: 1}, Name: "Ordinateur portable HP", SKU: "HP-LAP-001", Category: "Informatique", Quantity: 15, MinStock: 5, UnitPrice: 450000, CostPrice: 380000, Supplier: "TechDistrib"},
		{Model: entities.Model{ID: 2}, Name: "Imprimante Canon", SKU: "CAN-PRT-001", Category: "Informatique", Quantity: 3, MinStock: 5, UnitPrice: 125000, CostPrice: 95000, Supplier: "BureauPlus"},
		{Model: entities.Model{ID: 3}, Name: "Chaise de bureau", SKU: "CHAIR-001", Category: "Mobilier", Quantity: 0, MinStock: 10, UnitPrice: 75000, CostPrice: 55000, Supplier: "MobiPro"},
		{Model: entities.Model{ID: 4}, Name: "Écran 24 pouces", SKU: "SCR-24-001", Category: "Informatique", Quantity: 25, MinStock: 10, UnitPrice: 180000, CostPrice: 140000, Supplier: "TechDistrib"},
	}
	for i := range list {
		list[i].Refresh()
	}
	return list
}

func movements() []entities.StockMovement {
	return []entities.StockMovement{
		{Model: entities.Model{ID: 1}, ProductID: 1, ProductName: "Ordinateur portable HP", Type: entities.MovementIn, Quantity: 10, Date: "2024-01-15", Reference: "CMD-001", Notes: "Réception commande fournisseur"},
		{Model: entities.Model{ID: 2}, ProductID: 1, ProductName: "Ordinateur portable HP", Type: entities.MovementOut, Quantity: 2, Date: "2024-01-20", Reference: "VTE-001", Notes: "Vente client TechCorp"},
		{Model: entities.Model{ID: 3}, ProductID: 2, ProductName: "Imprimante Canon", Type: entities.MovementOut, Quantity: 5, Date: "2024-01-22", Reference: "VTE-002"},
	}
}

func invoices() []entities.Invoice {
	list := []entities.Invoice{
		{
			Model: entities.Model{ID: 1}, Number: "FAC-2024-001", ClientID: 1, ClientName: "TechCorp Solutions",
			Date: "2024-01-15", DueDate: "2024-02-15", Status: entities.InvoicePaid,
			Items: []entities.InvoiceItem{
				{ID: 1, Description: "Consultation IT", Quantity: 10, UnitPrice: 50000},
				{ID: 2, Description: "Maintenance serveur", Quantity: 1, UnitPrice: 150000},
			},
		},
		{
			Model: entities.Model{ID: 2}, Number: "FAC-2024-002", ClientID: 2, ClientName: "Digital Agency",
			Date: "2024-01-20", DueDate: "2024-02-20", Status: entities.InvoiceSent,
			Items: []entities.InvoiceItem{
				{ID: 1, Description: "Développement web", Quantity: 1, UnitPrice: 2000000},
			},
		},
		{
			Model: entities.Model{ID: 3}, Number: "FAC-2024-003", ClientID: 3, ClientName: "StartUp Africa",
			Date: "2024-01-25", DueDate: "2024-02-10", Status: entities.InvoiceOverdue,
			Items: []entities.InvoiceItem{
				{ID: 1, Description: "Formation équipe", Quantity: 5, UnitPrice: 100000},
			},
		},
	}
	for i := range list {
		list[i].Recalculate(entities.DefaultTaxRate)
	}
	return list
}

func payslips() []entities.Payslip {
	list := []entities.Payslip{
		{Model: entities.Model{ID: 1}, EmployeeID: 1, EmployeeName: "Amadou Diallo", Period: "Janvier 2024", BaseSalary: 450000, Bonuses: 50000, Deductions: 45000, Status: entities.PayslipPaid, PaymentDate: "2024-01-31", CreatedAt: "2024-01-25"},
		{Model: entities.Model{ID: 2}, EmployeeID: 2, EmployeeName: "Fatou Sow", Period: "Janvier 2024", BaseSalary: 380000, Bonuses: 30000, Deductions: 38000, Status: entities.PayslipValidated, CreatedAt: "2024-01-25"},
		{Model: entities.Model{ID: 3}, EmployeeID: 3, EmployeeName: "Moussa Koné", Period: "Janvier 2024", BaseSalary: 320000, Deductions: 32000, Status: entities.PayslipDraft, CreatedAt: "2024-01-25"},
	}
	for i := range list {
		list[i].Recalculate()
	}
	return list
}

func messages() []entities.Message {
	return []entities.Message{
		{Model: entities.Model{ID: 1}, Type: entities.ChannelEmail, To: "client@techcorp.com", Subject: "Confirmation de rendez-vous", Content: "Bonjour, nous confirmons votre rendez-vous du 15 janvier à 10h.", Status: entities.MessageSent, SentAt: "2024-01-14 09:30", CreatedAt: "2024-01-14"},
		{Model: entities.Model{ID: 2}, Type: entities.ChannelWhatsApp, To: "+221 77 123 4567", Content: "Bonjour, votre commande est prête. Vous pouvez venir la récupérer.", Status: entities.MessageSent, SentAt: "2024-01-13 14:20", CreatedAt: "2024-01-13"},
		{Model: entities.Model{ID: 3}, Type: entities.ChannelEmail, To: "prospect@startup.com", Subject: "Proposition commerciale", Content: "Suite à notre entretien, veuillez trouver ci-joint notre proposition.", Status: entities.MessageDraft, CreatedAt: "2024-01-15"},
	}
}

func attendance() []entities.AttendanceRecord {
	return []entities.AttendanceRecord{
		{Model: entities.Model{ID: 1}, EmployeeID: 1, Name: "Marie Kouassi", Date: "2025-11-14", CheckIn: "08:15", CheckOut: "17:30", Status: entities.AttendanceOnTime, Hours: "9h15"},
		{Model: entities.Model{ID: 2}, EmployeeID: 2, Name: "Jean Touré", Date: "2025-11-14", CheckIn: "08:45", CheckOut: "18:00", Status: entities.AttendanceLate, Hours: "9h15"},
		{Model: entities.Model{ID: 3}, EmployeeID: 3, Name: "Sophie Diallo", Date: "2025-11-14", CheckIn: "08:00", CheckOut: "17:00", Status: entities.AttendanceOnTime, Hours: "9h00"},
		{Model: entities.Model{ID: 4}, EmployeeID: 6, Name: "Ibrahim Keita", Date: "2025-11-14", CheckIn: "08:30", CheckOut: "17:30", Status: entities.AttendanceOnTime, Hours: "9h00"},
		{Model: entities.Model{ID: 5}, EmployeeID: 5, Name: "Aminata Sow", Date: "2025-11-14", CheckIn: "09:15", CheckOut: "18:15", Status: entities.AttendanceLate, Hours: "9h00"},
		{Model: entities.Model{ID: 6}, EmployeeID: 4, Name: "Kofi Mensah", Date: "2025-11-14", CheckIn: "-", CheckOut: "-", Status: entities.AttendanceAbsent, Hours: "0h00"},
	}
}
