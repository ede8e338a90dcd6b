package services

import (
	"strconv"

	"github.com/smartwork/dashboard/internal/entities"
	"github.com/smartwork/dashboard/internal/exporters"
	"github.com/smartwork/dashboard/internal/store"
)

// TopProductCount is how many products the global report ranks.
const TopProductCount = 5

type Overview struct {
	Employees     int           `json:"employees"`
	ActiveTasks   int           `json:"active_tasks"`
	ActiveClients int           `json:"active_clients"`
	PresentToday  int           `json:"present_today"`
	AttendanceDay string        `json:"attendance_day,omitempty"`
	StockAlerts   int           `json:"stock_alerts"`
	Stock         ProductStats  `json:"stock"`
	Invoices      InvoiceStats  `json:"invoices"`
	Payroll       PayrollStats  `json:"payroll"`
	Messages      MessageCounts `json:"messages"`
}

// DashboardService aggregates the counters of every area.
type DashboardService struct {
	inventory  *InventoryService
	billing    *BillingService
	payroll    *PayrollService
	messages   *MessageService
	attendance *AttendanceService
}

func NewDashboardService(inventory *InventoryService, billing *BillingService, payroll *PayrollService, messages *MessageService, attendance *AttendanceService) *DashboardService {
	return &DashboardService{
		inventory:  inventory,
		billing:    billing,
		payroll:    payroll,
		messages:   messages,
		attendance: attendance,
	}
}

// Overview computes the dashboard counters. Presence is counted on the most
// recent day with attendance records.
func (s *DashboardService) Overview(ws *store.Workspace) Overview {
	o := Overview{
		Employees: ws.Employees.Len(),
		ActiveTasks: len(ws.Tasks.Filter(func(t entities.Task) bool {
			return t.Status != entities.TaskDone
		})),
		ActiveClients: len(ws.Clients.Filter(func(c entities.Client) bool {
			return c.Status == entities.ClientActive
		})),
		Stock:    s.inventory.Stats(ws),
		Invoices: s.billing.Stats(ws),
		Payroll:  s.payroll.Stats(ws),
		Messages: s.messages.Counts(ws),
	}
	o.StockAlerts = o.Stock.LowStock + o.Stock.OutOfStock

	for _, a := range ws.Attendance.List() {
		if a.Date > o.AttendanceDay {
			o.AttendanceDay = a.Date
		}
	}
	if o.AttendanceDay != "" {
		o.PresentToday = s.attendance.PresentOn(ws, o.AttendanceDay)
	}
	return o
}

// Report builds the global report document content.
func (s *DashboardService) Report(ws *store.Workspace) exporters.Report {
	o := s.Overview(ws)
	doneTasks := ws.Tasks.Len() - o.ActiveTasks
	presence := "Présents"
	if o.AttendanceDay != "" {
		presence += " (" + exporters.FormatDate(o.AttendanceDay) + ")"
	}

	return exporters.Report{
		Indicators: []exporters.Indicator{
			{Label: "Employés", Value: strconv.Itoa(o.Employees)},
			{Label: presence, Value: strconv.Itoa(o.PresentToday)},
			{Label: "Tâches actives", Value: strconv.Itoa(o.ActiveTasks)},
			{Label: "Tâches terminées", Value: strconv.Itoa(doneTasks)},
			{Label: "Clients actifs", Value: strconv.Itoa(o.ActiveClients)},
			{Label: "Valeur du stock", Value: exporters.FormatAmount(o.Stock.TotalValue)},
			{Label: "Alertes de stock", Value: strconv.Itoa(o.StockAlerts)},
			{Label: "Total facturé", Value: exporters.FormatAmount(o.Invoices.Total)},
			{Label: "Factures payées", Value: exporters.FormatAmount(o.Invoices.Paid)},
			{Label: "Factures en attente", Value: exporters.FormatAmount(o.Invoices.Pending)},
			{Label: "Masse salariale", Value: exporters.FormatAmount(o.Payroll.Total)},
			{Label: "Messages envoyés", Value: strconv.Itoa(o.Messages.EmailsSent + o.Messages.WhatsAppSent)},
		},
		TopProducts: s.inventory.TopByValue(ws, TopProductCount),
	}
}
