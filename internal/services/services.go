package services

import (
	"github.com/smartwork/dashboard/internal/config"
	"github.com/smartwork/dashboard/internal/entities"
	"github.com/smartwork/dashboard/internal/messaging"
)

// Services is the set of domain services the HTTP API, the CLI and the
// scheduler share.
type Services struct {
	Settings   *SettingsService
	Employees  *EmployeeService
	Clients    *ClientService
	Tasks      *TaskService
	Attendance *AttendanceService
	Inventory  *InventoryService
	Billing    *BillingService
	Payroll    *PayrollService
	Messages   *MessageService
	Dashboard  *DashboardService
	Exports    *ExportService
	Imports    *ImportService
}

func New(cfg *config.Config, sender messaging.Sender, deps Deps) *Services {
	deps = deps.withDefaults()

	settings := NewSettingsService(DefaultSettings(cfg), deps)
	s := &Services{
		Settings:   settings,
		Employees:  NewEmployeeService(deps),
		Clients:    NewClientService(deps),
		Tasks:      NewTaskService(deps),
		Attendance: NewAttendanceService(settings, deps),
		Inventory:  NewInventoryService(deps),
		Billing:    NewBillingService(settings, deps),
		Payroll:    NewPayrollService(deps),
		Messages:   NewMessageService(sender, deps),
		Imports:    NewImportService(cfg.Import.PreviewRows, deps),
	}
	s.Dashboard = NewDashboardService(s.Inventory, s.Billing, s.Payroll, s.Messages, s.Attendance)
	s.Exports = NewExportService(s.Billing, s.Dashboard, s.Inventory, deps)
	return s
}

// DefaultSettings are the settings new workspaces start with: the built-in
// defaults with the configured invoice prefix and tax rate.
func DefaultSettings(cfg *config.Config) entities.Settings {
	st := entities.DefaultSettings()
	if cfg.Billing.NumberPrefix != "" {
		st.InvoicePrefix = cfg.Billing.NumberPrefix
	}
	if !cfg.Billing.TaxRate.IsZero() {
		st.TaxRate = cfg.Billing.TaxRate
	}
	return st
}
