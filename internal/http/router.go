package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/smartwork/dashboard/internal/entities"
	"github.com/smartwork/dashboard/internal/logging"
	"github.com/smartwork/dashboard/internal/sessions"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(logging.GinMiddleware(logging.Named(logger, "http")))
	router.Use(gin.Recovery())
	router.Use(sessions.SecurityHeaders())
	if cfg.Metrics != nil {
		router.Use(cfg.Metrics.Middleware())
	}

	healthController := NewHealthController(cfg.Database, cfg.Registry.Len, cfg.Version)
	router.GET("/health", healthController.Status)
	if cfg.Metrics != nil {
		router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	// CSRF must run before the session so the session context is not lost
	// when gorilla/csrf replaces the request.
	api := router.Group("/api")
	api.Use(sessions.CSRF(cfg.CSRFSecret, cfg.SecureCookies))
	api.Use(cfg.Sessions.LoadSave())
	api.Use(sessions.Workspace(cfg.Sessions, cfg.Registry))

	svc := cfg.Services

	dashboardController := NewDashboardController(svc.Dashboard, cfg.AuditService)
	api.GET("/dashboard", dashboardController.Overview)
	api.GET("/activity", dashboardController.Activity)

	settingsController := NewSettingsController(svc.Settings)
	api.GET("/settings", settingsController.Get)
	api.PUT("/settings", settingsController.Update)

	// Directory
	NewRecordsController[entities.Employee](svc.Employees, "employee").Register(api.Group("/employees"))
	NewRecordsController[entities.Client](svc.Clients, "client").Register(api.Group("/clients"))

	tasksController := NewTasksController(svc.Tasks)
	tasks := api.Group("/tasks")
	NewRecordsController[entities.Task](svc.Tasks, "task").Register(tasks)
	tasks.PATCH("/:id/status", tasksController.MoveTask)

	attendanceController := NewAttendanceController(svc.Attendance)
	api.GET("/attendance", attendanceController.List)
	api.POST("/attendance/check-in", attendanceController.CheckIn)
	api.POST("/attendance/check-out", attendanceController.CheckOut)

	// Inventory
	inventoryController := NewInventoryController(svc.Inventory)
	products := api.Group("/products")
	products.GET("/stats", inventoryController.Stats)
	NewRecordsController[entities.Product](svc.Inventory, "product").
		WithSearch(inventoryController.search).
		WithDefaults(entities.NewProduct).
		Register(products)
	api.GET("/stock-movements", inventoryController.ListMovements)
	api.POST("/stock-movements", inventoryController.RecordMovement)

	// Billing
	billingController := NewBillingController(svc.Billing, svc.Exports)
	invoices := api.Group("/invoices")
	invoices.GET("/stats", billingController.Stats)
	NewRecordsController[entities.Invoice](svc.Billing, "invoice").
		WithSearch(billingController.search).
		Register(invoices)
	invoices.POST("/:id/send", billingController.Send)
	invoices.POST("/:id/pay", billingController.Pay)
	invoices.POST("/:id/cancel", billingController.Cancel)
	invoices.GET("/:id/pdf", billingController.PDF)

	// Payroll
	payrollController := NewPayrollController(svc.Payroll, svc.Exports)
	payslips := api.Group("/payslips")
	payslips.GET("/stats", payrollController.Stats)
	NewRecordsController[entities.Payslip](svc.Payroll, "payslip").Register(payslips)
	payslips.POST("/:id/validate", payrollController.Validate)
	payslips.POST("/:id/pay", payrollController.Pay)
	payslips.GET("/:id/pdf", payrollController.PDF)

	// Messaging
	messagesController := NewMessagesController(svc.Messages)
	api.GET("/messages", messagesController.List)
	api.POST("/messages", messagesController.Send)
	api.GET("/messages/templates", messagesController.Templates)
	api.DELETE("/messages/:id", messagesController.Delete)

	// Exports
	exportController := NewExportController(svc.Exports, cfg.Metrics)
	api.GET("/export", exportController.Entities)
	api.GET("/export/:entity", exportController.Export)
	api.GET("/reports/summary.pdf", exportController.Report)

	// Imports
	importController := NewImportController(svc.Imports, cfg.Metrics, cfg.MaxUploadBytes)
	api.GET("/imports", importController.Kinds)
	api.POST("/imports/:entity", importController.Select)
	api.GET("/imports/:entity", importController.Current)
	api.DELETE("/imports/:entity", importController.Cancel)
	api.POST("/imports/:entity/confirm", importController.Confirm)
	api.GET("/imports/:entity/template", importController.Template)

	return router
}
