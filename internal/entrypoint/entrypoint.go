package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/smartwork/dashboard/internal/audit"
	"github.com/smartwork/dashboard/internal/config"
	"github.com/smartwork/dashboard/internal/database"
	auditrepo "github.com/smartwork/dashboard/internal/database/audit"
	"github.com/smartwork/dashboard/internal/demo"
	"github.com/smartwork/dashboard/internal/exporters"
	http_controllers "github.com/smartwork/dashboard/internal/http"
	"github.com/smartwork/dashboard/internal/logging"
	"github.com/smartwork/dashboard/internal/messaging"
	"github.com/smartwork/dashboard/internal/metrics"
	"github.com/smartwork/dashboard/internal/scheduler"
	"github.com/smartwork/dashboard/internal/services"
	"github.com/smartwork/dashboard/internal/sessions"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// App is the fully wired server.
type App struct {
	Config    *config.Config
	Logger    *zap.Logger
	Database  *database.Database
	Audit     *audit.Service
	Services  *services.Services
	Registry  *sessions.Registry
	Sessions  *sessions.Manager
	Metrics   *metrics.Metrics
	Scheduler *scheduler.Scheduler
	Router    *gin.Engine
}

// NewApp opens the activity database and wires every component.
func NewApp(cfg *config.Config, version string, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Billing.CurrencyLabel != "" {
		exporters.CurrencyLabel = cfg.Billing.CurrencyLabel
	}

	// gorm logs every statement at info; only do that when debugging.
	sqlLogLevel := "warn"
	if cfg.Logging.Level == "debug" {
		sqlLogLevel = "info"
	}
	db, err := database.NewDatabase(cfg.Activity.DatabasePath, sqlLogLevel, logging.Named(logger, "database"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize activity database: %w", err)
	}
	auditService := audit.NewService(auditrepo.NewRepository(db.DB), logging.Named(logger, "audit"))

	var whatsapp messaging.Client
	if cfg.WhatsApp.Enabled() {
		whatsapp = messaging.NewClient(cfg.WhatsApp)
		logger.Info("WhatsApp Cloud API delivery enabled", zap.String("phone_number_id", cfg.WhatsApp.PhoneNumberID))
	} else {
		logger.Info("WHATSAPP_TOKEN not set, messages are delivered locally")
	}
	sender := messaging.NewDispatcher(whatsapp, logging.Named(logger, "messaging"))

	svc := services.New(cfg, sender, services.Deps{
		Journal: auditService,
		Logger:  logging.Named(logger, "services"),
	})

	seed := demo.Empty
	if cfg.Global.DemoSeed {
		seed = demo.Dataset
	}
	registry := sessions.NewRegistry(seed)
	m := metrics.New()

	app := &App{
		Config:   cfg,
		Logger:   logger,
		Database: db,
		Audit:    auditService,
		Services: svc,
		Registry: registry,
		Sessions: sessions.NewManager(cfg.Sessions),
		Metrics:  m,
	}
	app.Scheduler = scheduler.New(cfg.Scheduler, cfg.Activity.RetentionDays, registry, svc.Billing, auditService, m, logging.Named(logger, "scheduler"))
	app.Router = http_controllers.NewRouter(http_controllers.RouterConfig{
		Services:       svc,
		Registry:       registry,
		Sessions:       app.Sessions,
		AuditService:   auditService,
		Database:       db,
		Metrics:        m,
		Logger:         logger,
		CSRFSecret:     cfg.Sessions.CSRFSecret,
		SecureCookies:  cfg.Sessions.SecureCookies,
		MaxUploadBytes: cfg.Import.MaxUploadBytes(),
		Version:        version,
	})
	return app, nil
}

// Close flushes pending journal writes and closes the database.
func (a *App) Close() {
	a.Audit.Wait()
	if err := a.Database.Close(); err != nil {
		a.Logger.Warn("Error closing database", zap.Error(err))
	}
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// within the configured timeout.
func Serve(ctx context.Context, router http.Handler, cfg *config.Config, logger *zap.Logger, onShutdown ShutdownFunc) error {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server", zap.Duration("timeout", timeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop the scheduler)
	if onShutdown != nil {
		onShutdown(shutdownCtx)
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("Server exiting")
	return nil
}

// Run wires the application and serves it until SIGINT or SIGTERM.
func Run(cfg *config.Config, version string, logger *zap.Logger) error {
	logger.Info("Starting SmartWork dashboard", zap.String("version", version))
	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	app, err := NewApp(cfg, version, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Scheduler.Start(ctx); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}

	return Serve(ctx, app.Router, cfg, logger, func(context.Context) {
		app.Scheduler.Stop()
	})
}
