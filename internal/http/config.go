package http

import (
	"go.uber.org/zap"

	"github.com/smartwork/dashboard/internal/audit"
	"github.com/smartwork/dashboard/internal/metrics"
	"github.com/smartwork/dashboard/internal/services"
	"github.com/smartwork/dashboard/internal/sessions"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Services *services.Services
	Registry *sessions.Registry
	Sessions *sessions.Manager

	// Observability; all optional
	AuditService *audit.Service
	Database     Pinger
	Metrics      *metrics.Metrics
	Logger       *zap.Logger

	// Security
	CSRFSecret    string
	SecureCookies bool

	// Import upload limit in bytes; zero means unlimited
	MaxUploadBytes int64

	// Application info
	Version string
}
