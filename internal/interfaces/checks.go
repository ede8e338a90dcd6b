package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/smartwork/dashboard/internal/audit"
	"github.com/smartwork/dashboard/internal/database"
	"github.com/smartwork/dashboard/internal/entities"
	"github.com/smartwork/dashboard/internal/http"
	"github.com/smartwork/dashboard/internal/importers"
	"github.com/smartwork/dashboard/internal/messaging"
	"github.com/smartwork/dashboard/internal/metrics"
	"github.com/smartwork/dashboard/internal/scheduler"
	"github.com/smartwork/dashboard/internal/services"
	"github.com/smartwork/dashboard/internal/store"
)

// =============================================================================
// Activity Journal
// =============================================================================

var _ services.Journal = (*audit.Service)(nil)
var _ scheduler.Journal = (*audit.Service)(nil)

// =============================================================================
// Infrastructure
// =============================================================================

var _ http.Pinger = (*database.Database)(nil)
var _ scheduler.Recorder = (*metrics.Metrics)(nil)
var _ scheduler.Sweeper = (*services.BillingService)(nil)

// =============================================================================
// Workspace Store
// =============================================================================

var _ store.Cloner[entities.Invoice] = (*entities.Invoice)(nil)

// =============================================================================
// Messaging
// =============================================================================

var _ messaging.Sender = (*messaging.Dispatcher)(nil)
var _ messaging.Client = (*messaging.APIClient)(nil)

// =============================================================================
// Import Pipeline
// =============================================================================

var _ importers.Source = (*importers.BytesSource)(nil)
var _ importers.Source = importers.FileSource{}
var _ importers.Importer = (*importers.Session[entities.Product])(nil)
