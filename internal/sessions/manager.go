// Package sessions ties each browser session to its own in-memory workspace.
package sessions

import (
	"context"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/google/uuid"

	"github.com/smartwork/dashboard/internal/config"
)

// Session data keys
const (
	SessionKeyWorkspace = "workspace_id"
)

// memstoreCleanupInterval is how often expired sessions are purged from memory.
const memstoreCleanupInterval = time.Minute

// Manager wraps scs.SessionManager with workspace-aware helpers.
type Manager struct {
	*scs.SessionManager
}

// NewManager creates a session manager backed by an in-memory store.
func NewManager(cfg config.Sessions) *Manager {
	sm := scs.New()
	sm.Store = memstore.NewWithCleanupInterval(memstoreCleanupInterval)

	if cfg.Lifetime > 0 {
		sm.Lifetime = cfg.Lifetime
		sm.IdleTimeout = cfg.Lifetime / 2 // Half of lifetime for inactivity
	}

	sm.Cookie.Name = "smartwork_session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = cfg.SecureCookies
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Path = "/"

	return &Manager{SessionManager: sm}
}

// WorkspaceID returns the workspace bound to the session, or "".
func (m *Manager) WorkspaceID(ctx context.Context) string {
	return m.GetString(ctx, SessionKeyWorkspace)
}

// EnsureWorkspaceID returns the session's workspace id, binding a new one
// the first time a session is seen.
func (m *Manager) EnsureWorkspaceID(ctx context.Context) string {
	if id := m.WorkspaceID(ctx); id != "" {
		return id
	}
	id := uuid.NewString()
	m.Put(ctx, SessionKeyWorkspace, id)
	return id
}

// Reset drops the session; the next request starts on a fresh workspace.
func (m *Manager) Reset(ctx context.Context) error {
	return m.Destroy(ctx)
}
