package sessions

import (
	"github.com/gin-gonic/gin"

	"github.com/smartwork/dashboard/internal/store"
)

// ContextKeyWorkspace holds the caller's *store.Workspace in the gin context.
const ContextKeyWorkspace = "workspace"

// Workspace resolves the session's workspace and stores it in the gin
// context. LoadSave must run first.
func Workspace(m *Manager, registry *Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := m.EnsureWorkspaceID(c.Request.Context())
		c.Set(ContextKeyWorkspace, registry.Get(id))
		c.Next()
	}
}

// FromContext returns the workspace resolved by the Workspace middleware.
func FromContext(c *gin.Context) (*store.Workspace, bool) {
	v, ok := c.Get(ContextKeyWorkspace)
	if !ok {
		return nil, false
	}
	ws, ok := v.(*store.Workspace)
	return ws, ok
}
