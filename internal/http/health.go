package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// healthCheckTimeout bounds the activity database ping.
const healthCheckTimeout = 2 * time.Second

type HealthResponse struct {
	Status  string            `json:"status"`
	Time    string            `json:"time"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

// Pinger is satisfied by *database.Database.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	db         Pinger
	workspaces func() int
	version    string
}

func NewHealthController(db Pinger, workspaces func() int, version string) *HealthController {
	return &HealthController{
		db:         db,
		workspaces: workspaces,
		version:    version,
	}
}

func (h *HealthController) Status(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	// Check activity database connectivity
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			checks["activity_db"] = "error: " + err.Error()
			status = "unhealthy"
		} else {
			checks["activity_db"] = "ok"
		}
	} else {
		checks["activity_db"] = "not configured"
	}

	if h.workspaces != nil {
		checks["workspaces"] = strconv.Itoa(h.workspaces())
	}

	health := HealthResponse{
		Status:  status,
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Checks:  checks,
	}

	statusCode := http.StatusOK
	if status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.IndentedJSON(statusCode, health)
}
