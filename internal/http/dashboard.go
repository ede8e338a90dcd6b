package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/smartwork/dashboard/internal/audit"
	"github.com/smartwork/dashboard/internal/entities"
	"github.com/smartwork/dashboard/internal/services"
)

const (
	defaultActivityLimit = 25
	maxActivityLimit     = 100
)

type DashboardController struct {
	dashboard    *services.DashboardService
	auditService *audit.Service
}

func NewDashboardController(dashboard *services.DashboardService, auditService *audit.Service) *DashboardController {
	return &DashboardController{dashboard: dashboard, auditService: auditService}
}

// Overview returns the dashboard counters
// GET /api/dashboard
func (dc *DashboardController) Overview(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dc.dashboard.Overview(ws))
}

// Activity returns the latest journal entries of the workspace
// GET /api/activity?limit=&page=&type=
func (dc *DashboardController) Activity(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultActivityLimit)))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxActivityLimit {
		limit = defaultActivityLimit
	}

	var (
		events []entities.AuditEvent
		total  int64
		err    error
	)
	if t := c.Query("type"); t != "" {
		eventType := entities.AuditEventType(t)
		if !eventType.Valid() {
			respondBadRequest(c, "unknown event type: "+t)
			return
		}
		events, total, err = dc.auditService.GetEventsByType(eventType, ws.ID, limit, (page-1)*limit)
	} else {
		events, total, err = dc.auditService.GetEvents(ws.ID, limit, (page-1)*limit)
	}
	if err != nil {
		respondInternalError(c, err, "activity")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"events":       events,
		"page":         page,
		"limit":        limit,
		"total_events": total,
	})
}
