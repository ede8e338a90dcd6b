package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartwork/dashboard/internal/services"
)

type SettingsController struct {
	service *services.SettingsService
}

func NewSettingsController(service *services.SettingsService) *SettingsController {
	return &SettingsController{service: service}
}

// Get returns the workspace settings
// GET /api/settings
func (sc *SettingsController) Get(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, sc.service.Get(ws))
}

// Update merges the body onto the current settings
// PUT /api/settings
func (sc *SettingsController) Update(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	next := sc.service.Get(ws)
	if err := c.ShouldBindJSON(&next); err != nil {
		respondInvalid(c, err)
		return
	}
	updated, err := sc.service.Update(ws, next)
	if err != nil {
		respondError(c, err, "settings")
		return
	}
	c.JSON(http.StatusOK, updated)
}
