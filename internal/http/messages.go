package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smartwork/dashboard/internal/entities"
	"github.com/smartwork/dashboard/internal/services"
)

type MessagesController struct {
	service *services.MessageService
}

func NewMessagesController(service *services.MessageService) *MessagesController {
	return &MessagesController{service: service}
}

// List returns sent messages and drafts
// GET /api/messages?q=&type=
func (mc *MessagesController) List(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	messages := mc.service.List(ws, c.Query("q"))
	if channel := c.Query("type"); channel != "" {
		filtered := messages[:0:0]
		for _, m := range messages {
			if string(m.Type) == channel {
				filtered = append(filtered, m)
			}
		}
		messages = filtered
	}
	respondList(c, messages)
}

// Send delivers a message, or stores it when "draft" is true
// POST /api/messages
func (mc *MessagesController) Send(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	var in services.Compose
	if err := c.ShouldBindJSON(&in); err != nil {
		respondInvalid(c, err)
		return
	}
	msg, err := mc.service.Send(c.Request.Context(), ws, in)
	if err != nil {
		respondError(c, err, "message")
		return
	}
	respondCreated(c, msg)
}

// Delete removes a message
// DELETE /api/messages/:id
func (mc *MessagesController) Delete(c *gin.Context) {
	ws, ok := workspace(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := mc.service.Delete(ws, id); err != nil {
		respondError(c, err, "message")
		return
	}
	c.Status(http.StatusNoContent)
}

// Templates lists the built-in templates, optionally for one ?type=
// GET /api/messages/templates
func (mc *MessagesController) Templates(c *gin.Context) {
	respondList(c, mc.service.Templates(entities.Channel(c.Query("type"))))
}
