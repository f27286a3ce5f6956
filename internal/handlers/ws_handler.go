package handler

import (
	"log"

	"fraud-detection-backend/internal/alerts"

	"github.com/gin-gonic/gin"
)

type WSHandler struct {
	hub *alerts.Hub
}

func NewWSHandler(hub *alerts.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

// HandleWS subscribes the client to the live fraud feed.
func (h *WSHandler) HandleWS(c *gin.Context) {
	if err := h.hub.HandleRequest(c.Writer, c.Request); err != nil {
		log.Printf("[WS] failed to upgrade websocket: %v", err)
	}
}
