package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ServiceStatus reports which collaborators the server was wired with.
type ServiceStatus struct {
	MarketData bool
	News       bool
	AIAgent    bool
	History    bool
}

type HealthHandler struct {
	status ServiceStatus
}

func NewHealthHandler(status ServiceStatus) *HealthHandler {
	return &HealthHandler{status: status}
}

func (h *HealthHandler) GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Finance AI Agent API is running",
		"version": "1.0.0",
	})
}

func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"services": gin.H{
			"market_data": availability(h.status.MarketData),
			"news":        availability(h.status.News),
			"ai_agent":    availability(h.status.AIAgent),
			"history":     availability(h.status.History),
		},
	})
}

func availability(ok bool) string {
	if ok {
		return "available"
	}
	return "unavailable"
}
