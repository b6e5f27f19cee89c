package handlers

import (
	"net/http"

	"restaurant-orders-api/statemachine"
	"restaurant-orders-api/store"

	"github.com/gin-gonic/gin"
)

type PublicHandler struct {
	Store  *store.Store
	Policy statemachine.Policy
}

func NewPublicHandler(s *store.Store, policy statemachine.Policy) *PublicHandler {
	return &PublicHandler{Store: s, Policy: policy}
}

// Health reports whether the database answers
func (h *PublicHandler) Health(c *gin.Context) {
	if err := h.Store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "Restaurant Order Management API",
		"version": "1.0.0",
	})
}

func (h *PublicHandler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "🍛 Welcome to the Restaurant Order Management API",
		"docs":    "/state-machine",
		"health":  "/health",
	})
}

// GetStateMachineInfo returns the order status machine for informational purposes
func (h *PublicHandler) GetStateMachineInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   statemachine.GetAllTransitions(),
		"terminal_states": statemachine.TerminalStates(),
		"strict":          h.Policy.Strict,
		"description":     "Restaurant Order Lifecycle State Machine",
	})
}
