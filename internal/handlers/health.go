package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daxterlabs/daxter-backend/internal/logger"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	log    *logger.Logger
	pinger Pinger
}

func NewHealthHandler(log *logger.Logger, pinger Pinger) *HealthHandler {
	return &HealthHandler{
		log:    log.With("handler", "HealthHandler"),
		pinger: pinger,
	}
}

func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"project": "Daxter", "status": "Running"})
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if err := h.pinger.Ping(c.Request.Context()); err != nil {
		h.log.Error("Health check failed", "error", err)
		RespondError(c, http.StatusServiceUnavailable, "database_unreachable", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "OK", "database": "Connected"})
}
