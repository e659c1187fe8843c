package handlers

import (
	"net/http"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	Monitor *utils.HealthMonitor
}

// Health reports the last store and cache checks. A down store answers 503.
func (h *HealthHandler) Health(c *gin.Context) {
	status := h.Monitor.Status()
	code := http.StatusOK
	label := "ok"
	if !status.Mongo {
		code = http.StatusServiceUnavailable
		label = "degraded"
	}
	c.JSON(code, gin.H{"status": label, "checks": status})
}
