package handlers

import (
	"net/http"
	"time"

	"github.com/bijalsangnaach/academy-backend/config"
	"github.com/bijalsangnaach/academy-backend/types"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	cfg       *config.Config
	startedAt time.Time
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{
		cfg:       cfg,
		startedAt: time.Now(),
	}
}

// LivenessCheck handles the liveness probe.
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.Status(http.StatusOK)
}

// ReadinessCheck reports degraded when the mail configuration is incomplete,
// since every submission would fail with ConfigurationMissing.
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	health := h.check()
	if health.Status == types.HealthStatusDegraded {
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}
	c.JSON(http.StatusOK, health)
}

// DetailedHealth provides detailed health information.
func (h *HealthHandler) DetailedHealth(c *gin.Context) {
	c.JSON(http.StatusOK, h.check())
}

func (h *HealthHandler) check() types.HealthCheck {
	status := types.HealthStatusUp
	if !h.cfg.Email.IsComplete() {
		status = types.HealthStatusDegraded
	}
	return types.HealthCheck{
		Status:          status,
		Version:         h.cfg.Server.Version,
		Environment:     string(h.cfg.Server.Environment),
		UptimeSeconds:   int64(time.Since(h.startedAt).Seconds()),
		EmailConfigured: h.cfg.Email.IsComplete(),
	}
}
