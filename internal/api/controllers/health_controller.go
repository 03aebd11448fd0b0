package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"travelai/pkg/utils"
)

// HealthCheck is one dependency probed by /healthz.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type HealthController struct {
	checks []HealthCheck
}

func NewHealthController(checks ...HealthCheck) *HealthController {
	return &HealthController{checks: checks}
}

// Healthz godoc
// @Summary Liveness and dependency check
// @Tags Health
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /healthz [get]
func (h *HealthController) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := gin.H{}
	healthy := true
	for _, check := range h.checks {
		if err := check.Check(ctx); err != nil {
			_ = c.Error(err)
			status[check.Name] = "down"
			healthy = false
			continue
		}
		status[check.Name] = "up"
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, utils.APIResponse{
			Status:  "error",
			Code:    http.StatusServiceUnavailable,
			Message: "Service degraded",
			TraceID: c.GetString("trace_id"),
			Data:    status,
		})
		return
	}
	utils.RespondSuccess(c, status, "OK")
}
