package handler

import (
	"strconv"

	"bloodlink/internal/adapter/http/dto"
	"bloodlink/internal/core/ports"
	"bloodlink/pkg/apperror"
	"bloodlink/pkg/response"

	"github.com/gin-gonic/gin"
)

// SweepHandler exposes the expiry sweeper for on-demand runs. The scheduled
// loop covers routine operation; this endpoint exists for operators.
type SweepHandler struct {
	sweeperSvc       ports.SweeperService
	defaultBatchSize int
}

// NewSweepHandler creates a new SweepHandler.
func NewSweepHandler(sweeperSvc ports.SweeperService, defaultBatchSize int) *SweepHandler {
	return &SweepHandler{sweeperSvc: sweeperSvc, defaultBatchSize: defaultBatchSize}
}

// Sweep handles POST /api/v1/sweep?batch_size=N.
func (h *SweepHandler) Sweep(c *gin.Context) {
	batchSize := h.defaultBatchSize
	if raw := c.Query("batch_size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			response.Error(c, apperror.Validation("batch_size must be a non-negative integer"))
			return
		}
		batchSize = n
	}

	report, err := h.sweeperSvc.Sweep(c.Request.Context(), batchSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SweepResponse{Examined: report.Examined, Expired: report.Expired})
}
