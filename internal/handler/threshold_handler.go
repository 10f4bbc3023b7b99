package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medroadmap/penalty-board-api/internal/service"
	appErrors "github.com/medroadmap/penalty-board-api/pkg/errors"
	"github.com/medroadmap/penalty-board-api/pkg/response"
)

// ThresholdHandler exposes notification tier endpoints.
type ThresholdHandler struct {
	thresholds *service.ThresholdService
}

// NewThresholdHandler constructs ThresholdHandler.
func NewThresholdHandler(thresholds *service.ThresholdService) *ThresholdHandler {
	return &ThresholdHandler{thresholds: thresholds}
}

// List godoc
// @Summary List notification thresholds
// @Tags Thresholds
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /thresholds [get]
func (h *ThresholdHandler) List(c *gin.Context) {
	thresholds, err := h.thresholds.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, thresholds)
}

// Upsert godoc
// @Summary Insert or update a threshold
// @Tags Thresholds
// @Accept json
// @Produce json
// @Param payload body service.UpsertThresholdRequest true "Threshold payload"
// @Success 200 {object} response.Envelope
// @Router /thresholds [post]
func (h *ThresholdHandler) Upsert(c *gin.Context) {
	var req service.UpsertThresholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	id, err := h.thresholds.Upsert(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"id": id})
}

// Delete godoc
// @Summary Delete a threshold
// @Tags Thresholds
// @Produce json
// @Param id path string true "Threshold ID"
// @Success 200 {object} response.Envelope
// @Router /thresholds/{id} [delete]
func (h *ThresholdHandler) Delete(c *gin.Context) {
	if err := h.thresholds.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, true)
}
