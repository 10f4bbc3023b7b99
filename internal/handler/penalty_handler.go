package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medroadmap/penalty-board-api/internal/service"
	appErrors "github.com/medroadmap/penalty-board-api/pkg/errors"
	"github.com/medroadmap/penalty-board-api/pkg/response"
)

// PenaltyHandler exposes penalty accounting endpoints.
type PenaltyHandler struct {
	penalties *service.PenaltyService
}

// NewPenaltyHandler constructs PenaltyHandler.
func NewPenaltyHandler(penalties *service.PenaltyService) *PenaltyHandler {
	return &PenaltyHandler{penalties: penalties}
}

// List godoc
// @Summary List a student's penalties within a date range
// @Tags Penalties
// @Produce json
// @Param studentId query string true "Student ID"
// @Param from query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param to query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /penalties [get]
func (h *PenaltyHandler) List(c *gin.Context) {
	penalties, err := h.penalties.List(c.Request.Context(), c.Query("studentId"), c.Query("from"), c.Query("to"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, penalties)
}

// Create godoc
// @Summary Record a penalty event
// @Tags Penalties
// @Accept json
// @Produce json
// @Param payload body service.CreatePenaltyRequest true "Penalty payload"
// @Success 200 {object} response.Envelope
// @Router /penalties [post]
func (h *PenaltyHandler) Create(c *gin.Context) {
	var req service.CreatePenaltyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	id, err := h.penalties.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"id": id})
}

// Delete godoc
// @Summary Delete a penalty event
// @Tags Penalties
// @Produce json
// @Param id path string true "Penalty ID"
// @Success 200 {object} response.Envelope
// @Router /penalties/{id} [delete]
func (h *PenaltyHandler) Delete(c *gin.Context) {
	if err := h.penalties.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, true)
}

// Reset godoc
// @Summary Bulk-delete a student's penalties within a date range
// @Tags Penalties
// @Accept json
// @Produce json
// @Param payload body service.ResetRequest true "Reset payload"
// @Success 200 {object} response.Envelope
// @Router /penalties/reset [post]
func (h *PenaltyHandler) Reset(c *gin.Context) {
	var req service.ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	deleted, err := h.penalties.Reset(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": deleted})
}
