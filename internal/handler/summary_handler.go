package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medroadmap/penalty-board-api/internal/service"
	"github.com/medroadmap/penalty-board-api/pkg/response"
)

// SummaryHandler exposes the cumulative points aggregate.
type SummaryHandler struct {
	penalties *service.PenaltyService
	exports   *service.ExportService
}

// NewSummaryHandler constructs SummaryHandler.
func NewSummaryHandler(penalties *service.PenaltyService, exports *service.ExportService) *SummaryHandler {
	return &SummaryHandler{penalties: penalties, exports: exports}
}

// Cumulative godoc
// @Summary Cumulative penalty points per student
// @Tags Summary
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /summary/cumulative [get]
func (h *SummaryHandler) Cumulative(c *gin.Context) {
	rows, err := h.penalties.Cumulative(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rows)
}

// Export godoc
// @Summary Download the cumulative summary as csv, xlsx, or pdf
// @Tags Summary
// @Produce octet-stream
// @Param format query string true "csv | xlsx | pdf"
// @Success 200 {file} binary
// @Router /summary/export [get]
func (h *SummaryHandler) Export(c *gin.Context) {
	file, err := h.exports.CumulativeSummary(c.Request.Context(), c.DefaultQuery("format", "csv"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
