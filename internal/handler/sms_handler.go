package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medroadmap/penalty-board-api/internal/service"
	appErrors "github.com/medroadmap/penalty-board-api/pkg/errors"
	"github.com/medroadmap/penalty-board-api/pkg/response"
)

// SMSHandler exposes notification dispatch endpoints.
type SMSHandler struct {
	notifications *service.NotificationService
	thresholds    *service.ThresholdService
	metrics       *service.MetricsService
}

// NewSMSHandler constructs SMSHandler.
func NewSMSHandler(notifications *service.NotificationService, thresholds *service.ThresholdService, metrics *service.MetricsService) *SMSHandler {
	return &SMSHandler{notifications: notifications, thresholds: thresholds, metrics: metrics}
}

// Send godoc
// @Summary Send a message to a student's contact numbers
// @Tags SMS
// @Accept json
// @Produce json
// @Param payload body service.SendRequest true "Dispatch payload"
// @Success 200 {object} response.Envelope
// @Router /sms/send [post]
func (h *SMSHandler) Send(c *gin.Context) {
	var req service.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.notifications.Send(c.Request.Context(), req)
	if err != nil {
		h.metrics.CountSMS(0, true)
		response.Error(c, err)
		return
	}
	h.metrics.CountSMS(result.Sent, false)
	response.OK(c, result)
}

// Preview godoc
// @Summary Resolve the applicable threshold and render its message for a student
// @Tags SMS
// @Produce json
// @Param studentId query string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /sms/preview [get]
func (h *SMSHandler) Preview(c *gin.Context) {
	studentID := c.Query("studentId")
	if studentID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "studentId is required"))
		return
	}
	preview, err := h.thresholds.Preview(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, preview)
}
