package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medroadmap/penalty-board-api/internal/service"
	appErrors "github.com/medroadmap/penalty-board-api/pkg/errors"
	"github.com/medroadmap/penalty-board-api/pkg/response"
)

// RuleHandler exposes infraction catalog endpoints.
type RuleHandler struct {
	rules *service.RuleService
}

// NewRuleHandler constructs RuleHandler.
func NewRuleHandler(rules *service.RuleService) *RuleHandler {
	return &RuleHandler{rules: rules}
}

// List godoc
// @Summary List infraction rules
// @Tags Rules
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /rules [get]
func (h *RuleHandler) List(c *gin.Context) {
	rules, err := h.rules.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rules)
}

// Upsert godoc
// @Summary Insert or update a rule
// @Tags Rules
// @Accept json
// @Produce json
// @Param payload body service.UpsertRuleRequest true "Rule payload"
// @Success 200 {object} response.Envelope
// @Router /rules [post]
func (h *RuleHandler) Upsert(c *gin.Context) {
	var req service.UpsertRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	id, err := h.rules.Upsert(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"id": id})
}

// Delete godoc
// @Summary Delete a rule
// @Tags Rules
// @Produce json
// @Param id path string true "Rule ID"
// @Success 200 {object} response.Envelope
// @Router /rules/{id} [delete]
func (h *RuleHandler) Delete(c *gin.Context) {
	if err := h.rules.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, true)
}
