package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/medroadmap/penalty-board-api/internal/models"
	"github.com/medroadmap/penalty-board-api/internal/service"
	appErrors "github.com/medroadmap/penalty-board-api/pkg/errors"
	"github.com/medroadmap/penalty-board-api/pkg/response"
)

// AuthHandler exposes admin session endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login godoc
// @Summary Issue an admin session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	resp, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, resp)
}

// Logout godoc
// @Summary Revoke the current admin session
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "missing bearer token"))
		return
	}
	if err := h.auth.Logout(c.Request.Context(), parts[1]); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, true)
}
