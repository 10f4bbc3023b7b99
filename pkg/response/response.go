package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/medroadmap/penalty-board-api/pkg/errors"
)

// Envelope is the common response contract: {ok, data} on success,
// {ok, message, detail} on failure.
type Envelope struct {
	OK      bool        `json:"ok"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Detail  interface{} `json:"detail,omitempty"`
}

// JSON sends a success envelope with the given status.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, Envelope{OK: true, Data: data})
}

// OK sends a 200 success envelope.
func OK(c *gin.Context, data interface{}) {
	JSON(c, http.StatusOK, data)
}

// Created sends a 201 success envelope.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Error sends a failure envelope converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, Envelope{OK: false, Message: appErr.Message, Detail: appErr.Detail})
}
