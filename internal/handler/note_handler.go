package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medroadmap/penalty-board-api/internal/service"
	appErrors "github.com/medroadmap/penalty-board-api/pkg/errors"
	"github.com/medroadmap/penalty-board-api/pkg/response"
)

// NoteHandler exposes note endpoints.
type NoteHandler struct {
	notes *service.NoteService
}

// NewNoteHandler constructs NoteHandler.
func NewNoteHandler(notes *service.NoteService) *NoteHandler {
	return &NoteHandler{notes: notes}
}

// List godoc
// @Summary List a student's notes
// @Tags Notes
// @Produce json
// @Param studentId query string true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /notes [get]
func (h *NoteHandler) List(c *gin.Context) {
	notes, err := h.notes.List(c.Request.Context(), c.Query("studentId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, notes)
}

// Upsert godoc
// @Summary Insert or edit a note
// @Tags Notes
// @Accept json
// @Produce json
// @Param payload body service.UpsertNoteRequest true "Note payload"
// @Success 200 {object} response.Envelope
// @Router /notes [post]
func (h *NoteHandler) Upsert(c *gin.Context) {
	var req service.UpsertNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	id, err := h.notes.Upsert(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"id": id})
}

// Delete godoc
// @Summary Delete a note
// @Tags Notes
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} response.Envelope
// @Router /notes/{id} [delete]
func (h *NoteHandler) Delete(c *gin.Context) {
	if err := h.notes.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, true)
}
