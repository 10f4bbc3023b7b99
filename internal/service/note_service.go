package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/medroadmap/penalty-board-api/internal/models"
	appErrors "github.com/medroadmap/penalty-board-api/pkg/errors"
)

type noteRepository interface {
	ListByStudent(ctx context.Context, studentID string) ([]models.Note, error)
	Upsert(ctx context.Context, note *models.Note) error
	Delete(ctx context.Context, id string) error
}

// NoteService manages dated annotations on students.
type NoteService struct {
	repo      noteRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewNoteService constructs the service.
func NewNoteService(repo noteRepository, validate *validator.Validate, logger *zap.Logger) *NoteService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NoteService{repo: repo, validator: validate, logger: logger}
}

// UpsertNoteRequest describes the note upsert payload. Reusing an existing
// id edits that note in place.
type UpsertNoteRequest struct {
	ID        string `json:"id"`
	StudentID string `json:"student_id" validate:"required"`
	NotedOn   string `json:"noted_on" validate:"required,datetime=2006-01-02"`
	Content   string `json:"content" validate:"required"`
}

// List returns a student's notes, newest first.
func (s *NoteService) List(ctx context.Context, studentID string) ([]models.Note, error) {
	if studentID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "studentId is required")
	}
	notes, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list notes")
	}
	return notes, nil
}

// Upsert inserts or edits a note and returns its id.
func (s *NoteService) Upsert(ctx context.Context, req UpsertNoteRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Validation(err, "invalid note payload")
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	note := &models.Note{
		ID:        req.ID,
		StudentID: req.StudentID,
		NotedOn:   req.NotedOn,
		Content:   req.Content,
	}
	if err := s.repo.Upsert(ctx, note); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to upsert note")
	}
	return note.ID, nil
}

// Delete removes a note.
func (s *NoteService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete note")
	}
	return nil
}
