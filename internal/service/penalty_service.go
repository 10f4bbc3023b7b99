package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/medroadmap/penalty-board-api/internal/models"
	appErrors "github.com/medroadmap/penalty-board-api/pkg/errors"
)

// Open-ended range bounds used when a caller omits from/to. Dates are plain
// YYYY-MM-DD strings, so the bounds compare lexicographically.
const (
	minDate = "0000-01-01"
	maxDate = "9999-12-31"
)

type penaltyRepository interface {
	ListByStudent(ctx context.Context, studentID, from, to string) ([]models.Penalty, error)
	Create(ctx context.Context, penalty *models.Penalty) error
	Delete(ctx context.Context, id string) error
	DeleteRange(ctx context.Context, studentID, from, to string) (int64, error)
	CumulativeByStudent(ctx context.Context) ([]models.StudentPoints, error)
}

type penaltyRuleReader interface {
	FindByID(ctx context.Context, id string) (*models.Rule, error)
}

// PenaltyService records and aggregates penalty events.
type PenaltyService struct {
	repo      penaltyRepository
	rules     penaltyRuleReader
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPenaltyService constructs the service.
func NewPenaltyService(repo penaltyRepository, rules penaltyRuleReader, validate *validator.Validate, logger *zap.Logger) *PenaltyService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PenaltyService{repo: repo, rules: rules, validator: validate, logger: logger}
}

// CreatePenaltyRequest describes a new penalty event. The student id is
// deliberately not checked against the roster; only the rule must exist.
type CreatePenaltyRequest struct {
	StudentID  string  `json:"student_id" validate:"required"`
	RuleID     string  `json:"rule_id" validate:"required"`
	OccurredOn string  `json:"occurred_on" validate:"required,datetime=2006-01-02"`
	Memo       *string `json:"memo"`
}

// ResetRequest describes a bulk date-range deletion for one student.
type ResetRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	From      string `json:"from" validate:"required,datetime=2006-01-02"`
	To        string `json:"to" validate:"required,datetime=2006-01-02"`
}

// List returns a student's penalties within the inclusive [from, to] range,
// defaulting to all dates when a bound is omitted.
func (s *PenaltyService) List(ctx context.Context, studentID, from, to string) ([]models.Penalty, error) {
	if studentID == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "studentId is required")
	}
	if from == "" {
		from = minDate
	}
	if to == "" {
		to = maxDate
	}
	penalties, err := s.repo.ListByStudent(ctx, studentID, from, to)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list penalties")
	}
	return penalties, nil
}

// Create records a penalty event, snapshotting the rule's current title and
// point value onto the new row.
func (s *PenaltyService) Create(ctx context.Context, req CreatePenaltyRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Validation(err, "invalid penalty payload")
	}

	rule, err := s.rules.FindByID(ctx, req.RuleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", appErrors.Clone(appErrors.ErrNotFound, "rule not found")
		}
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load rule")
	}

	penalty := &models.Penalty{
		ID:         uuid.NewString(),
		StudentID:  req.StudentID,
		RuleID:     rule.ID,
		RuleTitle:  rule.Title,
		Points:     rule.Points,
		OccurredOn: req.OccurredOn,
		Memo:       req.Memo,
	}
	if err := s.repo.Create(ctx, penalty); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create penalty")
	}
	return penalty.ID, nil
}

// Delete removes a single penalty event.
func (s *PenaltyService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete penalty")
	}
	return nil
}

// Reset bulk-deletes a student's penalties in the inclusive [from, to] range
// and returns the exact count deleted. A reversed range is rejected before
// anything is removed.
func (s *PenaltyService) Reset(ctx context.Context, req ResetRequest) (int64, error) {
	if err := s.validator.Struct(req); err != nil {
		return 0, appErrors.Validation(err, "invalid reset payload")
	}
	if req.From > req.To {
		return 0, appErrors.Clone(appErrors.ErrInvalidRange, "from must not be after to")
	}
	deleted, err := s.repo.DeleteRange(ctx, req.StudentID, req.From, req.To)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reset penalties")
	}
	s.logger.Info("penalties reset",
		zap.String("student_id", req.StudentID),
		zap.String("from", req.From),
		zap.String("to", req.To),
		zap.Int64("deleted", deleted))
	return deleted, nil
}

// Cumulative returns every student with the live sum of its penalty points.
func (s *PenaltyService) Cumulative(ctx context.Context) ([]models.StudentPoints, error) {
	rows, err := s.repo.CumulativeByStudent(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to compute summary")
	}
	return rows, nil
}
