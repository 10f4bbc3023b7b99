package service

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/medroadmap/penalty-board-api/internal/models"
	appErrors "github.com/medroadmap/penalty-board-api/pkg/errors"
)

type thresholdRepository interface {
	List(ctx context.Context) ([]models.Threshold, error)
	Upsert(ctx context.Context, threshold *models.Threshold) error
	Delete(ctx context.Context, id string) error
}

type thresholdStudentReader interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
}

type thresholdPointsReader interface {
	PointsForStudent(ctx context.Context, studentID string) (int, error)
}

// Message used when no threshold tier applies to a student's points.
const fallbackTemplate = "[메디컬로드맵] {name} 학생 벌점 누적 {points}점입니다."

// ThresholdService manages notification tiers and resolves the tier that
// applies to a point total.
type ThresholdService struct {
	repo      thresholdRepository
	students  thresholdStudentReader
	penalties thresholdPointsReader
	validator *validator.Validate
	logger    *zap.Logger
}

// NewThresholdService constructs the service.
func NewThresholdService(repo thresholdRepository, students thresholdStudentReader, penalties thresholdPointsReader, validate *validator.Validate, logger *zap.Logger) *ThresholdService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ThresholdService{repo: repo, students: students, penalties: penalties, validator: validate, logger: logger}
}

// UpsertThresholdRequest describes the threshold upsert payload. An empty id
// requests a server-generated one.
type UpsertThresholdRequest struct {
	ID              string `json:"id"`
	MinPoints       int    `json:"min_points"`
	Label           string `json:"label" validate:"required"`
	MessageTemplate string `json:"message_template"`
	SortOrder       int    `json:"sort_order"`
}

// MessagePreview is the resolved notification for one student.
type MessagePreview struct {
	StudentID string            `json:"student_id"`
	Points    int               `json:"points"`
	Threshold *models.Threshold `json:"threshold"`
	Message   string            `json:"message"`
}

// List returns the tiers in display order.
func (s *ThresholdService) List(ctx context.Context) ([]models.Threshold, error) {
	thresholds, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list thresholds")
	}
	return thresholds, nil
}

// Upsert inserts or overwrites a threshold and returns its id.
func (s *ThresholdService) Upsert(ctx context.Context, req UpsertThresholdRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Validation(err, "invalid threshold payload")
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	threshold := &models.Threshold{
		ID:              req.ID,
		MinPoints:       req.MinPoints,
		Label:           req.Label,
		MessageTemplate: req.MessageTemplate,
		SortOrder:       req.SortOrder,
	}
	if err := s.repo.Upsert(ctx, threshold); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to upsert threshold")
	}
	return threshold.ID, nil
}

// Delete removes a threshold.
func (s *ThresholdService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete threshold")
	}
	return nil
}

// Resolve picks the single applicable tier for a point total: among tiers
// with min_points <= points, the highest min_points wins, ties broken by the
// lowest sort order. A nil result means no tier applies.
func Resolve(thresholds []models.Threshold, points int) *models.Threshold {
	var best *models.Threshold
	for i := range thresholds {
		t := &thresholds[i]
		if t.MinPoints > points {
			continue
		}
		if best == nil || t.MinPoints > best.MinPoints ||
			(t.MinPoints == best.MinPoints && t.SortOrder < best.SortOrder) {
			best = t
		}
	}
	return best
}

// Preview resolves the applicable tier for a student's current points and
// renders the notification message.
func (s *ThresholdService) Preview(ctx context.Context, studentID string) (*MessagePreview, error) {
	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}

	points, err := s.penalties.PointsForStudent(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sum points")
	}

	thresholds, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list thresholds")
	}

	matched := Resolve(thresholds, points)
	template := fallbackTemplate
	vars := map[string]string{
		"name":   student.Name,
		"points": strconv.Itoa(points),
	}
	if matched != nil {
		template = matched.MessageTemplate
		vars["label"] = matched.Label
		vars["threshold"] = strconv.Itoa(matched.MinPoints)
	}

	return &MessagePreview{
		StudentID: studentID,
		Points:    points,
		Threshold: matched,
		Message:   RenderTemplate(template, vars),
	}, nil
}
