package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/medroadmap/penalty-board-api/internal/models"
	appErrors "github.com/medroadmap/penalty-board-api/pkg/errors"
)

type studentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	Upsert(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id string) error
}

// StudentService handles the roster.
type StudentService struct {
	repo      studentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the service.
func NewStudentService(repo studentRepository, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, validator: validate, logger: logger}
}

// UpsertStudentRequest describes the roster upsert payload. The id is
// caller-assigned so the roster can mirror an external registry.
type UpsertStudentRequest struct {
	ID           string  `json:"id" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	Grade        *string `json:"grade"`
	StudentPhone *string `json:"student_phone"`
	ParentPhone  *string `json:"parent_phone"`
}

// List returns the roster ordered by name.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, nil
}

// Upsert inserts or overwrites a student by id and returns the id.
func (s *StudentService) Upsert(ctx context.Context, req UpsertStudentRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Validation(err, "invalid student payload")
	}
	student := &models.Student{
		ID:           req.ID,
		Name:         req.Name,
		Grade:        req.Grade,
		StudentPhone: req.StudentPhone,
		ParentPhone:  req.ParentPhone,
	}
	if err := s.repo.Upsert(ctx, student); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to upsert student")
	}
	return student.ID, nil
}

// Delete removes a student; penalty and note rows cascade away with it.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete student")
	}
	return nil
}

// Spreadsheet header labels expected on the first row of a roster import.
const (
	importColID           = "ID"
	importColName         = "이름"
	importColGrade        = "학년"
	importColStudentPhone = "학생전화"
	importColParentPhone  = "보호자전화"
)

// Import reads an XLSX roster from the first sheet and upserts each row.
// Rows without an id or name are skipped. Re-importing the same file updates
// rows in place rather than duplicating them.
func (s *StudentService) Import(ctx context.Context, file io.Reader) (int, error) {
	wb, err := excelize.OpenReader(file)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "could not read spreadsheet")
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return 0, appErrors.Clone(appErrors.ErrValidation, "spreadsheet has no sheets")
	}
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "could not read sheet rows")
	}
	if len(rows) == 0 {
		return 0, nil
	}

	columns := map[string]int{}
	for i, header := range rows[0] {
		columns[strings.TrimSpace(header)] = i
	}
	for _, required := range []string{importColID, importColName} {
		if _, ok := columns[required]; !ok {
			return 0, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("missing required column %q", required))
		}
	}

	cell := func(row []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	imported := 0
	for _, row := range rows[1:] {
		id := cell(row, importColID)
		name := cell(row, importColName)
		if id == "" || name == "" {
			continue
		}
		student := &models.Student{
			ID:           id,
			Name:         name,
			Grade:        optional(cell(row, importColGrade)),
			StudentPhone: optional(cell(row, importColStudentPhone)),
			ParentPhone:  optional(cell(row, importColParentPhone)),
		}
		if err := s.repo.Upsert(ctx, student); err != nil {
			return imported, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to import student row")
		}
		imported++
	}

	s.logger.Info("roster imported", zap.Int("rows", imported))
	return imported, nil
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
