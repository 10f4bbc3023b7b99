package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/medroadmap/penalty-board-api/internal/models"
	"github.com/medroadmap/penalty-board-api/pkg/config"
	appErrors "github.com/medroadmap/penalty-board-api/pkg/errors"
	"github.com/medroadmap/penalty-board-api/pkg/sms"
)

type notificationStudentReader interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
}

// NotificationService resolves recipients and dispatches messages through
// the external SMS transport.
type NotificationService struct {
	students  notificationStudentReader
	sender    sms.Sender
	cfg       config.SMSConfig
	validator *validator.Validate
	logger    *zap.Logger
}

// NewNotificationService constructs the service. A nil sender is allowed and
// reported as an unavailable transport at send time.
func NewNotificationService(students notificationStudentReader, sender sms.Sender, cfg config.SMSConfig, validate *validator.Validate, logger *zap.Logger) *NotificationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{students: students, sender: sender, cfg: cfg, validator: validate, logger: logger}
}

// SendRequest describes an SMS dispatch.
type SendRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	Target    string `json:"target" validate:"required,oneof=student parent both"`
	Message   string `json:"message" validate:"required"`
}

// SendResult aggregates the per-recipient outcomes of one dispatch.
type SendResult struct {
	Sent    int          `json:"sent"`
	Results []sms.Result `json:"results"`
}

// Send resolves the student's contact numbers per the target selector,
// normalizes and deduplicates them, and dispatches the message sequentially.
// The first transport failure aborts remaining sends; messages already sent
// are not recalled.
func (s *NotificationService) Send(ctx context.Context, req SendRequest) (*SendResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Validation(err, "invalid sms payload")
	}

	if s.sender == nil || !s.cfg.Configured() {
		return nil, appErrors.Clone(appErrors.ErrTransportUnavailable, "sms credentials are not configured")
	}
	from := sms.NormalizePhone(s.cfg.Sender)
	if from == "" {
		return nil, appErrors.Clone(appErrors.ErrTransportUnavailable, "sender phone number is not configured")
	}

	student, err := s.students.FindByID(ctx, req.StudentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}

	recipients := s.recipients(student, req.Target)
	if len(recipients) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNoRecipients, "student and parent phone numbers are both unusable")
	}

	results := make([]sms.Result, 0, len(recipients))
	for _, to := range recipients {
		result, err := s.sender.Send(ctx, to, from, req.Message)
		if err != nil {
			s.logger.Warn("sms dispatch failed",
				zap.String("student_id", req.StudentID),
				zap.Int("sent_before_failure", len(results)),
				zap.Error(err))
			failed := appErrors.Wrap(err, appErrors.ErrDispatchFailed.Code, appErrors.ErrDispatchFailed.Status, "sms dispatch failed")
			failed.Detail = map[string]interface{}{
				"to":      to,
				"error":   err.Error(),
				"results": results,
			}
			return nil, failed
		}
		results = append(results, result)
	}

	s.logger.Info("sms dispatched",
		zap.String("student_id", req.StudentID),
		zap.String("target", req.Target),
		zap.Int("sent", len(results)))
	return &SendResult{Sent: len(results), Results: results}, nil
}

// recipients builds the normalized, deduplicated destination list in
// first-seen order.
func (s *NotificationService) recipients(student *models.Student, target string) []string {
	candidates := make([]string, 0, 2)
	if target == "student" || target == "both" {
		if student.StudentPhone != nil {
			candidates = append(candidates, *student.StudentPhone)
		}
	}
	if target == "parent" || target == "both" {
		if student.ParentPhone != nil {
			candidates = append(candidates, *student.ParentPhone)
		}
	}

	seen := make(map[string]struct{}, len(candidates))
	recipients := make([]string, 0, len(candidates))
	for _, raw := range candidates {
		normalized := sms.NormalizePhone(raw)
		if normalized == "" {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		recipients = append(recipients, normalized)
	}
	return recipients
}
