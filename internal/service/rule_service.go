package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/medroadmap/penalty-board-api/internal/models"
	appErrors "github.com/medroadmap/penalty-board-api/pkg/errors"
)

type ruleRepository interface {
	List(ctx context.Context) ([]models.Rule, error)
	Upsert(ctx context.Context, rule *models.Rule) error
	Delete(ctx context.Context, id string) error
}

// RuleService manages the infraction catalog.
type RuleService struct {
	repo      ruleRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRuleService constructs the service.
func NewRuleService(repo ruleRepository, validate *validator.Validate, logger *zap.Logger) *RuleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RuleService{repo: repo, validator: validate, logger: logger}
}

// UpsertRuleRequest describes the rule upsert payload. An empty id requests
// a server-generated one. Points may be any integer.
type UpsertRuleRequest struct {
	ID        string `json:"id"`
	Title     string `json:"title" validate:"required"`
	Points    int    `json:"points"`
	IsActive  *int   `json:"is_active"`
	SortOrder int    `json:"sort_order"`
}

// List returns the catalog in display order.
func (s *RuleService) List(ctx context.Context) ([]models.Rule, error) {
	rules, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list rules")
	}
	return rules, nil
}

// Upsert inserts or overwrites a rule and returns its id. Previously
// recorded penalties keep their snapshots.
func (s *RuleService) Upsert(ctx context.Context, req UpsertRuleRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		return "", appErrors.Validation(err, "invalid rule payload")
	}
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	active := 1
	if req.IsActive != nil {
		active = *req.IsActive
	}
	rule := &models.Rule{
		ID:        req.ID,
		Title:     req.Title,
		Points:    req.Points,
		IsActive:  active,
		SortOrder: req.SortOrder,
	}
	if err := s.repo.Upsert(ctx, rule); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to upsert rule")
	}
	return rule.ID, nil
}

// Delete removes a rule from the catalog.
func (s *RuleService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete rule")
	}
	return nil
}
