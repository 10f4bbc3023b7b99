package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/medroadmap/penalty-board-api/internal/models"
)

// RuleRepository manages the infraction rule catalog.
type RuleRepository struct {
	db *sqlx.DB
}

// NewRuleRepository constructs a RuleRepository.
func NewRuleRepository(db *sqlx.DB) *RuleRepository {
	return &RuleRepository{db: db}
}

// List returns rules ordered by sort order, then case-insensitive title.
func (r *RuleRepository) List(ctx context.Context) ([]models.Rule, error) {
	const query = `SELECT id, title, points, is_active, sort_order, created_at, updated_at
        FROM rules ORDER BY sort_order ASC, LOWER(title) ASC`
	rules := []models.Rule{}
	if err := r.db.SelectContext(ctx, &rules, query); err != nil {
		return nil, fmt.Errorf("list rules: %w", err)
	}
	return rules, nil
}

// FindByID fetches a single rule.
func (r *RuleRepository) FindByID(ctx context.Context, id string) (*models.Rule, error) {
	const query = `SELECT id, title, points, is_active, sort_order, created_at, updated_at
        FROM rules WHERE id = $1`
	var rule models.Rule
	if err := r.db.GetContext(ctx, &rule, query, id); err != nil {
		return nil, err
	}
	return &rule, nil
}

// Upsert inserts or overwrites a rule by id. Existing penalty snapshots are
// untouched.
func (r *RuleRepository) Upsert(ctx context.Context, rule *models.Rule) error {
	now := time.Now().UTC()
	if rule.CreatedAt.IsZero() {
		rule.CreatedAt = now
	}
	rule.UpdatedAt = now
	const query = `INSERT INTO rules (id, title, points, is_active, sort_order, created_at, updated_at)
        VALUES (:id, :title, :points, :is_active, :sort_order, :created_at, :updated_at)
        ON CONFLICT (id) DO UPDATE SET
            title = EXCLUDED.title,
            points = EXCLUDED.points,
            is_active = EXCLUDED.is_active,
            sort_order = EXCLUDED.sort_order,
            updated_at = EXCLUDED.updated_at`
	if _, err := r.db.NamedExecContext(ctx, query, rule); err != nil {
		return fmt.Errorf("upsert rule: %w", err)
	}
	return nil
}

// Delete removes a rule by id; a no-op for unknown ids.
func (r *RuleRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM rules WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete rule: %w", err)
	}
	return nil
}
