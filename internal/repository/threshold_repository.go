package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/medroadmap/penalty-board-api/internal/models"
)

// ThresholdRepository manages notification tiers.
type ThresholdRepository struct {
	db *sqlx.DB
}

// NewThresholdRepository constructs a ThresholdRepository.
func NewThresholdRepository(db *sqlx.DB) *ThresholdRepository {
	return &ThresholdRepository{db: db}
}

// List returns thresholds ordered by sort order, then minimum points.
func (r *ThresholdRepository) List(ctx context.Context) ([]models.Threshold, error) {
	const query = `SELECT id, min_points, label, message_template, sort_order, created_at, updated_at
        FROM thresholds ORDER BY sort_order ASC, min_points ASC`
	thresholds := []models.Threshold{}
	if err := r.db.SelectContext(ctx, &thresholds, query); err != nil {
		return nil, fmt.Errorf("list thresholds: %w", err)
	}
	return thresholds, nil
}

// Upsert inserts or overwrites a threshold by id.
func (r *ThresholdRepository) Upsert(ctx context.Context, threshold *models.Threshold) error {
	now := time.Now().UTC()
	if threshold.CreatedAt.IsZero() {
		threshold.CreatedAt = now
	}
	threshold.UpdatedAt = now
	const query = `INSERT INTO thresholds (id, min_points, label, message_template, sort_order, created_at, updated_at)
        VALUES (:id, :min_points, :label, :message_template, :sort_order, :created_at, :updated_at)
        ON CONFLICT (id) DO UPDATE SET
            min_points = EXCLUDED.min_points,
            label = EXCLUDED.label,
            message_template = EXCLUDED.message_template,
            sort_order = EXCLUDED.sort_order,
            updated_at = EXCLUDED.updated_at`
	if _, err := r.db.NamedExecContext(ctx, query, threshold); err != nil {
		return fmt.Errorf("upsert threshold: %w", err)
	}
	return nil
}

// Delete removes a threshold by id; a no-op for unknown ids.
func (r *ThresholdRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM thresholds WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete threshold: %w", err)
	}
	return nil
}
