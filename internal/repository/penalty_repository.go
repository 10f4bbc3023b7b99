package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/medroadmap/penalty-board-api/internal/models"
)

// PenaltyRepository manages penalty events and the cumulative aggregate.
type PenaltyRepository struct {
	db *sqlx.DB
}

// NewPenaltyRepository constructs a PenaltyRepository.
func NewPenaltyRepository(db *sqlx.DB) *PenaltyRepository {
	return &PenaltyRepository{db: db}
}

// ListByStudent returns the student's penalties whose occurred_on falls in
// the inclusive [from, to] range, newest first.
func (r *PenaltyRepository) ListByStudent(ctx context.Context, studentID, from, to string) ([]models.Penalty, error) {
	const query = `SELECT id, student_id, rule_id, rule_title, points, occurred_on, memo, created_at
        FROM penalties
        WHERE student_id = $1 AND occurred_on BETWEEN $2 AND $3
        ORDER BY occurred_on DESC, created_at DESC`
	penalties := []models.Penalty{}
	if err := r.db.SelectContext(ctx, &penalties, query, studentID, from, to); err != nil {
		return nil, fmt.Errorf("list penalties: %w", err)
	}
	return penalties, nil
}

// Create inserts a new penalty event. Penalty rows are never updated after
// insertion.
func (r *PenaltyRepository) Create(ctx context.Context, penalty *models.Penalty) error {
	if penalty.CreatedAt.IsZero() {
		penalty.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO penalties (id, student_id, rule_id, rule_title, points, occurred_on, memo, created_at)
        VALUES (:id, :student_id, :rule_id, :rule_title, :points, :occurred_on, :memo, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, penalty); err != nil {
		return fmt.Errorf("create penalty: %w", err)
	}
	return nil
}

// Delete removes a penalty by id; a no-op for unknown ids.
func (r *PenaltyRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM penalties WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete penalty: %w", err)
	}
	return nil
}

// DeleteRange removes the student's penalties in the inclusive [from, to]
// range and returns the number of rows deleted.
func (r *PenaltyRepository) DeleteRange(ctx context.Context, studentID, from, to string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM penalties WHERE student_id = $1 AND occurred_on BETWEEN $2 AND $3",
		studentID, from, to)
	if err != nil {
		return 0, fmt.Errorf("delete penalty range: %w", err)
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count deleted penalties: %w", err)
	}
	return deleted, nil
}

// CumulativeByStudent returns every student joined with the sum of its
// penalty points, ordered case-insensitively by name. The aggregate is
// recomputed on each call.
func (r *PenaltyRepository) CumulativeByStudent(ctx context.Context) ([]models.StudentPoints, error) {
	const query = `SELECT s.id, s.name, s.grade, s.student_phone, s.parent_phone, s.created_at, s.updated_at,
            COALESCE(SUM(p.points), 0) AS points
        FROM students s
        LEFT JOIN penalties p ON p.student_id = s.id
        GROUP BY s.id
        ORDER BY LOWER(s.name) ASC`
	rows := []models.StudentPoints{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("cumulative summary: %w", err)
	}
	return rows, nil
}

// PointsForStudent returns one student's cumulative points.
func (r *PenaltyRepository) PointsForStudent(ctx context.Context, studentID string) (int, error) {
	var points int
	const query = "SELECT COALESCE(SUM(points), 0) FROM penalties WHERE student_id = $1"
	if err := r.db.GetContext(ctx, &points, query, studentID); err != nil {
		return 0, fmt.Errorf("student points: %w", err)
	}
	return points, nil
}
