package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/medroadmap/penalty-board-api/internal/models"
)

// NoteRepository manages dated free-text annotations.
type NoteRepository struct {
	db *sqlx.DB
}

// NewNoteRepository constructs a NoteRepository.
func NewNoteRepository(db *sqlx.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// ListByStudent returns a student's notes, newest first.
func (r *NoteRepository) ListByStudent(ctx context.Context, studentID string) ([]models.Note, error) {
	const query = `SELECT id, student_id, noted_on, content, created_at, updated_at
        FROM notes WHERE student_id = $1
        ORDER BY noted_on DESC, created_at DESC`
	notes := []models.Note{}
	if err := r.db.SelectContext(ctx, &notes, query, studentID); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// Upsert inserts a note or edits it in place when the id already exists.
func (r *NoteRepository) Upsert(ctx context.Context, note *models.Note) error {
	now := time.Now().UTC()
	if note.CreatedAt.IsZero() {
		note.CreatedAt = now
	}
	note.UpdatedAt = now
	const query = `INSERT INTO notes (id, student_id, noted_on, content, created_at, updated_at)
        VALUES (:id, :student_id, :noted_on, :content, :created_at, :updated_at)
        ON CONFLICT (id) DO UPDATE SET
            noted_on = EXCLUDED.noted_on,
            content = EXCLUDED.content,
            updated_at = EXCLUDED.updated_at`
	if _, err := r.db.NamedExecContext(ctx, query, note); err != nil {
		return fmt.Errorf("upsert note: %w", err)
	}
	return nil
}

// Delete removes a note by id; a no-op for unknown ids.
func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM notes WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}
