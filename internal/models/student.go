package models

import "time"

// Student represents a learner on the center roster. IDs are caller-assigned
// opaque strings so the roster can mirror an external registry.
type Student struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Grade        *string   `db:"grade" json:"grade"`
	StudentPhone *string   `db:"student_phone" json:"student_phone"`
	ParentPhone  *string   `db:"parent_phone" json:"parent_phone"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// StudentPoints joins a student with its cumulative penalty points. The sum
// is always recomputed from current penalty rows, never stored.
type StudentPoints struct {
	Student
	Points int `db:"points" json:"points"`
}
