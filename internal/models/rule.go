package models

import "time"

// Rule is a catalog entry describing one infraction type and its point value.
// Point values may be any integer, including non-positive ones.
type Rule struct {
	ID        string    `db:"id" json:"id"`
	Title     string    `db:"title" json:"title"`
	Points    int       `db:"points" json:"points"`
	IsActive  int       `db:"is_active" json:"is_active"`
	SortOrder int       `db:"sort_order" json:"sort_order"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
