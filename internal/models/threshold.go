package models

import "time"

// Threshold is a notification tier: students whose cumulative points reach
// MinPoints qualify for its label and message template.
type Threshold struct {
	ID              string    `db:"id" json:"id"`
	MinPoints       int       `db:"min_points" json:"min_points"`
	Label           string    `db:"label" json:"label"`
	MessageTemplate string    `db:"message_template" json:"message_template"`
	SortOrder       int       `db:"sort_order" json:"sort_order"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}
