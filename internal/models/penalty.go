package models

import "time"

// Penalty is an immutable infraction event. RuleTitle and Points are
// snapshots of the rule at recording time: editing or deleting the rule
// afterwards never rewrites history.
type Penalty struct {
	ID         string    `db:"id" json:"id"`
	StudentID  string    `db:"student_id" json:"student_id"`
	RuleID     string    `db:"rule_id" json:"rule_id"`
	RuleTitle  string    `db:"rule_title" json:"rule_title"`
	Points     int       `db:"points" json:"points"`
	OccurredOn string    `db:"occurred_on" json:"occurred_on"`
	Memo       *string   `db:"memo" json:"memo"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
