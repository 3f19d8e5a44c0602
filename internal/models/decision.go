package models

import "time"

// Decision is a structured note about a choice that was made.
type Decision struct {
	ID        string     `json:"id"`
	Date      string     `json:"decision_date"` // YYYY-MM-DD format
	Title     string     `json:"title"`
	Context   string     `json:"context"`
	Choice    string     `json:"choice"`
	Reasoning string     `json:"reasoning"`
	Outcome   string     `json:"outcome"`
	Tags      []string   `json:"tags"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}
