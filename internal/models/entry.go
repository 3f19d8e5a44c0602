package models

import (
	"time"

	"github.com/julianstephens/daylog/internal/constants"
)

// JournalEntry is a free-form note filed under a type. A day may hold many.
type JournalEntry struct {
	ID        string              `json:"id"`
	EntryDate string              `json:"entry_date"` // YYYY-MM-DD format
	Type      constants.EntryType `json:"type"`
	Text      string              `json:"text"`
	Tags      []string            `json:"tags"`
	CreatedAt time.Time           `json:"created_at"`
	DeletedAt *time.Time          `json:"deleted_at,omitempty"`
}

// IsKnownEntryType reports whether t is one of constants.EntryTypes.
func IsKnownEntryType(t constants.EntryType) bool {
	for _, known := range constants.EntryTypes {
		if t == known {
			return true
		}
	}
	return false
}
