package storage

import (
	"github.com/julianstephens/daylog/internal/constants"
	"github.com/julianstephens/daylog/internal/models"
)

// Provider is implemented by every journal backend. Lookups of missing rows
// return models.ErrNotFound.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Daily records, keyed by YYYY-MM-DD
	UpsertRecord(models.DailyRecord) error
	// UpsertMorning inserts the record or updates only its intentions,
	// morning mood and updated_at.
	UpsertMorning(models.DailyRecord) error
	// UpsertEvening inserts the record or updates only its reflection,
	// top win, evening mood, completion flag and updated_at.
	UpsertEvening(models.DailyRecord) error
	GetRecord(date string) (models.DailyRecord, error)
	// GetRecords returns records in the inclusive date range, oldest first.
	GetRecords(startDay, endDay string) ([]models.DailyRecord, error)
	// GetRecentRecords returns up to limit records, newest first.
	GetRecentRecords(limit int) ([]models.DailyRecord, error)
	GetAllRecords() ([]models.DailyRecord, error)

	// Decisions
	AddDecision(models.Decision) error
	GetDecision(id string) (models.Decision, error)
	GetDecisions(limit int, includeDeleted bool) ([]models.Decision, error)
	DeleteDecision(id string) error
	RestoreDecision(id string) error

	// Journal entries. An empty entry type matches every type.
	AddEntry(models.JournalEntry) error
	GetEntries(limit int, entryType constants.EntryType) ([]models.JournalEntry, error)
	DeleteEntry(id string) error

	// Bulk Retrieval for Migration, soft-deleted rows included
	GetAllDecisions() ([]models.Decision, error)
	GetAllEntries() ([]models.JournalEntry, error)

	// Utils
	GetConfigPath() string
}

// SchemaVersioner is implemented by backends that track schema migrations.
type SchemaVersioner interface {
	SchemaVersion() (current, latest int, err error)
}

// RawRecordLister is implemented by backends that can return records exactly
// as stored, before moods and intentions are normalized.
type RawRecordLister interface {
	GetRawRecords() ([]models.DailyRecord, error)
}
