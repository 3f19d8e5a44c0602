package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/julianstephens/daylog/internal/constants"
	"github.com/julianstephens/daylog/internal/models"
)

const entryColumns = `id, entry_date, entry_type, body, tags, created_at, deleted_at`

func scanEntry(row rowScanner) (models.JournalEntry, error) {
	var e models.JournalEntry
	var entryType, tags, createdAt string
	var deletedAt sql.NullString

	if err := row.Scan(&e.ID, &e.EntryDate, &entryType, &e.Text, &tags, &createdAt, &deletedAt); err != nil {
		return models.JournalEntry{}, err
	}
	e.Type = constants.EntryType(entryType)
	if err := json.Unmarshal([]byte(tags), &e.Tags); err != nil {
		return models.JournalEntry{}, fmt.Errorf("failed to decode tags for entry %s: %w", e.ID, err)
	}

	var err error
	if e.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return models.JournalEntry{}, err
	}
	if e.DeletedAt, err = parseNullTime("deleted_at", deletedAt); err != nil {
		return models.JournalEntry{}, err
	}
	return e, nil
}

func (s *Store) AddEntry(e models.JournalEntry) error {
	tags, err := json.Marshal(nonNilTags(e.Tags))
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO journal_entries (`+entryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			entry_date = excluded.entry_date,
			entry_type = excluded.entry_type,
			body = excluded.body,
			tags = excluded.tags,
			deleted_at = excluded.deleted_at`,
		e.ID, e.EntryDate, string(e.Type), e.Text, string(tags), formatTime(e.CreatedAt), nullTime(e.DeletedAt))
	return err
}

// GetEntries returns up to limit live entries, newest first, optionally of a
// single type. An empty entryType matches every type.
func (s *Store) GetEntries(limit int, entryType constants.EntryType) ([]models.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE deleted_at IS NULL`
	var args []interface{}
	if entryType != "" {
		query += " AND entry_type = ?"
		args = append(args, string(entryType))
	}
	query += " ORDER BY entry_date DESC, created_at DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	return s.queryEntries(query, args...)
}

// GetAllEntries returns every entry including soft-deleted ones.
func (s *Store) GetAllEntries() ([]models.JournalEntry, error) {
	exists, err := s.tableExists("journal_entries")
	if err != nil || !exists {
		return []models.JournalEntry{}, nil
	}
	return s.queryEntries(`SELECT ` + entryColumns + ` FROM journal_entries ORDER BY entry_date, created_at`)
}

func (s *Store) DeleteEntry(id string) error {
	return s.execAffecting(`UPDATE journal_entries SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`,
		formatTime(time.Now()), id)
}

func (s *Store) queryEntries(query string, args ...interface{}) ([]models.JournalEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.JournalEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
