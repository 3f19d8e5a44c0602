package postgres

import (
	"database/sql"
	"fmt"
	"time"

	pq "github.com/lib/pq"

	"github.com/julianstephens/daylog/internal/constants"
	"github.com/julianstephens/daylog/internal/models"
)

const entryColumns = `id, entry_date, entry_type, body, tags, created_at, deleted_at`

func scanEntry(row rowScanner) (models.JournalEntry, error) {
	var e models.JournalEntry
	var entryType string
	var tags pq.StringArray
	var deletedAt sql.NullTime

	if err := row.Scan(&e.ID, &e.EntryDate, &entryType, &e.Text, &tags, &e.CreatedAt, &deletedAt); err != nil {
		return models.JournalEntry{}, err
	}
	e.Type = constants.EntryType(entryType)
	e.Tags = nonNil(tags)
	if deletedAt.Valid {
		t := deletedAt.Time
		e.DeletedAt = &t
	}
	return e, nil
}

func (s *Store) AddEntry(e models.JournalEntry) error {
	_, err := s.db.Exec(`
		INSERT INTO journal_entries (`+entryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			entry_date = EXCLUDED.entry_date,
			entry_type = EXCLUDED.entry_type,
			body = EXCLUDED.body,
			tags = EXCLUDED.tags,
			deleted_at = EXCLUDED.deleted_at`,
		e.ID, e.EntryDate, string(e.Type), e.Text, pq.Array(nonNil(e.Tags)), e.CreatedAt, e.DeletedAt)
	return err
}

func (s *Store) GetEntries(limit int, entryType constants.EntryType) ([]models.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE deleted_at IS NULL`
	var args []interface{}
	if entryType != "" {
		args = append(args, string(entryType))
		query += fmt.Sprintf(" AND entry_type = $%d", len(args))
	}
	query += " ORDER BY entry_date DESC, created_at DESC"
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	return s.queryEntries(query, args...)
}

func (s *Store) GetAllEntries() ([]models.JournalEntry, error) {
	return s.queryEntries(`SELECT ` + entryColumns + ` FROM journal_entries ORDER BY entry_date, created_at`)
}

func (s *Store) DeleteEntry(id string) error {
	return s.execAffecting(`UPDATE journal_entries SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`,
		time.Now(), id)
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
