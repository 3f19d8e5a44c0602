package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/daylog/internal/models"
)

const recordColumns = `entry_date, intentions, morning_mood, reflection, top_win,
	evening_mood, evening_completed, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row rowScanner) (models.DailyRecord, error) {
	r, err := scanRawRecord(row)
	if err != nil {
		return models.DailyRecord{}, err
	}
	r.Normalize()
	return r, nil
}

// scanRawRecord reads a row exactly as stored, without repairing moods or intentions.
func scanRawRecord(row rowScanner) (models.DailyRecord, error) {
	var r models.DailyRecord
	var intentions, morningMood, createdAt, updatedAt string
	var eveningMood sql.NullString

	if err := row.Scan(&r.EntryDate, &intentions, &morningMood, &r.Reflection, &r.TopWin,
		&eveningMood, &r.EveningCompleted, &createdAt, &updatedAt); err != nil {
		return models.DailyRecord{}, err
	}

	if err := json.Unmarshal([]byte(intentions), &r.Intentions); err != nil {
		return models.DailyRecord{}, fmt.Errorf("failed to decode intentions for %s: %w", r.EntryDate, err)
	}
	r.MorningMood = models.Mood(morningMood)
	if eveningMood.Valid {
		mood := models.Mood(eveningMood.String)
		r.EveningMood = &mood
	}

	var err error
	if r.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return models.DailyRecord{}, err
	}
	if r.UpdatedAt, err = parseTime("updated_at", updatedAt); err != nil {
		return models.DailyRecord{}, err
	}
	return r, nil
}

func (s *Store) queryRecords(query string, args ...interface{}) ([]models.DailyRecord, error) {
	return s.queryRecordsWith(scanRecord, query, args...)
}

func (s *Store) queryRecordsWith(scan func(rowScanner) (models.DailyRecord, error), query string, args ...interface{}) ([]models.DailyRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.DailyRecord{}
	for rows.Next() {
		r, err := scan(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func recordArgs(r models.DailyRecord) ([]interface{}, error) {
	intentions, err := json.Marshal(models.CleanIntentions(r.Intentions))
	if err != nil {
		return nil, fmt.Errorf("failed to encode intentions: %w", err)
	}

	var eveningMood interface{}
	if r.EveningMood != nil {
		eveningMood = string(*r.EveningMood)
	}
	return []interface{}{
		r.EntryDate, string(intentions), string(r.MorningMood), r.Reflection, r.TopWin,
		eveningMood, r.EveningCompleted, formatTime(r.CreatedAt), formatTime(r.UpdatedAt),
	}, nil
}

// upsertRecord inserts r or, when its date exists, updates only setClause.
func (s *Store) upsertRecord(r models.DailyRecord, setClause string) error {
	args, err := recordArgs(r)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO daily_records (`+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(entry_date) DO UPDATE SET `+setClause, args...)
	return err
}

// UpsertRecord writes the whole record for its date; the last write wins.
func (s *Store) UpsertRecord(r models.DailyRecord) error {
	return s.upsertRecord(r, `
			intentions = excluded.intentions,
			morning_mood = excluded.morning_mood,
			reflection = excluded.reflection,
			top_win = excluded.top_win,
			evening_mood = excluded.evening_mood,
			evening_completed = excluded.evening_completed,
			updated_at = excluded.updated_at`)
}

// UpsertMorning writes the morning columns of r. A stored evening is left alone.
func (s *Store) UpsertMorning(r models.DailyRecord) error {
	return s.upsertRecord(r, `
			intentions = excluded.intentions,
			morning_mood = excluded.morning_mood,
			updated_at = excluded.updated_at`)
}

// UpsertEvening writes the evening columns of r. Stored intentions and morning mood are left alone.
func (s *Store) UpsertEvening(r models.DailyRecord) error {
	return s.upsertRecord(r, `
			reflection = excluded.reflection,
			top_win = excluded.top_win,
			evening_mood = excluded.evening_mood,
			evening_completed = excluded.evening_completed,
			updated_at = excluded.updated_at`)
}

func (s *Store) GetRecord(date string) (models.DailyRecord, error) {
	row := s.db.QueryRow(`SELECT `+recordColumns+` FROM daily_records WHERE entry_date = ?`, date)
	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DailyRecord{}, models.ErrNotFound
	}
	return r, err
}

// GetRecords returns records with startDay <= date <= endDay, oldest first.
func (s *Store) GetRecords(startDay, endDay string) ([]models.DailyRecord, error) {
	return s.queryRecords(`SELECT `+recordColumns+` FROM daily_records
		WHERE entry_date >= ? AND entry_date <= ? ORDER BY entry_date`, startDay, endDay)
}

// GetRecentRecords returns up to limit records, newest first.
func (s *Store) GetRecentRecords(limit int) ([]models.DailyRecord, error) {
	return s.queryRecords(`SELECT `+recordColumns+` FROM daily_records
		ORDER BY entry_date DESC LIMIT ?`, limit)
}

func (s *Store) GetAllRecords() ([]models.DailyRecord, error) {
	return s.queryRecords(`SELECT ` + recordColumns + ` FROM daily_records ORDER BY entry_date`)
}

// GetRawRecords returns every record as stored, oldest first.
func (s *Store) GetRawRecords() ([]models.DailyRecord, error) {
	return s.queryRecordsWith(scanRawRecord, `SELECT `+recordColumns+` FROM daily_records ORDER BY entry_date`)
}
