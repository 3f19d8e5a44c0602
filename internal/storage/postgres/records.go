package postgres

import (
	"database/sql"
	"errors"

	pq "github.com/lib/pq"

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

func scanRawRecord(row rowScanner) (models.DailyRecord, error) {
	var r models.DailyRecord
	var intentions pq.StringArray
	var morningMood string
	var eveningMood sql.NullString

	if err := row.Scan(&r.EntryDate, &intentions, &morningMood, &r.Reflection, &r.TopWin,
		&eveningMood, &r.EveningCompleted, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return models.DailyRecord{}, err
	}

	r.Intentions = []string(intentions)
	r.MorningMood = models.Mood(morningMood)
	if eveningMood.Valid {
		mood := models.Mood(eveningMood.String)
		r.EveningMood = &mood
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

// upsertRecord inserts r or, when its date exists, updates only setClause.
func (s *Store) upsertRecord(r models.DailyRecord, setClause string) error {
	var eveningMood interface{}
	if r.EveningMood != nil {
		eveningMood = string(*r.EveningMood)
	}

	_, err := s.db.Exec(`
		INSERT INTO daily_records (`+recordColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (entry_date) DO UPDATE SET `+setClause,
		r.EntryDate, pq.Array(models.CleanIntentions(r.Intentions)), string(r.MorningMood), r.Reflection, r.TopWin,
		eveningMood, r.EveningCompleted, r.CreatedAt, r.UpdatedAt)
	return err
}

// UpsertRecord writes the whole record for its date; the last write wins.
func (s *Store) UpsertRecord(r models.DailyRecord) error {
	return s.upsertRecord(r, `
			intentions = EXCLUDED.intentions,
			morning_mood = EXCLUDED.morning_mood,
			reflection = EXCLUDED.reflection,
			top_win = EXCLUDED.top_win,
			evening_mood = EXCLUDED.evening_mood,
			evening_completed = EXCLUDED.evening_completed,
			updated_at = EXCLUDED.updated_at`)
}

func (s *Store) UpsertMorning(r models.DailyRecord) error {
	return s.upsertRecord(r, `
			intentions = EXCLUDED.intentions,
			morning_mood = EXCLUDED.morning_mood,
			updated_at = EXCLUDED.updated_at`)
}

func (s *Store) UpsertEvening(r models.DailyRecord) error {
	return s.upsertRecord(r, `
			reflection = EXCLUDED.reflection,
			top_win = EXCLUDED.top_win,
			evening_mood = EXCLUDED.evening_mood,
			evening_completed = EXCLUDED.evening_completed,
			updated_at = EXCLUDED.updated_at`)
}

func (s *Store) GetRecord(date string) (models.DailyRecord, error) {
	row := s.db.QueryRow(`SELECT `+recordColumns+` FROM daily_records WHERE entry_date = $1`, date)
	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DailyRecord{}, models.ErrNotFound
	}
	return r, err
}

func (s *Store) GetRecords(startDay, endDay string) ([]models.DailyRecord, error) {
	return s.queryRecords(`SELECT `+recordColumns+` FROM daily_records
		WHERE entry_date >= $1 AND entry_date <= $2 ORDER BY entry_date`, startDay, endDay)
}

func (s *Store) GetRecentRecords(limit int) ([]models.DailyRecord, error) {
	return s.queryRecords(`SELECT `+recordColumns+` FROM daily_records
		ORDER BY entry_date DESC LIMIT $1`, limit)
}

func (s *Store) GetAllRecords() ([]models.DailyRecord, error) {
	return s.queryRecords(`SELECT ` + recordColumns + ` FROM daily_records ORDER BY entry_date`)
}

func (s *Store) GetRawRecords() ([]models.DailyRecord, error) {
	return s.queryRecordsWith(scanRawRecord, `SELECT `+recordColumns+` FROM daily_records ORDER BY entry_date`)
}
