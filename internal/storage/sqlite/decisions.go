package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/daylog/internal/models"
)

const decisionColumns = `id, decision_date, title, context, choice, reasoning, outcome, tags, created_at, deleted_at`

func scanDecision(row rowScanner) (models.Decision, error) {
	var d models.Decision
	var tags, createdAt string
	var deletedAt sql.NullString

	if err := row.Scan(&d.ID, &d.Date, &d.Title, &d.Context, &d.Choice, &d.Reasoning,
		&d.Outcome, &tags, &createdAt, &deletedAt); err != nil {
		return models.Decision{}, err
	}
	if err := json.Unmarshal([]byte(tags), &d.Tags); err != nil {
		return models.Decision{}, fmt.Errorf("failed to decode tags for decision %s: %w", d.ID, err)
	}

	var err error
	if d.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return models.Decision{}, err
	}
	if d.DeletedAt, err = parseNullTime("deleted_at", deletedAt); err != nil {
		return models.Decision{}, err
	}
	return d, nil
}

func (s *Store) AddDecision(d models.Decision) error {
	tags, err := json.Marshal(nonNilTags(d.Tags))
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO decisions (`+decisionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			decision_date = excluded.decision_date,
			title = excluded.title,
			context = excluded.context,
			choice = excluded.choice,
			reasoning = excluded.reasoning,
			outcome = excluded.outcome,
			tags = excluded.tags,
			deleted_at = excluded.deleted_at`,
		d.ID, d.Date, d.Title, d.Context, d.Choice, d.Reasoning, d.Outcome,
		string(tags), formatTime(d.CreatedAt), nullTime(d.DeletedAt))
	return err
}

func (s *Store) GetDecision(id string) (models.Decision, error) {
	row := s.db.QueryRow(`SELECT `+decisionColumns+` FROM decisions WHERE id = ?`, id)
	d, err := scanDecision(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Decision{}, models.ErrNotFound
	}
	return d, err
}

// GetDecisions returns up to limit decisions, newest first. A limit <= 0 returns all.
func (s *Store) GetDecisions(limit int, includeDeleted bool) ([]models.Decision, error) {
	query := `SELECT ` + decisionColumns + ` FROM decisions WHERE 1=1`
	if !includeDeleted {
		query += " AND deleted_at IS NULL"
	}
	query += " ORDER BY decision_date DESC, created_at DESC"

	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	decisions := []models.Decision{}
	for rows.Next() {
		d, err := scanDecision(rows)
		if err != nil {
			return nil, err
		}
		decisions = append(decisions, d)
	}
	return decisions, rows.Err()
}

// GetAllDecisions returns every decision including soft-deleted ones.
func (s *Store) GetAllDecisions() ([]models.Decision, error) {
	return s.GetDecisions(0, true)
}

func (s *Store) DeleteDecision(id string) error {
	return s.execAffecting(`UPDATE decisions SET deleted_at = ? WHERE id = ? AND deleted_at IS NULL`,
		formatTime(time.Now()), id)
}

func (s *Store) RestoreDecision(id string) error {
	return s.execAffecting(`UPDATE decisions SET deleted_at = NULL WHERE id = ? AND deleted_at IS NOT NULL`, id)
}

// execAffecting runs an update and maps "no rows changed" to models.ErrNotFound.
func (s *Store) execAffecting(query string, args ...interface{}) error {
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return models.ErrNotFound
	}
	return nil
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
