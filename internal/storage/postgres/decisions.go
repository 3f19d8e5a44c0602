package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	pq "github.com/lib/pq"

	"github.com/julianstephens/daylog/internal/models"
)

const decisionColumns = `id, decision_date, title, context, choice, reasoning, outcome, tags, created_at, deleted_at`

func scanDecision(row rowScanner) (models.Decision, error) {
	var d models.Decision
	var tags pq.StringArray
	var deletedAt sql.NullTime

	if err := row.Scan(&d.ID, &d.Date, &d.Title, &d.Context, &d.Choice, &d.Reasoning,
		&d.Outcome, &tags, &d.CreatedAt, &deletedAt); err != nil {
		return models.Decision{}, err
	}
	d.Tags = nonNil(tags)
	if deletedAt.Valid {
		t := deletedAt.Time
		d.DeletedAt = &t
	}
	return d, nil
}

func (s *Store) AddDecision(d models.Decision) error {
	_, err := s.db.Exec(`
		INSERT INTO decisions (`+decisionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			decision_date = EXCLUDED.decision_date,
			title = EXCLUDED.title,
			context = EXCLUDED.context,
			choice = EXCLUDED.choice,
			reasoning = EXCLUDED.reasoning,
			outcome = EXCLUDED.outcome,
			tags = EXCLUDED.tags,
			deleted_at = EXCLUDED.deleted_at`,
		d.ID, d.Date, d.Title, d.Context, d.Choice, d.Reasoning, d.Outcome,
		pq.Array(nonNil(d.Tags)), d.CreatedAt, d.DeletedAt)
	return err
}

func (s *Store) GetDecision(id string) (models.Decision, error) {
	row := s.db.QueryRow(`SELECT `+decisionColumns+` FROM decisions WHERE id = $1`, id)
	d, err := scanDecision(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Decision{}, models.ErrNotFound
	}
	return d, err
}

func (s *Store) GetDecisions(limit int, includeDeleted bool) ([]models.Decision, error) {
	query := `SELECT ` + decisionColumns + ` FROM decisions WHERE 1=1`
	if !includeDeleted {
		query += " AND deleted_at IS NULL"
	}
	query += " ORDER BY decision_date DESC, created_at DESC"

	var args []interface{}
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", len(args)+1)
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

func (s *Store) GetAllDecisions() ([]models.Decision, error) {
	return s.GetDecisions(0, true)
}

func (s *Store) DeleteDecision(id string) error {
	return s.execAffecting(`UPDATE decisions SET deleted_at = $1 WHERE id = $2 AND deleted_at IS NULL`,
		time.Now(), id)
}

func (s *Store) RestoreDecision(id string) error {
	return s.execAffecting(`UPDATE decisions SET deleted_at = NULL WHERE id = $1 AND deleted_at IS NOT NULL`, id)
}
