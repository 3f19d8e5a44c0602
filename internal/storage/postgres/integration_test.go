package postgres

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/daylog/internal/constants"
	"github.com/julianstephens/daylog/internal/models"
)

// Set POSTGRES_TEST_URL to run, e.g.
// POSTGRES_TEST_URL="postgres://daylog_user@localhost:5432/daylog_test?sslmode=disable"
func TestStore_Integration(t *testing.T) {
	connStr := os.Getenv("POSTGRES_TEST_URL")
	if connStr == "" {
		t.Skip("POSTGRES_TEST_URL not set, skipping PostgreSQL integration test")
	}

	store := New(connStr)
	if err := store.Init(); err != nil {
		t.Fatalf("Failed to initialize store: %v", err)
	}
	defer store.Close()

	t.Run("Settings", func(t *testing.T) {
		settings, err := store.GetSettings()
		if err != nil {
			t.Fatalf("Failed to get settings: %v", err)
		}
		settings.TrendWindow = 10
		if err := store.SaveSettings(settings); err != nil {
			t.Fatalf("Failed to save settings: %v", err)
		}
		updated, err := store.GetSettings()
		if err != nil {
			t.Fatalf("Failed to get updated settings: %v", err)
		}
		if updated.TrendWindow != 10 {
			t.Errorf("Expected trend window 10, got %d", updated.TrendWindow)
		}
	})

	t.Run("Records", func(t *testing.T) {
		day := "1999-01-01"
		now := time.Now().UTC().Truncate(time.Microsecond)

		r := models.NewDailyRecord(day)
		r.ApplyMorning([]string{"one", "two"}, models.MoodGood, now)
		r.ApplyEvening("fine", "tests", models.MoodNeutral, now)
		if err := store.UpsertRecord(r); err != nil {
			t.Fatalf("UpsertRecord failed: %v", err)
		}

		got, err := store.GetRecord(day)
		if err != nil {
			t.Fatalf("GetRecord failed: %v", err)
		}
		if len(got.Intentions) != 2 || !got.EveningCompleted || *got.EveningMood != models.MoodNeutral {
			t.Errorf("unexpected record: %+v", got)
		}
	})

	t.Run("StepUpserts", func(t *testing.T) {
		day := "1999-01-02"
		now := time.Now().UTC().Truncate(time.Microsecond)
		stale := models.NewDailyRecord(day)

		e := stale
		e.ApplyEvening("fine", "tests", models.MoodGood, now)
		if err := store.UpsertEvening(e); err != nil {
			t.Fatalf("UpsertEvening failed: %v", err)
		}
		m := stale
		m.ApplyMorning([]string{"one"}, models.MoodLow, now)
		if err := store.UpsertMorning(m); err != nil {
			t.Fatalf("UpsertMorning failed: %v", err)
		}

		got, err := store.GetRecord(day)
		if err != nil {
			t.Fatalf("GetRecord failed: %v", err)
		}
		if !got.EveningCompleted || got.TopWin != "tests" || len(got.Intentions) != 1 || got.MorningMood != models.MoodLow {
			t.Errorf("unexpected record: %+v", got)
		}
	})

	t.Run("Decisions", func(t *testing.T) {
		id := uuid.NewString()
		d := models.Decision{ID: id, Date: "1999-01-01", Title: "Integration", Tags: []string{"a"}, CreatedAt: time.Now()}
		if err := store.AddDecision(d); err != nil {
			t.Fatalf("AddDecision failed: %v", err)
		}
		if err := store.DeleteDecision(id); err != nil {
			t.Fatalf("DeleteDecision failed: %v", err)
		}
		if err := store.RestoreDecision(id); err != nil {
			t.Fatalf("RestoreDecision failed: %v", err)
		}
		if err := store.RestoreDecision(id); !errors.Is(err, models.ErrNotFound) {
			t.Errorf("RestoreDecision on live decision = %v, want ErrNotFound", err)
		}
	})

	t.Run("Entries", func(t *testing.T) {
		e := models.JournalEntry{
			ID: uuid.NewString(), EntryDate: "1999-01-01", Type: constants.EntryTypeProject,
			Text: "integration", CreatedAt: time.Now(),
		}
		if err := store.AddEntry(e); err != nil {
			t.Fatalf("AddEntry failed: %v", err)
		}
		entries, err := store.GetEntries(5, constants.EntryTypeProject)
		if err != nil || len(entries) == 0 {
			t.Fatalf("GetEntries = %d, %v", len(entries), err)
		}
	})
}
