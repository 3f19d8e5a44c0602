package journal

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/julianstephens/daylog/internal/constants"
	"github.com/julianstephens/daylog/internal/models"
	"github.com/julianstephens/daylog/internal/storage"
	"github.com/julianstephens/daylog/internal/storage/sqlite"
)

func newSQLiteStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "daylog.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	settings := models.DefaultSettings()
	settings.Timezone = "UTC"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}
	return store
}

func TestSaveMorningKeepsStoredFields(t *testing.T) {
	tests := []struct {
		name           string
		intentions     []string
		mood           string
		wantIntentions []string
		wantMood       models.Mood
	}{
		{"empty mood keeps stored mood", []string{"write"}, "", []string{"write"}, models.MoodLow},
		{"nil intentions keep stored intentions", nil, "good", []string{"plan", "ship"}, models.MoodGood},
		{"empty slice clears intentions", []string{}, "good", []string{}, models.MoodGood},
		{"both omitted is a no-op", nil, "  ", []string{"plan", "ship"}, models.MoodLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := setupService(t)
			if _, err := svc.SaveMorning("2026-03-10", []string{"plan", "ship"}, "low"); err != nil {
				t.Fatal(err)
			}
			if _, err := svc.SaveEvening("2026-03-10", "long day", "shipped", "good"); err != nil {
				t.Fatal(err)
			}

			r, err := svc.SaveMorning("2026-03-10", tt.intentions, tt.mood)
			if err != nil {
				t.Fatalf("SaveMorning() error = %v", err)
			}
			if r.MorningMood != tt.wantMood {
				t.Errorf("MorningMood = %s, want %s", r.MorningMood, tt.wantMood)
			}
			if fmt.Sprint(r.Intentions) != fmt.Sprint(tt.wantIntentions) {
				t.Errorf("Intentions = %#v, want %#v", r.Intentions, tt.wantIntentions)
			}
			if !r.EveningCompleted || r.Reflection != "long day" {
				t.Errorf("evening step changed: %+v", r)
			}
		})
	}
}

func TestSaveDefaultsMoodOnNewDay(t *testing.T) {
	svc := setupService(t)

	r, err := svc.SaveMorning("2026-03-10", []string{"plan"}, "")
	if err != nil {
		t.Fatalf("SaveMorning() error = %v", err)
	}
	if r.MorningMood != models.MoodNeutral {
		t.Errorf("MorningMood = %s, want neutral", r.MorningMood)
	}

	r, err = svc.SaveEvening("2026-03-09", "quiet", "", "")
	if err != nil {
		t.Fatalf("SaveEvening() error = %v", err)
	}
	if r.EveningMood == nil || *r.EveningMood != models.MoodNeutral || !r.EveningCompleted {
		t.Errorf("evening = %+v", r)
	}

	if _, err := svc.SaveEvening("2026-03-08", "", "", "low"); err != nil {
		t.Fatal(err)
	}
	r, err = svc.SaveEvening("2026-03-08", "edited", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if r.EveningMood == nil || *r.EveningMood != models.MoodLow || r.Reflection != "edited" {
		t.Errorf("edited evening = %+v", r)
	}
}

func TestConcurrentMorningAndEveningSaves(t *testing.T) {
	backends := []struct {
		name  string
		store func(t *testing.T) storage.Provider
	}{
		{"sqlite", func(t *testing.T) storage.Provider { return newSQLiteStore(t) }},
		{"json", func(t *testing.T) storage.Provider {
			store := storage.NewJSONStore(filepath.Join(t.TempDir(), "journal.json"))
			if err := store.Init(); err != nil {
				t.Fatal(err)
			}
			settings := models.DefaultSettings()
			settings.Timezone = "UTC"
			if err := store.SaveSettings(settings); err != nil {
				t.Fatal(err)
			}
			return store
		}},
	}

	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			store := b.store(t)
			clock := func() time.Time { return fixedNow }
			// Two services stand in for the TUI and the API sharing one journal.
			morningSvc := New(store, clock)
			eveningSvc := New(store, clock)

			start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
			var days []string
			for i := 0; i < 20; i++ {
				days = append(days, start.AddDate(0, 0, i).Format(constants.DateFormat))
			}

			var wg sync.WaitGroup
			errs := make(chan error, 2*len(days))
			for _, day := range days {
				wg.Add(2)
				go func(day string) {
					defer wg.Done()
					if _, err := morningSvc.SaveMorning(day, []string{"focus"}, "low"); err != nil {
						errs <- err
					}
				}(day)
				go func(day string) {
					defer wg.Done()
					if _, err := eveningSvc.SaveEvening(day, "done", "win", "good"); err != nil {
						errs <- err
					}
				}(day)
			}
			wg.Wait()
			close(errs)
			for err := range errs {
				t.Fatalf("save error = %v", err)
			}

			for _, day := range days {
				r, err := store.GetRecord(day)
				if err != nil {
					t.Fatalf("GetRecord(%s) error = %v", day, err)
				}
				if !r.EveningCompleted || r.EveningMood == nil || *r.EveningMood != models.MoodGood || r.TopWin != "win" {
					t.Errorf("%s lost its evening: %+v", day, r)
				}
				if r.MorningMood != models.MoodLow || len(r.Intentions) != 1 {
					t.Errorf("%s lost its morning: %+v", day, r)
				}
			}
		})
	}
}

func TestListsDefaultToListLimitSetting(t *testing.T) {
	svc := setupService(t)
	settings, _ := svc.Settings()
	settings.ListLimit = constants.MinListLimit
	if err := svc.Store().SaveSettings(settings); err != nil {
		t.Fatal(err)
	}

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		day := start.AddDate(0, 0, i).Format(constants.DateFormat)
		if _, err := svc.SaveMorning(day, nil, "neutral"); err != nil {
			t.Fatal(err)
		}
		if _, err := svc.AddDecision(DecisionInput{Date: day, Title: "d" + day}); err != nil {
			t.Fatal(err)
		}
		if _, err := svc.AddEntry(EntryInput{Date: day, Text: "e" + day}); err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero uses setting", 0, constants.MinListLimit},
		{"explicit limit wins", 10, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := svc.History(tt.limit)
			if err != nil || len(records) != tt.want {
				t.Errorf("History(%d) = %d, %v; want %d", tt.limit, len(records), err, tt.want)
			}
			decisions, err := svc.Decisions(tt.limit, false)
			if err != nil || len(decisions) != tt.want {
				t.Errorf("Decisions(%d) = %d, %v; want %d", tt.limit, len(decisions), err, tt.want)
			}
			entries, err := svc.Entries(tt.limit, "")
			if err != nil || len(entries) != tt.want {
				t.Errorf("Entries(%d) = %d, %v; want %d", tt.limit, len(entries), err, tt.want)
			}
		})
	}
}

func TestCheckReportsRowsAsStored(t *testing.T) {
	store := newSQLiteStore(t)
	svc := New(store, func() time.Time { return fixedNow })

	if _, err := svc.SaveEvening("2026-03-01", "fine", "", "good"); err != nil {
		t.Fatal(err)
	}
	res, err := svc.Check()
	if err != nil || res.HasConflicts() {
		t.Fatalf("Check() on clean journal = %+v, %v", res, err)
	}

	db := store.GetDB()
	for _, stmt := range []string{
		`INSERT INTO daily_records (entry_date, morning_mood, created_at, updated_at)
			VALUES ('2026-03-02', 'ecstatic', '2026-03-02T08:00:00Z', '2026-03-02T08:00:00Z')`,
		`INSERT INTO daily_records (entry_date, evening_completed, created_at, updated_at)
			VALUES ('2026-03-03', 1, '2026-03-03T08:00:00Z', '2026-03-03T08:00:00Z')`,
		`INSERT INTO daily_records (entry_date, intentions, created_at, updated_at)
			VALUES ('2026-03-04', '["a","b","c","d"]', '2026-03-04T08:00:00Z', '2026-03-04T08:00:00Z')`,
	} {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("insert error = %v", err)
		}
	}

	res, err = svc.Check()
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	for _, want := range []constants.ConflictType{
		constants.ConflictUnknownMood,
		constants.ConflictMissingEveningMood,
		constants.ConflictTooManyIntentions,
	} {
		if !res.Has(want) {
			t.Errorf("Check() missing %s: %+v", want, res.Conflicts)
		}
	}

	// Reads still see the repaired values.
	r, err := svc.store.GetRecord("2026-03-02")
	if err != nil || r.MorningMood != models.MoodNeutral {
		t.Errorf("GetRecord() = %+v, %v", r, err)
	}
}
