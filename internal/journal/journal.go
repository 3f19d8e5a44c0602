// Package journal orchestrates the daily flow on top of a storage.Provider.
// The CLI, the TUI and the HTTP API all go through a Service.
package journal

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/daylog/internal/constants"
	"github.com/julianstephens/daylog/internal/insights"
	"github.com/julianstephens/daylog/internal/logger"
	"github.com/julianstephens/daylog/internal/models"
	"github.com/julianstephens/daylog/internal/storage"
	"github.com/julianstephens/daylog/internal/utils"
	"github.com/julianstephens/daylog/internal/validation"
)

// Service holds the store and a clock. saveMu serializes the daily steps
// of one process; the step-scoped upserts keep separate processes apart.
type Service struct {
	store     storage.Provider
	now       func() time.Time
	validator *validation.Validator
	saveMu    sync.Mutex
}

// New creates a Service. A nil clock uses time.Now.
func New(store storage.Provider, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, now: now, validator: validation.New()}
}

// Store exposes the underlying provider for maintenance commands.
func (s *Service) Store() storage.Provider {
	return s.store
}

// Settings returns the persisted settings with defaults applied.
func (s *Service) Settings() (models.Settings, error) {
	settings, err := s.store.GetSettings()
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	models.ApplyDefaultSettings(&settings)
	return settings, nil
}

// Now returns the current instant in the configured timezone.
func (s *Service) Now() (time.Time, error) {
	settings, err := s.Settings()
	if err != nil {
		return time.Time{}, err
	}
	return utils.InTimezone(s.now(), settings.Timezone)
}

// Today returns today's date string in the configured timezone.
func (s *Service) Today() (string, error) {
	now, err := s.Now()
	if err != nil {
		return "", err
	}
	return now.Format(constants.DateFormat), nil
}

// ResolveDay returns day when set, otherwise today.
func (s *Service) ResolveDay(day string) (string, error) {
	if day != "" {
		return day, nil
	}
	return s.Today()
}

// Record returns the stored record for day, or a fresh default record with found=false.
func (s *Service) Record(day string) (models.DailyRecord, bool, error) {
	if res := s.validator.ValidateDate(day); res.HasConflicts() {
		return models.DailyRecord{}, false, res.Err()
	}
	r, err := s.store.GetRecord(day)
	if errors.Is(err, models.ErrNotFound) {
		return models.NewDailyRecord(day), false, nil
	}
	if err != nil {
		return models.DailyRecord{}, false, fmt.Errorf("failed to load record %s: %w", day, err)
	}
	return r, true, nil
}

// SaveMorning validates and writes the morning step of day. An empty mood
// keeps the stored morning mood (Neutral for a new day) and nil intentions
// keep the stored intentions. The evening step is never touched.
func (s *Service) SaveMorning(day string, intentions []string, mood string) (models.DailyRecord, error) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	r, _, err := s.Record(day)
	if err != nil {
		return models.DailyRecord{}, err
	}
	if strings.TrimSpace(mood) == "" {
		mood = string(r.MorningMood)
	}
	if intentions == nil {
		intentions = r.Intentions
	}
	if res := s.validator.ValidateMorning(day, intentions, mood); res.HasConflicts() {
		return models.DailyRecord{}, res.Err()
	}
	parsed, _ := models.ParseMood(mood)

	r.ApplyMorning(intentions, parsed, s.now())
	if err := s.store.UpsertMorning(r); err != nil {
		return models.DailyRecord{}, fmt.Errorf("failed to save morning for %s: %w", day, err)
	}
	logger.Info("Saved morning", "date", day, "mood", parsed, "intentions", len(r.Intentions))
	return s.reload(r)
}

// SaveEvening validates and writes the evening step of day, marking it complete.
// An empty mood keeps the stored evening mood, or Neutral when there is none.
func (s *Service) SaveEvening(day, reflection, topWin, mood string) (models.DailyRecord, error) {
	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	r, _, err := s.Record(day)
	if err != nil {
		return models.DailyRecord{}, err
	}
	if strings.TrimSpace(mood) == "" {
		mood = string(models.MoodNeutral)
		if r.EveningMood != nil {
			mood = string(*r.EveningMood)
		}
	}
	if res := s.validator.ValidateEvening(day, mood); res.HasConflicts() {
		return models.DailyRecord{}, res.Err()
	}
	parsed, _ := models.ParseMood(mood)

	r.ApplyEvening(reflection, topWin, parsed, s.now())
	if err := s.store.UpsertEvening(r); err != nil {
		return models.DailyRecord{}, fmt.Errorf("failed to save evening for %s: %w", day, err)
	}
	logger.Info("Saved evening", "date", day, "mood", parsed)
	return s.reload(r)
}

// reload returns the stored version of r, which may carry another writer's step.
func (s *Service) reload(r models.DailyRecord) (models.DailyRecord, error) {
	stored, err := s.store.GetRecord(r.EntryDate)
	if err != nil {
		return models.DailyRecord{}, fmt.Errorf("failed to load record %s: %w", r.EntryDate, err)
	}
	return stored, nil
}

// listLimit resolves a zero or negative limit to the list_limit setting and
// clamps the result into the supported range.
func (s *Service) listLimit(limit int) (int, error) {
	if limit <= 0 {
		settings, err := s.Settings()
		if err != nil {
			return 0, err
		}
		limit = settings.ListLimit
	}
	return constants.ClampListLimit(limit), nil
}

// History returns the most recent records, newest first. Zero limit means list_limit.
func (s *Service) History(limit int) ([]models.DailyRecord, error) {
	limit, err := s.listLimit(limit)
	if err != nil {
		return nil, err
	}
	records, err := s.store.GetRecentRecords(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return records, nil
}

// Dashboard summarizes every record as of today in the configured timezone.
func (s *Service) Dashboard() (insights.Summary, error) {
	return s.DashboardWindows(0, 0)
}

// DashboardWindows is Dashboard with explicit windows. Zero falls back to the settings.
func (s *Service) DashboardWindows(completionWindow, trendWindow int) (insights.Summary, error) {
	now, err := s.Now()
	if err != nil {
		return insights.Summary{}, err
	}
	return s.summarize(now, completionWindow, trendWindow)
}

// DashboardAt summarizes every record as of the calendar date of today.
func (s *Service) DashboardAt(today time.Time) (insights.Summary, error) {
	return s.summarize(today, 0, 0)
}

func (s *Service) summarize(today time.Time, completionWindow, trendWindow int) (insights.Summary, error) {
	settings, err := s.Settings()
	if err != nil {
		return insights.Summary{}, err
	}
	if completionWindow == 0 {
		completionWindow = settings.CompletionWindow
	}
	if trendWindow == 0 {
		trendWindow = settings.TrendWindow
	}
	records, err := s.store.GetAllRecords()
	if err != nil {
		return insights.Summary{}, fmt.Errorf("failed to load records: %w", err)
	}
	return insights.Summarize(records, today, completionWindow, trendWindow), nil
}

// DecisionInput carries the user-editable fields of a decision.
type DecisionInput struct {
	Date      string
	Title     string
	Context   string
	Choice    string
	Reasoning string
	Outcome   string
	Tags      string // comma separated
}

// AddDecision validates and stores a new decision. An empty date means today.
func (s *Service) AddDecision(in DecisionInput) (models.Decision, error) {
	day, err := s.ResolveDay(in.Date)
	if err != nil {
		return models.Decision{}, err
	}

	d := models.Decision{
		ID:        uuid.NewString(),
		Date:      day,
		Title:     strings.TrimSpace(in.Title),
		Context:   strings.TrimSpace(in.Context),
		Choice:    strings.TrimSpace(in.Choice),
		Reasoning: strings.TrimSpace(in.Reasoning),
		Outcome:   strings.TrimSpace(in.Outcome),
		Tags:      utils.ParseTags(in.Tags),
		CreatedAt: s.now(),
	}
	if res := s.validator.ValidateDecision(d); res.HasConflicts() {
		return models.Decision{}, res.Err()
	}
	if err := s.store.AddDecision(d); err != nil {
		return models.Decision{}, fmt.Errorf("failed to save decision: %w", err)
	}
	logger.Info("Saved decision", "id", d.ID, "date", d.Date)
	return d, nil
}

// Decision returns one decision by ID, deleted or not.
func (s *Service) Decision(id string) (models.Decision, error) {
	return s.store.GetDecision(id)
}

// Decisions lists live decisions, newest first. Zero limit means list_limit.
func (s *Service) Decisions(limit int, includeDeleted bool) ([]models.Decision, error) {
	limit, err := s.listLimit(limit)
	if err != nil {
		return nil, err
	}
	return s.store.GetDecisions(limit, includeDeleted)
}

// DeleteDecision soft-deletes a decision.
func (s *Service) DeleteDecision(id string) error {
	return s.store.DeleteDecision(id)
}

// RestoreDecision undoes DeleteDecision.
func (s *Service) RestoreDecision(id string) error {
	return s.store.RestoreDecision(id)
}

// EntryInput carries the user-editable fields of a journal entry.
type EntryInput struct {
	Date string
	Type string
	Text string
	Tags string // comma separated
}

// AddEntry validates and stores a new journal entry. Empty date means today
// and empty type means journal.
func (s *Service) AddEntry(in EntryInput) (models.JournalEntry, error) {
	day, err := s.ResolveDay(in.Date)
	if err != nil {
		return models.JournalEntry{}, err
	}
	entryType := constants.EntryType(strings.ToLower(strings.TrimSpace(in.Type)))
	if entryType == "" {
		entryType = constants.EntryTypeJournal
	}

	e := models.JournalEntry{
		ID:        uuid.NewString(),
		EntryDate: day,
		Type:      entryType,
		Text:      strings.TrimSpace(in.Text),
		Tags:      utils.ParseTags(in.Tags),
		CreatedAt: s.now(),
	}
	if res := s.validator.ValidateEntry(e); res.HasConflicts() {
		return models.JournalEntry{}, res.Err()
	}
	if err := s.store.AddEntry(e); err != nil {
		return models.JournalEntry{}, fmt.Errorf("failed to save entry: %w", err)
	}
	logger.Info("Saved entry", "id", e.ID, "type", e.Type)
	return e, nil
}

// Entries lists live entries, newest first, optionally of one type.
func (s *Service) Entries(limit int, entryType string) ([]models.JournalEntry, error) {
	t := constants.EntryType(strings.ToLower(strings.TrimSpace(entryType)))
	if t != "" && !models.IsKnownEntryType(t) {
		res := validation.ValidationResult{Conflicts: []validation.Conflict{{
			Type:        constants.ConflictUnknownEntryType,
			Description: fmt.Sprintf("Unknown entry type %q", entryType),
		}}}
		return nil, res.Err()
	}
	limit, err := s.listLimit(limit)
	if err != nil {
		return nil, err
	}
	return s.store.GetEntries(limit, t)
}

// DeleteEntry soft-deletes a journal entry.
func (s *Service) DeleteEntry(id string) error {
	return s.store.DeleteEntry(id)
}

// Snapshot is the full live journal, used by exports.
type Snapshot struct {
	Records   []models.DailyRecord
	Decisions []models.Decision
	Entries   []models.JournalEntry
	Summary   insights.Summary
}

// Snapshot loads every live record, decision and entry plus today's summary.
func (s *Service) Snapshot() (Snapshot, error) {
	summary, err := s.Dashboard()
	if err != nil {
		return Snapshot{}, err
	}
	records, err := s.store.GetAllRecords()
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to load records: %w", err)
	}
	decisions, err := s.store.GetDecisions(0, false)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to load decisions: %w", err)
	}
	entries, err := s.store.GetEntries(0, "")
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to load entries: %w", err)
	}
	return Snapshot{Records: records, Decisions: decisions, Entries: entries, Summary: summary}, nil
}

// Check validates every stored record. Backends that can list rows as stored
// are checked before normalization so bad moods and intentions are reported.
func (s *Service) Check() (validation.ValidationResult, error) {
	var records []models.DailyRecord
	var err error
	if raw, ok := s.store.(storage.RawRecordLister); ok {
		records, err = raw.GetRawRecords()
	} else {
		records, err = s.store.GetAllRecords()
	}
	if err != nil {
		return validation.ValidationResult{}, fmt.Errorf("failed to load records: %w", err)
	}
	return s.validator.ValidateRecords(records), nil
}
