package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/julianstephens/daylog/internal/constants"
	"github.com/julianstephens/daylog/internal/models"
)

const jsonStoreVersion = 1

type jsonDocument struct {
	Version   int                            `json:"version"`
	Settings  models.Settings                `json:"settings"`
	Records   map[string]models.DailyRecord  `json:"records"` // date -> record
	Decisions map[string]models.Decision     `json:"decisions"`
	Entries   map[string]models.JournalEntry `json:"entries"`
}

// JSONStore keeps the whole journal in one JSON file, rewritten on every change.
type JSONStore struct {
	path string
	mu   sync.RWMutex
	doc  *jsonDocument
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{path: configPath}
}

func (s *JSONStore) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return s.Load()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = &jsonDocument{
		Version:  jsonStoreVersion,
		Settings: models.DefaultSettings(),
	}
	s.doc.ensureMaps()
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'daylog init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	doc := &jsonDocument{}
	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if doc.Version > jsonStoreVersion {
		return fmt.Errorf("storage file version %d is newer than supported version %d", doc.Version, jsonStoreVersion)
	}
	doc.ensureMaps()
	models.ApplyDefaultSettings(&doc.Settings)

	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (d *jsonDocument) ensureMaps() {
	if d.Records == nil {
		d.Records = make(map[string]models.DailyRecord)
	}
	if d.Decisions == nil {
		d.Decisions = make(map[string]models.Decision)
	}
	if d.Entries == nil {
		d.Entries = make(map[string]models.JournalEntry)
	}
}

// save writes through a temp file so a crash never leaves a truncated journal.
// Callers hold the write lock.
func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) loaded() error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.loaded(); err != nil {
		return models.Settings{}, err
	}
	return s.doc.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Settings = settings
	return s.save()
}

func (s *JSONStore) UpsertRecord(r models.DailyRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}
	if existing, ok := s.doc.Records[r.EntryDate]; ok && !existing.CreatedAt.IsZero() {
		r.CreatedAt = existing.CreatedAt
	}
	r.Intentions = models.CleanIntentions(r.Intentions)
	s.doc.Records[r.EntryDate] = r
	return s.save()
}

// mergeRecord stores r, or copies the fields chosen by apply onto the stored
// record of the same date.
func (s *JSONStore) mergeRecord(r models.DailyRecord, apply func(dst *models.DailyRecord, src models.DailyRecord)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}
	existing, ok := s.doc.Records[r.EntryDate]
	if !ok {
		r.Intentions = models.CleanIntentions(r.Intentions)
		s.doc.Records[r.EntryDate] = r
		return s.save()
	}
	apply(&existing, r)
	existing.UpdatedAt = r.UpdatedAt
	s.doc.Records[r.EntryDate] = existing
	return s.save()
}

func (s *JSONStore) UpsertMorning(r models.DailyRecord) error {
	return s.mergeRecord(r, func(dst *models.DailyRecord, src models.DailyRecord) {
		dst.Intentions = models.CleanIntentions(src.Intentions)
		dst.MorningMood = src.MorningMood
	})
}

func (s *JSONStore) UpsertEvening(r models.DailyRecord) error {
	return s.mergeRecord(r, func(dst *models.DailyRecord, src models.DailyRecord) {
		dst.Reflection = src.Reflection
		dst.TopWin = src.TopWin
		dst.EveningMood = src.EveningMood
		dst.EveningCompleted = src.EveningCompleted
	})
}

func (s *JSONStore) GetRecord(date string) (models.DailyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.loaded(); err != nil {
		return models.DailyRecord{}, err
	}
	r, ok := s.doc.Records[date]
	if !ok {
		return models.DailyRecord{}, models.ErrNotFound
	}
	r.Normalize()
	return r, nil
}

// sortedRecords returns normalized copies ordered by date, oldest first.
func (s *JSONStore) sortedRecords() []models.DailyRecord {
	records := make([]models.DailyRecord, 0, len(s.doc.Records))
	for _, r := range s.doc.Records {
		r.Normalize()
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].EntryDate < records[j].EntryDate
	})
	return records
}

func (s *JSONStore) GetRecords(startDay, endDay string) ([]models.DailyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.loaded(); err != nil {
		return nil, err
	}
	records := []models.DailyRecord{}
	for _, r := range s.sortedRecords() {
		if r.EntryDate >= startDay && r.EntryDate <= endDay {
			records = append(records, r)
		}
	}
	return records, nil
}

func (s *JSONStore) GetRecentRecords(limit int) ([]models.DailyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.loaded(); err != nil {
		return nil, err
	}
	sorted := s.sortedRecords()
	records := []models.DailyRecord{}
	for i := len(sorted) - 1; i >= 0 && len(records) < limit; i-- {
		records = append(records, sorted[i])
	}
	return records, nil
}

func (s *JSONStore) GetAllRecords() ([]models.DailyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return s.sortedRecords(), nil
}

// GetRawRecords returns every record as stored, oldest first.
func (s *JSONStore) GetRawRecords() ([]models.DailyRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.loaded(); err != nil {
		return nil, err
	}
	records := make([]models.DailyRecord, 0, len(s.doc.Records))
	for _, r := range s.doc.Records {
		records = append(records, r)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].EntryDate < records[j].EntryDate
	})
	return records, nil
}

func (s *JSONStore) AddDecision(d models.Decision) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Decisions[d.ID] = d
	return s.save()
}

func (s *JSONStore) GetDecision(id string) (models.Decision, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.loaded(); err != nil {
		return models.Decision{}, err
	}
	d, ok := s.doc.Decisions[id]
	if !ok {
		return models.Decision{}, models.ErrNotFound
	}
	return d, nil
}

func (s *JSONStore) GetDecisions(limit int, includeDeleted bool) ([]models.Decision, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.loaded(); err != nil {
		return nil, err
	}

	decisions := []models.Decision{}
	for _, d := range s.doc.Decisions {
		if d.DeletedAt != nil && !includeDeleted {
			continue
		}
		decisions = append(decisions, d)
	}
	sort.Slice(decisions, func(i, j int) bool {
		if decisions[i].Date != decisions[j].Date {
			return decisions[i].Date > decisions[j].Date
		}
		return decisions[i].CreatedAt.After(decisions[j].CreatedAt)
	})
	if limit > 0 && len(decisions) > limit {
		decisions = decisions[:limit]
	}
	return decisions, nil
}

func (s *JSONStore) GetAllDecisions() ([]models.Decision, error) {
	return s.GetDecisions(0, true)
}

func (s *JSONStore) setDecisionDeleted(id string, deletedAt *time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}
	d, ok := s.doc.Decisions[id]
	if !ok || (d.DeletedAt == nil) == (deletedAt == nil) {
		return models.ErrNotFound
	}
	d.DeletedAt = deletedAt
	s.doc.Decisions[id] = d
	return s.save()
}

func (s *JSONStore) DeleteDecision(id string) error {
	now := time.Now()
	return s.setDecisionDeleted(id, &now)
}

func (s *JSONStore) RestoreDecision(id string) error {
	return s.setDecisionDeleted(id, nil)
}

func (s *JSONStore) AddEntry(e models.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Entries[e.ID] = e
	return s.save()
}

func (s *JSONStore) entries(includeDeleted bool, entryType constants.EntryType) []models.JournalEntry {
	entries := []models.JournalEntry{}
	for _, e := range s.doc.Entries {
		if e.DeletedAt != nil && !includeDeleted {
			continue
		}
		if entryType != "" && e.Type != entryType {
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

func (s *JSONStore) GetEntries(limit int, entryType constants.EntryType) ([]models.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.loaded(); err != nil {
		return nil, err
	}

	entries := s.entries(false, entryType)
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].EntryDate != entries[j].EntryDate {
			return entries[i].EntryDate > entries[j].EntryDate
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *JSONStore) GetAllEntries() ([]models.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.loaded(); err != nil {
		return nil, err
	}

	entries := s.entries(true, "")
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].EntryDate != entries[j].EntryDate {
			return entries[i].EntryDate < entries[j].EntryDate
		}
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
	return entries, nil
}

func (s *JSONStore) DeleteEntry(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}
	e, ok := s.doc.Entries[id]
	if !ok || e.DeletedAt != nil {
		return models.ErrNotFound
	}
	now := time.Now()
	e.DeletedAt = &now
	s.doc.Entries[id] = e
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
