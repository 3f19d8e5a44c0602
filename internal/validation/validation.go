package validation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/julianstephens/daylog/internal/constants"
	"github.com/julianstephens/daylog/internal/models"
	"github.com/julianstephens/daylog/internal/utils"
)

// Conflict represents one problem found in user input or stored data
type Conflict struct {
	Type        constants.ConflictType `json:"type"`
	Description string                 `json:"description"`
	Date        string                 `json:"date,omitempty"` // YYYY-MM-DD format (if applicable)
	Items       []string               `json:"items,omitempty"`
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict `json:"conflicts"`
}

// HasConflicts returns true if there are any conflicts
func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// Has reports whether a conflict of type ct was found.
func (vr *ValidationResult) Has(ct constants.ConflictType) bool {
	for _, c := range vr.Conflicts {
		if c.Type == ct {
			return true
		}
	}
	return false
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, conflict := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", conflict.Description)
	}
	return b.String()
}

// Err returns nil when there are no conflicts, otherwise an *Error wrapping the result.
func (vr ValidationResult) Err() error {
	if !vr.HasConflicts() {
		return nil
	}
	return &Error{Result: vr}
}

// Error carries a failed ValidationResult through error returns.
type Error struct {
	Result ValidationResult
}

func (e *Error) Error() string {
	descriptions := make([]string, 0, len(e.Result.Conflicts))
	for _, c := range e.Result.Conflicts {
		descriptions = append(descriptions, c.Description)
	}
	return "validation failed: " + strings.Join(descriptions, "; ")
}

func (vr *ValidationResult) add(ct constants.ConflictType, date, format string, args ...interface{}) {
	vr.Conflicts = append(vr.Conflicts, Conflict{
		Type:        ct,
		Description: fmt.Sprintf(format, args...),
		Date:        date,
	})
}

// Validator checks journal input before it reaches storage
type Validator struct{}

// New creates a new Validator
func New() *Validator {
	return &Validator{}
}

// ValidateDate checks that date is a real YYYY-MM-DD calendar date.
func (v *Validator) ValidateDate(date string) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}
	v.checkDate(&result, date)
	return result
}

func (v *Validator) checkDate(result *ValidationResult, date string) bool {
	if !utils.ValidateDateFormat(date) {
		result.add(constants.ConflictInvalidDate, date, "Invalid date %q (expected YYYY-MM-DD)", date)
		return false
	}
	return true
}

func (v *Validator) checkMood(result *ValidationResult, date, label, mood string) {
	if _, ok := models.ParseMood(mood); !ok {
		result.add(constants.ConflictUnknownMood, date, "Unknown %s mood %q (use low, neutral or good)", label, mood)
	}
}

// ValidateMorning checks the morning step of a day.
func (v *Validator) ValidateMorning(date string, intentions []string, mood string) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}
	v.checkDate(&result, date)

	cleaned := make([]string, 0, len(intentions))
	for _, intention := range intentions {
		if trimmed := strings.TrimSpace(intention); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if len(cleaned) > constants.MaxIntentions {
		result.add(constants.ConflictTooManyIntentions, date,
			"At most %d intentions are allowed, got %d", constants.MaxIntentions, len(cleaned))
	}
	for _, intention := range cleaned {
		if len([]rune(intention)) > constants.MaxIntentionLength {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        constants.ConflictIntentionTooLong,
				Description: fmt.Sprintf("Intention is longer than %d characters", constants.MaxIntentionLength),
				Date:        date,
				Items:       []string{intention},
			})
		}
	}

	v.checkMood(&result, date, "morning", mood)
	return result
}

// ValidateEvening checks the evening step of a day.
func (v *Validator) ValidateEvening(date, mood string) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}
	v.checkDate(&result, date)
	v.checkMood(&result, date, "evening", mood)
	return result
}

// ValidateRecords checks records as stored, before normalization, for problems
// the engine would silently repair or skip.
func (v *Validator) ValidateRecords(records []models.DailyRecord) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}

	seen := make(map[string]int)
	for _, r := range records {
		if !v.checkDate(&result, r.EntryDate) {
			continue
		}
		seen[r.EntryDate]++

		if r.EveningCompleted && r.EveningMood == nil {
			result.add(constants.ConflictMissingEveningMood, r.EntryDate,
				"Record %s is marked complete but has no evening mood", r.EntryDate)
		}
		if len(r.Intentions) > constants.MaxIntentions {
			result.add(constants.ConflictTooManyIntentions, r.EntryDate,
				"Record %s has %d intentions", r.EntryDate, len(r.Intentions))
		}
		if r.MorningMood != "" && !r.MorningMood.IsValid() {
			result.add(constants.ConflictUnknownMood, r.EntryDate,
				"Record %s has unknown morning mood %q", r.EntryDate, r.MorningMood)
		}
		if r.EveningMood != nil && !r.EveningMood.IsValid() {
			result.add(constants.ConflictUnknownMood, r.EntryDate,
				"Record %s has unknown evening mood %q", r.EntryDate, *r.EveningMood)
		}
	}

	var dupes []string
	for date, count := range seen {
		if count > 1 {
			dupes = append(dupes, date)
		}
	}
	sort.Strings(dupes)
	for _, date := range dupes {
		result.add(constants.ConflictDuplicateDate, date, "Date %s has %d records", date, seen[date])
	}

	return result
}

// ValidateDecision checks a decision before it is saved.
func (v *Validator) ValidateDecision(d models.Decision) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}
	v.checkDate(&result, d.Date)
	if strings.TrimSpace(d.Title) == "" {
		result.add(constants.ConflictMissingTitle, d.Date, "Decision title is required")
	}
	return result
}

// ValidateEntry checks a journal entry before it is saved.
func (v *Validator) ValidateEntry(e models.JournalEntry) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}
	v.checkDate(&result, e.EntryDate)
	if strings.TrimSpace(e.Text) == "" {
		result.add(constants.ConflictEmptyText, e.EntryDate, "Entry text is required")
	}
	if !models.IsKnownEntryType(e.Type) {
		result.add(constants.ConflictUnknownEntryType, e.EntryDate, "Unknown entry type %q", e.Type)
	}
	return result
}
