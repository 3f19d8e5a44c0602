// Package forms holds the huh forms shared by the CLI (`-i`) and the TUI.
package forms

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daylog/internal/constants"
	"github.com/julianstephens/daylog/internal/journal"
	"github.com/julianstephens/daylog/internal/models"
	"github.com/julianstephens/daylog/internal/utils"
)

type MorningFormModel struct {
	Intention1 string
	Intention2 string
	Intention3 string
	Mood       models.Mood
}

// MorningFormFrom seeds the form with what is already stored for the day.
func MorningFormFrom(r models.DailyRecord) *MorningFormModel {
	fm := &MorningFormModel{Mood: r.MorningMood}
	slots := []*string{&fm.Intention1, &fm.Intention2, &fm.Intention3}
	for i, intention := range r.Intentions {
		if i == len(slots) {
			break
		}
		*slots[i] = intention
	}
	if fm.Mood == "" {
		fm.Mood = models.MoodNeutral
	}
	return fm
}

// Intentions returns the non-blank intentions in order.
func (fm *MorningFormModel) Intentions() []string {
	return models.CleanIntentions([]string{fm.Intention1, fm.Intention2, fm.Intention3})
}

type EveningFormModel struct {
	Reflection string
	TopWin     string
	Mood       models.Mood
}

func EveningFormFrom(r models.DailyRecord) *EveningFormModel {
	fm := &EveningFormModel{Reflection: r.Reflection, TopWin: r.TopWin, Mood: models.MoodNeutral}
	if r.EveningMood != nil {
		fm.Mood = *r.EveningMood
	}
	return fm
}

type DecisionFormModel struct {
	Date      string
	Title     string
	Context   string
	Choice    string
	Reasoning string
	Outcome   string
	Tags      string
}

// Input converts the form into service input.
func (fm *DecisionFormModel) Input() journal.DecisionInput {
	return journal.DecisionInput(*fm)
}

type EntryFormModel struct {
	Date string
	Type constants.EntryType
	Text string
	Tags string
}

func (fm *EntryFormModel) Input() journal.EntryInput {
	return journal.EntryInput{Date: fm.Date, Type: string(fm.Type), Text: fm.Text, Tags: fm.Tags}
}

func moodOptions() []huh.Option[models.Mood] {
	options := make([]huh.Option[models.Mood], 0, len(models.Moods))
	for _, m := range models.Moods {
		options = append(options, huh.NewOption(m.Emoji()+" "+m.String(), m))
	}
	return options
}

func intentionInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		CharLimit(constants.MaxIntentionLength).
		Value(value)
}

func validateDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if !utils.ValidateDateFormat(s) {
		return fmt.Errorf("invalid date format, use YYYY-MM-DD")
	}
	return nil
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s cannot be empty", field)
		}
		return nil
	}
}

// NewMorningForm creates the morning check-in form.
func NewMorningForm(fm *MorningFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			intentionInput("Intention 1", &fm.Intention1),
			intentionInput("Intention 2", &fm.Intention2),
			intentionInput("Intention 3", &fm.Intention3),
			huh.NewSelect[models.Mood]().
				Title("Morning mood").
				Options(moodOptions()...).
				Value(&fm.Mood),
		).Title("Morning"),
	).WithTheme(huh.ThemeDracula())
}

// NewEveningForm creates the evening reflection form.
func NewEveningForm(fm *EveningFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Reflection").
				Value(&fm.Reflection),
			huh.NewInput().
				Title("Top win").
				Value(&fm.TopWin),
			huh.NewSelect[models.Mood]().
				Title("Evening mood").
				Options(moodOptions()...).
				Value(&fm.Mood),
		).Title("Evening"),
	).WithTheme(huh.ThemeDracula())
}

// NewDecisionForm creates the decision log form.
func NewDecisionForm(fm *DecisionFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Description("Leave empty for today").
				Value(&fm.Date).
				Validate(validateDate),
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(required("title")),
			huh.NewText().
				Title("Context").
				Value(&fm.Context),
			huh.NewText().
				Title("Choice made").
				Value(&fm.Choice),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Reasoning").
				Value(&fm.Reasoning),
			huh.NewText().
				Title("Outcome / Result").
				Value(&fm.Outcome),
			huh.NewInput().
				Title("Tags").
				Description("Comma separated").
				Value(&fm.Tags),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewEntryForm creates the journal entry form.
func NewEntryForm(fm *EntryFormModel) *huh.Form {
	options := make([]huh.Option[constants.EntryType], 0, len(constants.EntryTypes))
	for _, t := range constants.EntryTypes {
		options = append(options, huh.NewOption(strings.ToUpper(string(t[:1]))+string(t[1:]), t))
	}
	if fm.Type == "" {
		fm.Type = constants.EntryTypeJournal
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Description("Leave empty for today").
				Value(&fm.Date).
				Validate(validateDate),
			huh.NewSelect[constants.EntryType]().
				Title("Type").
				Options(options...).
				Value(&fm.Type),
			huh.NewText().
				Title("Entry").
				Value(&fm.Text).
				Validate(required("entry")),
			huh.NewInput().
				Title("Tags").
				Description("Comma separated").
				Value(&fm.Tags),
		),
	).WithTheme(huh.ThemeDracula())
}
