// Package export renders the journal as Markdown or JSON.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/invopop/jsonschema"

	"github.com/julianstephens/daylog/internal/constants"
	"github.com/julianstephens/daylog/internal/insights"
	"github.com/julianstephens/daylog/internal/journal"
	"github.com/julianstephens/daylog/internal/models"
	"github.com/julianstephens/daylog/internal/utils"
)

type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// ParseFormat accepts "markdown", "md" and "json" case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported export format %q (use markdown or json)", s)
	}
}

// Document is the JSON export layout.
type Document struct {
	GeneratedAt time.Time             `json:"generated_at" jsonschema:"required"`
	Records     []models.DailyRecord  `json:"records" jsonschema:"required"`
	Decisions   []models.Decision     `json:"decisions" jsonschema:"required"`
	Entries     []models.JournalEntry `json:"entries" jsonschema:"required"`
	Summary     insights.Summary      `json:"summary" jsonschema:"required"`
}

// NewDocument copies a snapshot into a Document, replacing nil slices with empty ones.
func NewDocument(snap journal.Snapshot, generatedAt time.Time) Document {
	doc := Document{
		GeneratedAt: generatedAt.UTC(),
		Records:     snap.Records,
		Decisions:   snap.Decisions,
		Entries:     snap.Entries,
		Summary:     snap.Summary,
	}
	if doc.Records == nil {
		doc.Records = []models.DailyRecord{}
	}
	if doc.Decisions == nil {
		doc.Decisions = []models.Decision{}
	}
	if doc.Entries == nil {
		doc.Entries = []models.JournalEntry{}
	}
	return doc
}

// Write renders snap to w in the given format.
func Write(w io.Writer, format Format, snap journal.Snapshot, generatedAt time.Time) error {
	switch format {
	case FormatJSON:
		return JSON(w, snap, generatedAt)
	case FormatMarkdown:
		return Markdown(w, snap, generatedAt)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// JSON writes an indented Document.
func JSON(w io.Writer, snap journal.Snapshot, generatedAt time.Time) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(snap, generatedAt)); err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	return nil
}

// Schema returns the JSON Schema describing Document.
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	schema := reflector.Reflect(&Document{})
	schema.Title = "daylog export"
	b, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return b, nil
}

// Markdown writes a human readable document. Records are listed oldest first,
// decisions and entries newest first.
func Markdown(w io.Writer, snap journal.Snapshot, generatedAt time.Time) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s export\n\n", constants.AppName)
	fmt.Fprintf(&b, "_Generated %s_\n\n", generatedAt.Format(time.RFC1123))

	s := snap.Summary
	b.WriteString("## Summary\n\n")
	fmt.Fprintf(&b, "- Current streak: %d\n", s.Streaks.Current)
	fmt.Fprintf(&b, "- Longest streak: %d\n", s.Streaks.Longest)
	fmt.Fprintf(&b, "- Completed in last %d days: %d\n\n", s.CompletionWindow, s.RecentCompletion)

	b.WriteString("## Daily records\n\n")
	if len(snap.Records) == 0 {
		b.WriteString("_No records._\n\n")
	}
	for _, r := range snap.Records {
		writeRecord(&b, r)
	}

	b.WriteString("## Decisions\n\n")
	if len(snap.Decisions) == 0 {
		b.WriteString("_No decisions._\n\n")
	}
	for _, d := range snap.Decisions {
		writeDecision(&b, d)
	}

	b.WriteString("## Journal entries\n\n")
	if len(snap.Entries) == 0 {
		b.WriteString("_No entries._\n\n")
	}
	for _, e := range snap.Entries {
		fmt.Fprintf(&b, "### %s | %s\n\n", e.EntryDate, e.Type)
		b.WriteString(strings.TrimSpace(e.Text))
		b.WriteString("\n\n")
		writeTags(&b, e.Tags)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeRecord(b *strings.Builder, r models.DailyRecord) {
	fmt.Fprintf(b, "### %s\n\n", r.EntryDate)
	fmt.Fprintf(b, "**Morning mood:** %s %s\n\n", r.MorningMood.Emoji(), r.MorningMood)
	if len(r.Intentions) > 0 {
		b.WriteString("**Intentions**\n\n")
		for _, intention := range r.Intentions {
			fmt.Fprintf(b, "- %s\n", intention)
		}
		b.WriteString("\n")
	}
	if !r.EveningCompleted {
		b.WriteString("_Evening not completed._\n\n")
		return
	}
	evening := models.MoodNeutral
	if r.EveningMood != nil {
		evening = *r.EveningMood
	}
	fmt.Fprintf(b, "**Evening mood:** %s %s\n\n", evening.Emoji(), evening)
	if r.Reflection != "" {
		fmt.Fprintf(b, "**Reflection**\n\n%s\n\n", r.Reflection)
	}
	if r.TopWin != "" {
		fmt.Fprintf(b, "**Top win:** %s\n\n", r.TopWin)
	}
}

func writeDecision(b *strings.Builder, d models.Decision) {
	fmt.Fprintf(b, "### %s | %s\n\n", d.Date, d.Title)
	for _, section := range []struct{ label, body string }{
		{"Context", d.Context},
		{"Choice", d.Choice},
		{"Reasoning", d.Reasoning},
		{"Outcome", d.Outcome},
	} {
		if section.body == "" {
			continue
		}
		fmt.Fprintf(b, "**%s**\n\n%s\n\n", section.label, section.body)
	}
	writeTags(b, d.Tags)
}

func writeTags(b *strings.Builder, tags []string) {
	if len(tags) == 0 {
		return
	}
	fmt.Fprintf(b, "Tags: %s\n\n", utils.JoinTags(tags))
}
