package entries

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daylog/internal/cli"
	"github.com/julianstephens/daylog/internal/constants"
	"github.com/julianstephens/daylog/internal/forms"
	"github.com/julianstephens/daylog/internal/journal"
	"github.com/julianstephens/daylog/internal/models"
	"github.com/julianstephens/daylog/internal/utils"
)

type EntryCmd struct {
	Add    EntryAddCmd    `cmd:"" help:"Write a journal entry."`
	List   EntryListCmd   `cmd:"" help:"List journal entries, newest first." default:"1"`
	Delete EntryDeleteCmd `cmd:"" help:"Delete a journal entry."`
}

type EntryAddCmd struct {
	Text        []string `arg:"" optional:"" help:"Entry text."`
	Date        string   `help:"Entry date (YYYY-MM-DD). Defaults to today."`
	Type        string   `short:"T" help:"Entry type: journal, learning, decision, reflection or project." default:"journal"`
	Tags        string   `short:"t" help:"Comma separated tags."`
	Interactive bool     `short:"i" help:"Write the entry in a form."`
}

func (c *EntryAddCmd) Run(ctx *cli.Context) error {
	in := journal.EntryInput{
		Date: c.Date,
		Type: c.Type,
		Text: strings.Join(c.Text, " "),
		Tags: c.Tags,
	}
	if c.Interactive {
		fm := &forms.EntryFormModel{Date: in.Date, Type: constants.EntryType(in.Type), Text: in.Text, Tags: in.Tags}
		if err := forms.NewEntryForm(fm).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				ctx.Println("Cancelled.")
				return nil
			}
			return fmt.Errorf("entry form failed: %w", err)
		}
		in = fm.Input()
	}

	e, err := ctx.Journal.AddEntry(in)
	if err != nil {
		return err
	}
	ctx.Printf("✓ %s entry saved for %s (ID: %s)\n", e.Type, e.EntryDate, e.ID)
	return nil
}

type EntryListCmd struct {
	Limit int    `short:"n" help:"Number of entries to show (5-100). Defaults to the list_limit setting."`
	Type  string `short:"T" help:"Only show entries of this type."`
	JSON  bool   `help:"Print entries as JSON."`
}

func (c *EntryListCmd) Run(ctx *cli.Context) error {
	list, err := ctx.Journal.Entries(c.Limit, c.Type)
	if err != nil {
		return err
	}
	if c.JSON {
		return ctx.PrintJSON(list)
	}
	if len(list) == 0 {
		ctx.Println("No journal entries yet.")
		return nil
	}
	for _, e := range list {
		ctx.Printf("%s | %s  [%s]\n", e.EntryDate, e.Type, e.ID)
		ctx.Printf("  %s\n", strings.ReplaceAll(e.Text, "\n", "\n  "))
		if len(e.Tags) > 0 {
			ctx.Printf("  Tags: %s\n", utils.JoinTags(e.Tags))
		}
	}
	return nil
}

type EntryDeleteCmd struct {
	ID string `arg:"" help:"Entry ID."`
}

func (c *EntryDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Journal.DeleteEntry(c.ID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("entry not found or already deleted: %s", c.ID)
		}
		return err
	}
	ctx.Println("✓ Entry deleted")
	return nil
}
