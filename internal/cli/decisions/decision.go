package decisions

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daylog/internal/cli"
	"github.com/julianstephens/daylog/internal/forms"
	"github.com/julianstephens/daylog/internal/journal"
	"github.com/julianstephens/daylog/internal/models"
	"github.com/julianstephens/daylog/internal/utils"
)

type DecisionCmd struct {
	Add     DecisionAddCmd     `cmd:"" help:"Log a decision."`
	List    DecisionListCmd    `cmd:"" help:"List decisions, newest first." default:"1"`
	Show    DecisionShowCmd    `cmd:"" help:"Show one decision."`
	Delete  DecisionDeleteCmd  `cmd:"" help:"Delete a decision."`
	Restore DecisionRestoreCmd `cmd:"" help:"Restore a deleted decision."`
}

type DecisionAddCmd struct {
	Title       string `arg:"" optional:"" help:"Short title of the decision."`
	Date        string `help:"Decision date (YYYY-MM-DD). Defaults to today."`
	Context     string `short:"c" help:"What led to the decision."`
	Choice      string `help:"What was chosen."`
	Reasoning   string `short:"r" help:"Why it was chosen."`
	Outcome     string `short:"o" help:"Outcome or result, if known."`
	Tags        string `short:"t" help:"Comma separated tags."`
	Interactive bool   `short:"i" help:"Fill in the decision with a form."`
}

func (c *DecisionAddCmd) Run(ctx *cli.Context) error {
	in := journal.DecisionInput{
		Date:      c.Date,
		Title:     c.Title,
		Context:   c.Context,
		Choice:    c.Choice,
		Reasoning: c.Reasoning,
		Outcome:   c.Outcome,
		Tags:      c.Tags,
	}
	if c.Interactive {
		fm := forms.DecisionFormModel(in)
		if err := forms.NewDecisionForm(&fm).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				ctx.Println("Cancelled.")
				return nil
			}
			return fmt.Errorf("decision form failed: %w", err)
		}
		in = fm.Input()
	}

	d, err := ctx.Journal.AddDecision(in)
	if err != nil {
		return err
	}
	ctx.Printf("✓ Decision saved: %s (ID: %s)\n", d.Title, d.ID)
	return nil
}

type DecisionListCmd struct {
	Limit   int  `short:"n" help:"Number of decisions to show (5-100). Defaults to the list_limit setting."`
	Deleted bool `help:"Include deleted decisions."`
	JSON    bool `help:"Print decisions as JSON."`
}

func (c *DecisionListCmd) Run(ctx *cli.Context) error {
	list, err := ctx.Journal.Decisions(c.Limit, c.Deleted)
	if err != nil {
		return err
	}
	if c.JSON {
		return ctx.PrintJSON(list)
	}
	if len(list) == 0 {
		ctx.Println("No decisions logged yet.")
		return nil
	}
	for _, d := range list {
		line := fmt.Sprintf("%s | %s  [%s]", d.Date, d.Title, d.ID)
		if d.DeletedAt != nil {
			line += " (deleted)"
		}
		ctx.Println(line)
	}
	return nil
}

type DecisionShowCmd struct {
	ID   string `arg:"" help:"Decision ID."`
	JSON bool   `help:"Print the decision as JSON."`
}

func (c *DecisionShowCmd) Run(ctx *cli.Context) error {
	d, err := ctx.Journal.Decision(c.ID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("decision not found: %s", c.ID)
		}
		return err
	}
	if c.JSON {
		return ctx.PrintJSON(d)
	}

	ctx.Printf("%s | %s\n", d.Date, d.Title)
	if d.DeletedAt != nil {
		ctx.Printf("(deleted %s)\n", d.DeletedAt.Format("2006-01-02 15:04"))
	}
	for _, section := range []struct{ label, body string }{
		{"Context", d.Context},
		{"Choice", d.Choice},
		{"Reasoning", d.Reasoning},
		{"Outcome", d.Outcome},
	} {
		if section.body == "" {
			continue
		}
		ctx.Printf("\n%s\n  %s\n", section.label, section.body)
	}
	if len(d.Tags) > 0 {
		ctx.Printf("\nTags: %s\n", utils.JoinTags(d.Tags))
	}
	return nil
}

type DecisionDeleteCmd struct {
	ID string `arg:"" help:"Decision ID."`
}

func (c *DecisionDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Journal.DeleteDecision(c.ID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("decision not found or already deleted: %s", c.ID)
		}
		return err
	}
	ctx.Printf("✓ Decision deleted. Restore with 'daylog decision restore %s'\n", c.ID)
	return nil
}

type DecisionRestoreCmd struct {
	ID string `arg:"" help:"Decision ID."`
}

func (c *DecisionRestoreCmd) Run(ctx *cli.Context) error {
	if err := ctx.Journal.RestoreDecision(c.ID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("deleted decision not found: %s", c.ID)
		}
		return err
	}
	ctx.Println("✓ Decision restored")
	return nil
}
