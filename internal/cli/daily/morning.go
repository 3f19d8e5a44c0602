package daily

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daylog/internal/cli"
	"github.com/julianstephens/daylog/internal/forms"
	"github.com/julianstephens/daylog/internal/tui/components/record"
)

type MorningCmd struct {
	Date        string   `help:"Day to log (YYYY-MM-DD). Defaults to today."`
	Intention   []string `short:"t" help:"Intention for the day (repeatable, at most 3)."`
	Mood        string   `short:"m" help:"Morning mood: low, neutral or good. Defaults to the saved mood."`
	Interactive bool     `short:"i" help:"Fill in the morning with a form."`
}

func (c *MorningCmd) Run(ctx *cli.Context) error {
	day, err := ctx.Journal.ResolveDay(c.Date)
	if err != nil {
		return err
	}
	existing, _, err := ctx.Journal.Record(day)
	if err != nil {
		return err
	}

	intentions, mood := c.Intention, c.Mood
	if c.Interactive {
		fm := forms.MorningFormFrom(existing)
		if err := forms.NewMorningForm(fm).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				ctx.Println("Cancelled.")
				return nil
			}
			return fmt.Errorf("morning form failed: %w", err)
		}
		intentions, mood = fm.Intentions(), string(fm.Mood)
	}
	r, err := ctx.Journal.SaveMorning(day, intentions, mood)
	if err != nil {
		return err
	}
	ctx.Printf("✓ Morning saved for %s\n\n", day)
	ctx.Println(record.Card(r, 0))
	return nil
}
