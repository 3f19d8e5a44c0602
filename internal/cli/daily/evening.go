package daily

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/daylog/internal/cli"
	"github.com/julianstephens/daylog/internal/forms"
	"github.com/julianstephens/daylog/internal/tui/components/record"
)

type EveningCmd struct {
	Date        string `help:"Day to log (YYYY-MM-DD). Defaults to today."`
	Reflection  string `short:"r" help:"How did the day go?"`
	Win         string `short:"w" help:"Top win of the day."`
	Mood        string `short:"m" help:"Evening mood: low, neutral or good. Defaults to the saved mood, else neutral."`
	Interactive bool   `short:"i" help:"Fill in the evening with a form."`
}

func (c *EveningCmd) Run(ctx *cli.Context) error {
	day, err := ctx.Journal.ResolveDay(c.Date)
	if err != nil {
		return err
	}

	reflection, win, mood := c.Reflection, c.Win, c.Mood
	if c.Interactive {
		existing, _, err := ctx.Journal.Record(day)
		if err != nil {
			return err
		}
		fm := forms.EveningFormFrom(existing)
		if err := forms.NewEveningForm(fm).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				ctx.Println("Cancelled.")
				return nil
			}
			return fmt.Errorf("evening form failed: %w", err)
		}
		reflection, win, mood = fm.Reflection, fm.TopWin, string(fm.Mood)
	}

	r, err := ctx.Journal.SaveEvening(day, reflection, win, mood)
	if err != nil {
		return err
	}
	ctx.PerformAutomaticBackup()

	ctx.Printf("✓ Evening saved for %s\n\n", day)
	ctx.Println(record.Card(r, 0))

	summary, err := ctx.Journal.Dashboard()
	if err != nil {
		return err
	}
	ctx.Printf("\n🔥 Current streak: %d (longest %d)\n", summary.Streaks.Current, summary.Streaks.Longest)
	return nil
}
