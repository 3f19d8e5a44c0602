package daily

import (
	"github.com/julianstephens/daylog/internal/cli"
)

type StatsCmd struct {
	Window int  `short:"w" help:"Calendar days counted for recent completion. Defaults to the completion_window setting."`
	JSON   bool `help:"Print the summary as JSON."`
}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	summary, err := ctx.Journal.DashboardWindows(c.Window, 0)
	if err != nil {
		return err
	}
	if c.JSON {
		return ctx.PrintJSON(summary)
	}

	ctx.Printf("As of %s\n\n", summary.Today)
	ctx.Printf("  Current streak:     %d\n", summary.Streaks.Current)
	ctx.Printf("  Longest streak:     %d\n", summary.Streaks.Longest)
	ctx.Printf("  Completed (last %d): %d/%d\n", summary.CompletionWindow, summary.RecentCompletion, summary.CompletionWindow)
	return nil
}
