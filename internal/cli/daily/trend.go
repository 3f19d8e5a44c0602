package daily

import (
	"github.com/julianstephens/daylog/internal/chart"
	"github.com/julianstephens/daylog/internal/cli"
)

type TrendCmd struct {
	Window int  `short:"w" help:"Number of completed days to plot. Defaults to the trend_window setting."`
	JSON   bool `help:"Print trend points as JSON."`
}

func (c *TrendCmd) Run(ctx *cli.Context) error {
	summary, err := ctx.Journal.DashboardWindows(0, c.Window)
	if err != nil {
		return err
	}
	if c.JSON {
		return ctx.PrintJSON(summary.Trend)
	}

	ctx.Printf("Mood trend, last %d completed day(s)\n\n", len(summary.Trend))
	ctx.Print(chart.Trend(summary.Trend))
	if len(summary.Trend) == 0 {
		ctx.Println()
		return nil
	}
	ctx.Println()
	ctx.Println(chart.Legend())
	ctx.Println()
	ctx.Print(chart.Table(summary.Trend))
	return nil
}
