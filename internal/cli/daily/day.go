package daily

import (
	"github.com/julianstephens/daylog/internal/cli"
	"github.com/julianstephens/daylog/internal/tui/components/record"
)

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Day to show (YYYY-MM-DD). Defaults to today."`
	JSON bool   `help:"Print the record as JSON."`
}

func (c *DayCmd) Run(ctx *cli.Context) error {
	day, err := ctx.Journal.ResolveDay(c.Date)
	if err != nil {
		return err
	}
	r, found, err := ctx.Journal.Record(day)
	if err != nil {
		return err
	}

	if c.JSON {
		return ctx.PrintJSON(r)
	}
	if !found {
		ctx.Printf("Nothing logged for %s yet. Start with 'daylog morning'.\n", day)
		return nil
	}
	ctx.Println(record.Card(r, 0))
	return nil
}
