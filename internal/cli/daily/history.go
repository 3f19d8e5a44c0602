package daily

import (
	"github.com/julianstephens/daylog/internal/cli"
	"github.com/julianstephens/daylog/internal/tui/components/record"
)

type HistoryCmd struct {
	Limit int  `short:"n" help:"Number of days to show (5-100). Defaults to the list_limit setting."`
	Full  bool `short:"f" help:"Expand every day into a full card."`
	JSON  bool `help:"Print records as JSON."`
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	records, err := ctx.Journal.History(c.Limit)
	if err != nil {
		return err
	}
	if c.JSON {
		return ctx.PrintJSON(records)
	}
	if len(records) == 0 {
		ctx.Println("No days logged yet.")
		return nil
	}

	for _, r := range records {
		if c.Full {
			ctx.Println(record.Card(r, 0))
			continue
		}
		mark := "·"
		if r.EveningCompleted {
			mark = "✓"
		}
		ctx.Printf("%s %s  %s\n", mark, r.EntryDate, record.Summary(r))
	}
	return nil
}
