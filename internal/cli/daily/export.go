package daily

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/julianstephens/daylog/internal/cli"
	"github.com/julianstephens/daylog/internal/export"
)

type ExportCmd struct {
	Format string `short:"f" help:"Output format: markdown or json." default:"markdown" enum:"markdown,md,json"`
	Out    string `short:"o" help:"Write to this file instead of stdout." type:"path"`
	Schema bool   `help:"Print the JSON Schema of the json export and exit."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	var w io.Writer = ctx.Out()
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", c.Out, err)
		}
		defer f.Close()
		w = f
	}

	if c.Schema {
		b, err := export.Schema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}

	format, err := export.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	snap, err := ctx.Journal.Snapshot()
	if err != nil {
		return err
	}
	if err := export.Write(w, format, snap, time.Now()); err != nil {
		return err
	}
	if c.Out != "" {
		ctx.Printf("✓ Exported %d records, %d decisions and %d entries to %s\n",
			len(snap.Records), len(snap.Decisions), len(snap.Entries), c.Out)
	}
	return nil
}
