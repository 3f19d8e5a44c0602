package system

import (
	"errors"
	"fmt"

	"github.com/julianstephens/daylog/internal/cli"
	"github.com/julianstephens/daylog/internal/models"
	"github.com/julianstephens/daylog/internal/storage"
	"github.com/julianstephens/daylog/internal/utils"
)

type DebugCmd struct {
	DBPath       DebugDBPathCmd       `cmd:"" help:"Show database location and backend."`
	DumpRecord   DebugDumpRecordCmd   `cmd:"" help:"Dump a daily record as JSON."`
	DumpDecision DebugDumpDecisionCmd `cmd:"" help:"Dump a decision as JSON."`
	DumpSettings DebugDumpSettingsCmd `cmd:"" help:"Dump settings as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	path := ctx.Store.GetConfigPath()
	return ctx.PrintJSON(map[string]string{
		"path":    path,
		"backend": storage.Kind(path),
	})
}

type DebugDumpRecordCmd struct {
	Date string `arg:"" help:"Date of the record to dump (YYYY-MM-DD or 'today')."`
}

func (cmd *DebugDumpRecordCmd) Run(ctx *cli.Context) error {
	date := cmd.Date
	if date == "today" {
		date = ""
	}
	day, err := ctx.Journal.ResolveDay(date)
	if err != nil {
		return err
	}
	if !utils.ValidateDateFormat(day) {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD or 'today')", day)
	}
	r, err := ctx.Store.GetRecord(day)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("no record found for date: %s", day)
		}
		return fmt.Errorf("failed to get record: %w", err)
	}
	return ctx.PrintJSON(r)
}

type DebugDumpDecisionCmd struct {
	ID string `arg:"" help:"Decision ID."`
}

func (cmd *DebugDumpDecisionCmd) Run(ctx *cli.Context) error {
	d, err := ctx.Store.GetDecision(cmd.ID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("no decision found with ID: %s", cmd.ID)
		}
		return fmt.Errorf("failed to get decision: %w", err)
	}
	return ctx.PrintJSON(d)
}

type DebugDumpSettingsCmd struct{}

func (cmd *DebugDumpSettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if settings.HasPin() {
		settings.PinHash = "<redacted>"
	}
	return ctx.PrintJSON(settings)
}
