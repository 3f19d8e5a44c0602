package settings

import (
	"fmt"

	"github.com/julianstephens/daylog/internal/cli"
	"github.com/julianstephens/daylog/internal/constants"
	"github.com/julianstephens/daylog/internal/models"
	"github.com/julianstephens/daylog/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Timezone         *string `help:"IANA timezone used to decide what 'today' is (or 'Local')."`
	TrendWindow      *int    `help:"Completed days plotted in the mood trend."`
	CompletionWindow *int    `help:"Calendar days counted for recent completion."`
	ListLimit        *int    `help:"Default number of rows in lists (5-100)."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	models.ApplyDefaultSettings(&settings)

	if c.List {
		printSettings(ctx, settings)
		return nil
	}

	updated := false
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("invalid timezone: %s", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.TrendWindow != nil {
		if *c.TrendWindow <= 0 {
			return fmt.Errorf("trend window must be a positive number of days")
		}
		settings.TrendWindow = *c.TrendWindow
		updated = true
	}
	if c.CompletionWindow != nil {
		if *c.CompletionWindow <= 0 {
			return fmt.Errorf("completion window must be a positive number of days")
		}
		settings.CompletionWindow = *c.CompletionWindow
		updated = true
	}
	if c.ListLimit != nil {
		settings.ListLimit = constants.ClampListLimit(*c.ListLimit)
		if settings.ListLimit != *c.ListLimit {
			ctx.Printf("List limit clamped to %d\n", settings.ListLimit)
		}
		updated = true
	}

	if !updated {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	ctx.Println("Settings updated successfully.")
	return nil
}

func printSettings(ctx *cli.Context, s models.Settings) {
	pin := "not set"
	if s.HasPin() {
		pin = "set"
	}
	ctx.Println("Current Settings:")
	ctx.Printf("  Timezone:          %s\n", s.Timezone)
	ctx.Printf("  Trend Window:      %d days\n", s.TrendWindow)
	ctx.Printf("  Completion Window: %d days\n", s.CompletionWindow)
	ctx.Printf("  List Limit:        %d\n", s.ListLimit)
	ctx.Printf("  API PIN:           %s\n", pin)
}
