package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/daylog/internal/cli"
	"github.com/julianstephens/daylog/internal/cli/backups"
	"github.com/julianstephens/daylog/internal/cli/daily"
	"github.com/julianstephens/daylog/internal/cli/decisions"
	"github.com/julianstephens/daylog/internal/cli/entries"
	"github.com/julianstephens/daylog/internal/cli/settings"
	"github.com/julianstephens/daylog/internal/cli/system"
	"github.com/julianstephens/daylog/internal/constants"
	"github.com/julianstephens/daylog/internal/errors"
	"github.com/julianstephens/daylog/internal/logger"
	"github.com/julianstephens/daylog/internal/storage"
)

var CLI struct {
	Version      kong.VersionFlag
	Config       string `help:"Database path (.db for SQLite, .json for a JSON file), a PostgreSQL connection string without credentials, or 'keyring'." env:"DAYLOG_DB_CONNECTION" default:"${default_config}"`
	ServerConfig string `help:"YAML config for 'daylog serve'." type:"path" env:"DAYLOG_SERVER_CONFIG"`
	Debug        bool   `help:"Log debug output to stderr."`

	Init     system.InitCmd        `cmd:"" help:"Initialize daylog storage."`
	Doctor   system.DoctorCmd      `cmd:"" help:"Run health checks and diagnostics."`
	Tui      system.TuiCmd         `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Morning  daily.MorningCmd      `cmd:"" help:"Record the morning check-in: intentions and mood."`
	Evening  daily.EveningCmd      `cmd:"" help:"Record the evening check-in: reflection, top win and mood."`
	Day      daily.DayCmd          `cmd:"" help:"Show the record for a day."`
	History  daily.HistoryCmd      `cmd:"" help:"List recent daily records."`
	Stats    daily.StatsCmd        `cmd:"" help:"Show streaks and recent completion."`
	Trend    daily.TrendCmd        `cmd:"" help:"Plot the mood trend."`
	Export   daily.ExportCmd       `cmd:"" help:"Export the journal as Markdown or JSON."`
	Decision decisions.DecisionCmd `cmd:"" help:"Log and review decisions."`
	Entry    entries.EntryCmd      `cmd:"" help:"Write and review journal entries."`
	Backup   backups.BackupCmd     `cmd:"" help:"Manage database backups."`
	Settings settings.SettingsCmd  `cmd:"" help:"Manage application settings."`
	Pin      system.PinCmd         `cmd:"" help:"Manage the API PIN."`
	Serve    system.ServeCmd       `cmd:"" help:"Serve the journal over an authenticated HTTP API."`
	Keyring  system.KeyringCmd     `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
	DebugCmd system.DebugCmd       `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
}

// Commands that open the store themselves, or never touch it.
var skipLoad = map[string]bool{
	"init":    true,
	"doctor":  true,
	"keyring": true,
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily journal: morning intentions, evening reflection, streaks and mood trends."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir(CLI.Config)}); err != nil {
		errors.Fatalf("failed to initialize logger: %v", err)
	}

	store, err := storage.Open(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}
	defer store.Close()

	command := strings.Fields(ctx.Command())[0]
	if !skipLoad[command] {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	appCtx := cli.NewContext(store)
	appCtx.ServerConfig = CLI.ServerConfig

	logger.Debug("Running command", "command", ctx.Command(), "backend", storage.Kind(CLI.Config))
	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}

// configDir holds logs. File backends keep them next to the database;
// PostgreSQL uses the default config directory.
func configDir(location string) string {
	if storage.Kind(location) != storage.BackendPostgres {
		if path, err := storage.ExpandPath(location); err == nil {
			return filepath.Dir(path)
		}
	}
	path, err := storage.ExpandPath(constants.DefaultConfigPath)
	if err != nil {
		return filepath.Join(os.TempDir(), constants.AppName)
	}
	return filepath.Dir(path)
}
