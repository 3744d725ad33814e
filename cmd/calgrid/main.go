package main

import (
	"github.com/alecthomas/kong"

	"github.com/julianstephens/calgrid/internal/cli"
	"github.com/julianstephens/calgrid/internal/config"
	"github.com/julianstephens/calgrid/internal/constants"
	apperrors "github.com/julianstephens/calgrid/internal/errors"
	"github.com/julianstephens/calgrid/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"string" default:"${config}"`
	Debug   bool   `help:"Enable debug logging."`

	Init      cli.InitCmd      `cmd:"" help:"Write the config file and initialize the event store."`
	Tui       cli.TuiCmd       `cmd:"" help:"Launch the interactive calendar." default:"1"`
	Show      cli.ShowCmd      `cmd:"" help:"Print a month, week, day or availability view."`
	Calendars cli.CalendarsCmd `cmd:"" help:"List configured calendars."`
	Add       cli.AddCmd       `cmd:"" help:"Add an event to the event store."`
	Delete    cli.DeleteCmd    `cmd:"" help:"Delete an event from the event store."`
	Import    cli.ImportCmd    `cmd:"" help:"Import events from an iCalendar file."`
	Backup    cli.BackupCmd    `cmd:"" help:"Manage event store backups."`
	Doctor    cli.DoctorCmd    `cmd:"" help:"Run health checks and diagnostics."`
	DebugCmd  cli.DebugCmd     `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
	Keyring   cli.KeyringCmd   `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Calendar month, week, day and availability views over local or shared event stores"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version": constants.Version,
			"config":  constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: config.Dir(CLI.Config)}); err != nil {
		apperrors.Fatalf("failed to initialize logger: %w", err)
	}

	appCtx, err := cli.NewContext(CLI.Config)
	if err != nil {
		apperrors.Fatalf("failed to load config %s: %w", CLI.Config, err)
	}

	apperrors.Fatal(ctx.Run(appCtx))
}
