package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/nudge/internal/alarm"
	"github.com/julianstephens/nudge/internal/cli"
	"github.com/julianstephens/nudge/internal/cli/reminders"
	"github.com/julianstephens/nudge/internal/cli/system"
	"github.com/julianstephens/nudge/internal/constants"
	"github.com/julianstephens/nudge/internal/engine"
	"github.com/julianstephens/nudge/internal/errors"
	"github.com/julianstephens/nudge/internal/logger"
	"github.com/julianstephens/nudge/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path (.json for a JSON store, anything else for SQLite)." type:"string" default:"~/.config/nudge/nudge.json"`
	Debug   bool   `help:"Enable debug logging."`

	Init    system.InitCmd       `cmd:"" help:"Initialize nudge storage."`
	Doctor  system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Tui     system.TuiCmd        `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Add     reminders.AddCmd     `cmd:"" help:"Add a new reminder."`
	List    reminders.ListCmd    `cmd:"" help:"List upcoming reminders."`
	History reminders.HistoryCmd `cmd:"" help:"Show all reminders with status."`
	Done    reminders.DoneCmd    `cmd:"" help:"Mark a reminder as completed."`
	Delete  reminders.DeleteCmd  `cmd:"" help:"Delete a reminder."`
	Watch   system.WatchCmd      `cmd:"" help:"Run the reminder poller in the foreground."`
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Single-user reminder tracker with alarms"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	storePath := expandHome(CLI.Config)
	store := storage.NewProvider(storePath)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(storePath),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	svc := engine.New(store, alarm.New())

	appCtx := &cli.Context{
		Store:  store,
		Engine: svc,
	}

	// Load the collection before running the command; init manages its
	// own store lifecycle.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := svc.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
