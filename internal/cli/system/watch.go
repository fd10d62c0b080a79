package system

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/nudge/internal/cli"
	"github.com/julianstephens/nudge/internal/constants"
	"github.com/julianstephens/nudge/internal/logger"
	"github.com/julianstephens/nudge/internal/models"
)

type WatchCmd struct {
	Interval time.Duration `help:"How often to re-check pending reminders." default:"5s"`
	Quiet    bool          `help:"Suppress per-transition output."`
}

// Run polls the status engine until interrupted. A lockfile plus a process
// check keeps a second watch from firing duplicate alarms for the same
// store.
func (c *WatchCmd) Run(ctx *cli.Context) error {
	lockPath := filepath.Join(ctx.ConfigDir(), constants.WatchLockfileName)
	if err := acquireLock(lockPath); err != nil {
		return err
	}
	defer os.Remove(lockPath)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	if !c.Quiet {
		fmt.Printf("Watching %d reminder(s), checking every %s. Ctrl-C to stop.\n",
			len(ctx.Engine.Reminders()), c.Interval)
	}
	logger.Info("Watch started", "interval", c.Interval)

	ticker := time.NewTicker(c.Interval)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			if ctx.Engine.Evaluate(now) && !c.Quiet {
				for _, r := range ctx.Engine.Reminders() {
					if r.Status == models.StatusMissed && r.AlertedAt != nil && recentlyAlerted(r.AlertedAt, c.Interval) {
						fmt.Printf("⏰ %s (%s)\n", r.Title, r.DateTime)
					}
				}
			}
		case <-sig:
			if !c.Quiet {
				fmt.Println("\nStopping watch.")
			}
			logger.Info("Watch stopped")
			return nil
		}
	}
}

func recentlyAlerted(alertedAt *string, interval time.Duration) bool {
	t, err := time.Parse(time.RFC3339, *alertedAt)
	if err != nil {
		return false
	}
	return time.Since(t) <= interval*2
}

// watchStatus reports whether a live watch process holds the lockfile.
func watchStatus(configDir string) (int, bool) {
	content, err := os.ReadFile(filepath.Join(configDir, constants.WatchLockfileName))
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(content)))
	if err != nil {
		return 0, false
	}
	process, err := ps.FindProcess(pid)
	if err != nil || process == nil || !strings.HasPrefix(process.Executable(), constants.AppName) {
		return 0, false
	}
	return pid, true
}

// acquireLock writes this process's pid to the lockfile after confirming no
// live nudge process holds it.
func acquireLock(path string) error {
	if content, err := os.ReadFile(path); err == nil {
		pid, convErr := strconv.Atoi(strings.TrimSpace(string(content)))
		if convErr == nil {
			if process, findErr := ps.FindProcess(pid); findErr == nil && process != nil &&
				strings.HasPrefix(process.Executable(), constants.AppName) {
				return fmt.Errorf("another watch is already running (pid %d)", pid)
			}
		}
		// Stale lock from a dead or foreign process.
		logger.Warn("Removing stale watch lockfile", "path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0600); err != nil {
		return fmt.Errorf("failed to write lockfile: %w", err)
	}
	return nil
}
