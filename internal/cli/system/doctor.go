package system

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/julianstephens/nudge/internal/cli"
	"github.com/julianstephens/nudge/internal/notifier"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: store readable
	if _, err := ctx.Store.GetAllReminders(); err != nil {
		fmt.Printf("❌ Store readable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Store readable: OK (%s)\n", ctx.Store.GetConfigPath())
	}

	// Check 2: notification path (warning only; alarms degrade gracefully)
	if err := notifier.New().Available(); err != nil {
		fmt.Printf("⚠ Notifications: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Notifications: OK\n")
	}

	// Check 3: audio player (warning only)
	if player := findAudioPlayer(); player == "" {
		fmt.Printf("⚠ Audio player: WARNING (none found, alarms fall back to the terminal bell)\n")
	} else {
		fmt.Printf("✓ Audio player: OK (%s)\n", player)
	}

	// Check 4: watch process
	if pid, running := watchStatus(ctx.ConfigDir()); running {
		fmt.Printf("✓ Watch: running (pid %d)\n", pid)
	} else {
		fmt.Printf("• Watch: not running (alarms fire only while the TUI or 'nudge watch' is open)\n")
	}

	fmt.Println()
	if hasError {
		return fmt.Errorf("diagnostics found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func findAudioPlayer() string {
	var candidates []string
	switch runtime.GOOS {
	case "darwin":
		candidates = []string{"afplay"}
	case "linux":
		candidates = []string{"paplay", "aplay", "ffplay"}
	case "windows":
		candidates = []string{"powershell"}
	}

	for _, c := range candidates {
		if _, err := exec.LookPath(c); err == nil {
			return c
		}
	}
	return ""
}
