// Package notifier delivers desktop notifications. On Linux it speaks the
// org.freedesktop.Notifications D-Bus interface directly; on macOS and
// Windows it shells out to the platform notifier.
package notifier

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/godbus/dbus/v5"

	"github.com/julianstephens/nudge/internal/constants"
)

type Notifier struct{}

func New() *Notifier {
	return &Notifier{}
}

// Notify surfaces a notification with the given summary and body. It
// returns an error when no delivery path is available; callers treat that as
// a degraded (not fatal) condition.
func (n *Notifier) Notify(summary, body string) error {
	switch runtime.GOOS {
	case "linux":
		return notifyDBus(summary, body)
	case "darwin":
		return notifyOSAScript(summary, body)
	case "windows":
		return notifyPowershell(summary, body)
	default:
		return fmt.Errorf("no notification path for %s", runtime.GOOS)
	}
}

// Available reports whether a notification path can be reached without
// sending anything. Used by doctor.
func (n *Notifier) Available() error {
	switch runtime.GOOS {
	case "linux":
		conn, err := dbus.SessionBus()
		if err != nil {
			return fmt.Errorf("session bus unreachable: %w", err)
		}
		defer conn.Close()
		return nil
	case "darwin":
		_, err := exec.LookPath("osascript")
		return err
	case "windows":
		_, err := exec.LookPath("powershell")
		return err
	default:
		return fmt.Errorf("no notification path for %s", runtime.GOOS)
	}
}

func notifyDBus(summary, body string) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return fmt.Errorf("failed to connect to session bus: %w", err)
	}
	defer conn.Close()

	obj := conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		constants.AppName,         // app_name
		uint32(0),                 // replaces_id
		"",                        // app_icon
		summary,                   // summary
		body,                      // body
		[]string{},                // actions
		map[string]dbus.Variant{}, // hints
		int32(constants.NotificationDurationMs),
	)
	if call.Err != nil {
		return fmt.Errorf("notification call failed: %w", call.Err)
	}
	return nil
}

func notifyOSAScript(summary, body string) error {
	script := fmt.Sprintf("display notification %q with title %q", body, summary)
	if err := exec.Command("osascript", "-e", script).Run(); err != nil {
		return fmt.Errorf("osascript failed: %w", err)
	}
	return nil
}

func notifyPowershell(summary, body string) error {
	script := fmt.Sprintf(
		"[System.Windows.Forms.MessageBox]::Show(%q, %q) | Out-Null",
		body, summary,
	)
	if err := exec.Command("powershell", "-NoProfile", "-Command",
		"Add-Type -AssemblyName System.Windows.Forms; "+script).Run(); err != nil {
		return fmt.Errorf("powershell notification failed: %w", err)
	}
	return nil
}
