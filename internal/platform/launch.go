package platform

import "os/exec"

// launchFunc starts an external program. Injectable so tests can capture
// launches without touching the host OS.
type launchFunc func(name string, args ...string) error

// startDetached starts a process and releases it immediately. Launched
// programs (browsers, settings panes) are never awaited, tracked, or
// cancelled.
func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
