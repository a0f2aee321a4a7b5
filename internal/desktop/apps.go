package desktop

import (
	"fmt"
	"os/exec"
)

// OpenApplication launches a desktop application by name, detached.
func (d *Desktop) OpenApplication(name string) error {
	var cmd *exec.Cmd
	switch d.goos {
	case "darwin":
		cmd = exec.Command("open", "-a", name)
	case "linux":
		if _, err := exec.LookPath(name); err != nil {
			return fmt.Errorf("application %s not found: %w", name, err)
		}
		cmd = exec.Command(name)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", name)
	default:
		return fmt.Errorf("application launch not supported on %s", d.goos)
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
