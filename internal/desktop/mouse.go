package desktop

import (
	"fmt"
	"strconv"
	"strings"
)

const windowsMousePrelude = `$sig = '[DllImport("user32.dll")] public static extern void mouse_event(int flags, int dx, int dy, int data, int extra); [DllImport("user32.dll")] public static extern bool SetCursorPos(int x, int y);'; $u = Add-Type -MemberDefinition $sig -Name U -Namespace Hush -PassThru;`

// Click presses a mouse button at absolute screen coordinates.
func (d *Desktop) Click(x, y int, button string) error {
	switch d.goos {
	case "linux":
		btn, err := xdotoolButton(button)
		if err != nil {
			return err
		}
		return run("xdotool", "mousemove", strconv.Itoa(x), strconv.Itoa(y), "click", btn)
	case "darwin":
		// System Events only synthesizes primary clicks.
		if b := strings.ToLower(button); b != "" && b != "left" {
			return fmt.Errorf("%s click not supported on darwin", button)
		}
		script := fmt.Sprintf(`tell application "System Events" to click at {%d, %d}`, x, y)
		return run("osascript", "-e", script)
	case "windows":
		down, up, err := windowsButtonFlags(button)
		if err != nil {
			return err
		}
		script := fmt.Sprintf("%s $u::SetCursorPos(%d,%d) | Out-Null; $u::mouse_event(%d,0,0,0,0); $u::mouse_event(%d,0,0,0,0)",
			windowsMousePrelude, x, y, down, up)
		return run("powershell", "-NoProfile", "-Command", script)
	default:
		return fmt.Errorf("click not supported on %s", d.goos)
	}
}

// Scroll scrolls the active area in a direction by an amount in pixels.
// Non-positive amounts fall back to 500.
func (d *Desktop) Scroll(direction string, amount int) error {
	if amount <= 0 {
		amount = 500
	}
	switch d.goos {
	case "linux":
		btn, err := xdotoolScrollButton(direction)
		if err != nil {
			return err
		}
		return run("xdotool", "click", "--repeat", strconv.Itoa(scrollSteps(amount)), btn)
	case "darwin":
		code, err := macScrollKeyCode(direction)
		if err != nil {
			return err
		}
		return run("osascript", "-e", `tell application "System Events" to key code `+code)
	case "windows":
		flag, delta, err := windowsWheel(direction, amount)
		if err != nil {
			return err
		}
		script := fmt.Sprintf("%s $u::mouse_event(%d,0,0,%d,0)", windowsMousePrelude, flag, delta)
		return run("powershell", "-NoProfile", "-Command", script)
	default:
		return fmt.Errorf("scroll not supported on %s", d.goos)
	}
}

func xdotoolButton(button string) (string, error) {
	switch strings.ToLower(button) {
	case "", "left":
		return "1", nil
	case "middle":
		return "2", nil
	case "right":
		return "3", nil
	default:
		return "", fmt.Errorf("unknown mouse button %q", button)
	}
}

func xdotoolScrollButton(direction string) (string, error) {
	switch strings.ToLower(direction) {
	case "up":
		return "4", nil
	case "down":
		return "5", nil
	case "left":
		return "6", nil
	case "right":
		return "7", nil
	default:
		return "", fmt.Errorf("unknown scroll direction %q", direction)
	}
}

// scrollSteps converts a pixel amount to wheel detents (120 px per detent).
func scrollSteps(amount int) int {
	steps := amount / 120
	if steps < 1 {
		steps = 1
	}
	return steps
}

// macScrollKeyCode maps vertical scroll directions to page-key codes;
// horizontal scrolling has no System Events equivalent.
func macScrollKeyCode(direction string) (string, error) {
	switch strings.ToLower(direction) {
	case "up":
		return "116", nil
	case "down":
		return "121", nil
	default:
		return "", fmt.Errorf("%s scroll not supported on darwin", direction)
	}
}

func windowsButtonFlags(button string) (down, up int, err error) {
	switch strings.ToLower(button) {
	case "", "left":
		return 0x0002, 0x0004, nil
	case "right":
		return 0x0008, 0x0010, nil
	case "middle":
		return 0x0020, 0x0040, nil
	default:
		return 0, 0, fmt.Errorf("unknown mouse button %q", button)
	}
}

func windowsWheel(direction string, amount int) (flag, delta int, err error) {
	switch strings.ToLower(direction) {
	case "up":
		return 0x0800, amount, nil
	case "down":
		return 0x0800, -amount, nil
	case "right":
		return 0x1000, amount, nil
	case "left":
		return 0x1000, -amount, nil
	default:
		return 0, 0, fmt.Errorf("unknown scroll direction %q", direction)
	}
}
