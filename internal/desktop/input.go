package desktop

import (
	"fmt"
	"strings"
)

// Type injects text into the focused field.
func (d *Desktop) Type(text string) error {
	switch d.goos {
	case "linux":
		return run("xdotool", "type", "--clearmodifiers", text)
	case "darwin":
		script := fmt.Sprintf(`tell application "System Events" to keystroke %q`, text)
		return run("osascript", "-e", script)
	case "windows":
		script := fmt.Sprintf(
			`Add-Type -AssemblyName System.Windows.Forms; [System.Windows.Forms.SendKeys]::SendWait(%s)`,
			powershellQuote(text))
		return run("powershell", "-NoProfile", "-Command", script)
	default:
		return fmt.Errorf("typing not supported on %s", d.goos)
	}
}

// KeyPress presses a chord of keys simultaneously, e.g. ["ctrl","backspace"].
func (d *Desktop) KeyPress(keys []string) error {
	if len(keys) == 0 {
		return fmt.Errorf("no keys given")
	}
	switch d.goos {
	case "linux":
		return run("xdotool", "key", strings.Join(keys, "+"))
	case "darwin":
		script := fmt.Sprintf(`tell application "System Events" to keystroke %q`, keys[len(keys)-1])
		if mods := macModifiers(keys[:len(keys)-1]); mods != "" {
			script += " using {" + mods + "}"
		}
		return run("osascript", "-e", script)
	case "windows":
		script := fmt.Sprintf(
			`Add-Type -AssemblyName System.Windows.Forms; [System.Windows.Forms.SendKeys]::SendWait(%s)`,
			powershellQuote(sendKeysChord(keys)))
		return run("powershell", "-NoProfile", "-Command", script)
	default:
		return fmt.Errorf("key press not supported on %s", d.goos)
	}
}

func macModifiers(keys []string) string {
	var mods []string
	for _, k := range keys {
		switch strings.ToLower(k) {
		case "ctrl", "control":
			mods = append(mods, "control down")
		case "cmd", "command":
			mods = append(mods, "command down")
		case "alt", "option":
			mods = append(mods, "option down")
		case "shift":
			mods = append(mods, "shift down")
		}
	}
	return strings.Join(mods, ", ")
}

func sendKeysChord(keys []string) string {
	var b strings.Builder
	for _, k := range keys {
		switch strings.ToLower(k) {
		case "ctrl", "control":
			b.WriteString("^")
		case "alt":
			b.WriteString("%")
		case "shift":
			b.WriteString("+")
		case "tab":
			b.WriteString("{TAB}")
		case "backspace":
			b.WriteString("{BACKSPACE}")
		case "enter", "return":
			b.WriteString("{ENTER}")
		default:
			b.WriteString(k)
		}
	}
	return b.String()
}

// powershellQuote single-quotes a string for safe embedding in a PowerShell
// command line.
func powershellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
