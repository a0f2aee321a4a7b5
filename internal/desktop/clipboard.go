package desktop

import "fmt"

// ClipboardGet returns the current clipboard text.
func (d *Desktop) ClipboardGet() (string, error) {
	switch d.goos {
	case "darwin":
		return output("pbpaste")
	case "linux":
		return output("xclip", "-selection", "clipboard", "-o")
	case "windows":
		return output("powershell", "-NoProfile", "-Command", "Get-Clipboard")
	default:
		return "", fmt.Errorf("clipboard not supported on %s", d.goos)
	}
}

// ClipboardSet replaces the clipboard text.
func (d *Desktop) ClipboardSet(text string) error {
	switch d.goos {
	case "darwin":
		return runWithStdin(text, "pbcopy")
	case "linux":
		return runWithStdin(text, "xclip", "-selection", "clipboard", "-i")
	case "windows":
		return runWithStdin(text, "powershell", "-NoProfile", "-Command",
			"Set-Clipboard -Value ([Console]::In.ReadToEnd())")
	default:
		return fmt.Errorf("clipboard not supported on %s", d.goos)
	}
}
