package desktop

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Screenshot captures the screen to path (PNG). An empty path picks a
// timestamped file in the temp directory. Returns the file written.
func (d *Desktop) Screenshot(path string) (string, error) {
	if path == "" {
		path = filepath.Join(os.TempDir(),
			fmt.Sprintf("hush-screenshot-%d.png", time.Now().UnixMilli()))
	}
	switch d.goos {
	case "darwin":
		return path, run("screencapture", "-x", path)
	case "linux":
		return path, run("gnome-screenshot", "-f", path)
	case "windows":
		script := fmt.Sprintf(`Add-Type -AssemblyName System.Windows.Forms,System.Drawing;`+
			`$b = [System.Windows.Forms.Screen]::PrimaryScreen.Bounds;`+
			`$bmp = New-Object System.Drawing.Bitmap $b.Width, $b.Height;`+
			`$g = [System.Drawing.Graphics]::FromImage($bmp);`+
			`$g.CopyFromScreen($b.Location, [System.Drawing.Point]::Empty, $b.Size);`+
			`$bmp.Save(%s)`, powershellQuote(path))
		return path, run("powershell", "-NoProfile", "-Command", script)
	default:
		return "", fmt.Errorf("screenshot not supported on %s", d.goos)
	}
}

// CaptureRegion captures a rectangular screen region to path (PNG). An empty
// path picks a timestamped file in the temp directory. Returns the file
// written.
func (d *Desktop) CaptureRegion(path string, x, y, width, height int) (string, error) {
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("region needs positive width and height, got %dx%d", width, height)
	}
	if path == "" {
		path = filepath.Join(os.TempDir(),
			fmt.Sprintf("hush-region-%d.png", time.Now().UnixMilli()))
	}
	switch d.goos {
	case "darwin":
		return path, run("screencapture", "-x",
			fmt.Sprintf("-R%d,%d,%d,%d", x, y, width, height), path)
	case "linux":
		// ImageMagick; gnome-screenshot cannot take coordinates.
		return path, run("import", "-window", "root", "-crop",
			fmt.Sprintf("%dx%d+%d+%d", width, height, x, y), path)
	case "windows":
		script := fmt.Sprintf(`Add-Type -AssemblyName System.Windows.Forms,System.Drawing;`+
			`$bmp = New-Object System.Drawing.Bitmap %d, %d;`+
			`$g = [System.Drawing.Graphics]::FromImage($bmp);`+
			`$g.CopyFromScreen(%d, %d, 0, 0, $bmp.Size);`+
			`$bmp.Save(%s)`, width, height, x, y, powershellQuote(path))
		return path, run("powershell", "-NoProfile", "-Command", script)
	default:
		return "", fmt.Errorf("screenshot not supported on %s", d.goos)
	}
}
