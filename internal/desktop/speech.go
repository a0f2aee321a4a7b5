package desktop

import (
	"fmt"
	"strconv"
)

// Speak synthesizes text aloud. rate is words per minute; 0 keeps the engine
// default.
func (d *Desktop) Speak(text string, rate int) error {
	switch d.goos {
	case "darwin":
		args := []string{}
		if rate > 0 {
			args = append(args, "-r", strconv.Itoa(rate))
		}
		args = append(args, text)
		return run("say", args...)
	case "linux":
		args := []string{}
		if rate > 0 {
			args = append(args, "-s", strconv.Itoa(rate))
		}
		args = append(args, text)
		return run("espeak", args...)
	case "windows":
		script := `Add-Type -AssemblyName System.Speech;` +
			`$s = New-Object System.Speech.Synthesis.SpeechSynthesizer;`
		if rate > 0 {
			// SAPI rate is -10..10, roughly centered on 175 wpm.
			sapi := (rate - 175) / 25
			if sapi > 10 {
				sapi = 10
			}
			if sapi < -10 {
				sapi = -10
			}
			script += fmt.Sprintf(`$s.Rate = %d;`, sapi)
		}
		script += fmt.Sprintf(`$s.Speak(%s)`, powershellQuote(text))
		return run("powershell", "-NoProfile", "-Command", script)
	default:
		return fmt.Errorf("speech not supported on %s", d.goos)
	}
}
