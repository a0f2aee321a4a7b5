package command

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// connectiveRe matches the connective words that separate independent
// commands inside one transcription. Whole-word only: "sandy" must not split.
var connectiveRe = regexp.MustCompile(`(?i)\band\b|\bthen\b`)

// Split breaks a transcription into an ordered list of normalized segments.
// Connectives inside double-quoted spans are treated as literal words and do
// not split. Empty fragments are dropped; the result preserves the original
// left-to-right command order. An empty or whitespace-only transcription
// yields nil.
func Split(transcription string) []string {
	if strings.TrimSpace(transcription) == "" {
		return nil
	}

	matches := connectiveRe.FindAllStringIndex(transcription, -1)

	fold := cases.Fold()
	var segments []string
	start := 0
	for _, m := range matches {
		// A connective after an odd number of double quotes sits inside a
		// quoted phrase and is part of the command text.
		if strings.Count(transcription[:m[0]], `"`)%2 == 1 {
			continue
		}
		if seg := strings.TrimSpace(transcription[start:m[0]]); seg != "" {
			segments = append(segments, fold.String(seg))
		}
		start = m[1]
	}
	if seg := strings.TrimSpace(transcription[start:]); seg != "" {
		segments = append(segments, fold.String(seg))
	}
	return segments
}
