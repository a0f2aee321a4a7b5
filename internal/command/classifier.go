package command

import (
	"regexp"
	"strings"
)

var (
	searchStripRe = regexp.MustCompile(`^(?:search|find)(?:\s+for)?\s+`)
	openStripRe   = regexp.MustCompile(`^open\s+`)
)

// Classifier maps one normalized segment to an Intent using fixed-priority
// prefix matching: search/find first, then open, then unrecognized. It holds
// the site directory used to resolve open targets.
type Classifier struct {
	sites *SiteDirectory
}

// NewClassifier creates a classifier over the given site directory.
func NewClassifier(sites *SiteDirectory) *Classifier {
	return &Classifier{sites: sites}
}

// Classify returns the intent for a segment. The segment is expected to be
// trimmed and lower-cased already (Split does both). Classification never
// fails: anything that does not start with a recognized verb, or names an
// unknown open target, comes back as KindUnrecognized.
func (c *Classifier) Classify(segment string) Intent {
	switch {
	case strings.HasPrefix(segment, "search") || strings.HasPrefix(segment, "find"):
		query := strings.TrimSpace(searchStripRe.ReplaceAllString(segment, ""))
		return Intent{Kind: KindSearch, Query: query}

	case strings.HasPrefix(segment, "open"):
		target := strings.TrimSpace(openStripRe.ReplaceAllString(segment, ""))

		// Settings targets are carried raw; category resolution happens at
		// the platform boundary where the OS family is known.
		if strings.Contains(target, "setting") || strings.Contains(target, "control panel") {
			return Intent{Kind: KindOpenSettings, Target: target}
		}

		if site, ok := c.sites.Match(target); ok {
			return Intent{Kind: KindOpenSite, URL: site.URL}
		}
		return Intent{Kind: KindUnrecognized}

	default:
		return Intent{Kind: KindUnrecognized}
	}
}
