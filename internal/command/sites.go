package command

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Site is one entry of the site directory.
type Site struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// SiteDirectory is an ordered name -> URL table. Position is priority: the
// first entry whose name appears inside a target string wins, so "open
// youtube music" resolves to youtube even if a later entry would also match.
type SiteDirectory struct {
	sites []Site
}

// DefaultSites returns the built-in whitelist in priority order.
func DefaultSites() []Site {
	return []Site{
		{Name: "youtube", URL: "https://www.youtube.com"},
		{Name: "gmail", URL: "https://mail.google.com"},
		{Name: "google", URL: "https://www.google.com"},
		{Name: "reddit", URL: "https://www.reddit.com"},
		{Name: "github", URL: "https://github.com"},
		{Name: "amazon", URL: "https://www.amazon.com"},
		{Name: "netflix", URL: "https://www.netflix.com"},
		{Name: "twitter", URL: "https://twitter.com"},
		{Name: "x", URL: "https://x.com"},
		{Name: "facebook", URL: "https://www.facebook.com"},
		{Name: "linkedin", URL: "https://www.linkedin.com"},
		{Name: "wikipedia", URL: "https://www.wikipedia.org"},
		{Name: "weather", URL: "https://weather.com"},
		{Name: "news", URL: "https://news.google.com"},
	}
}

// NewSiteDirectory builds an immutable directory from the given entries in
// order. Duplicate names keep the first occurrence, names are lower-cased.
func NewSiteDirectory(entries []Site) *SiteDirectory {
	seen := make(map[string]bool, len(entries))
	sites := make([]Site, 0, len(entries))
	for _, e := range entries {
		name := strings.ToLower(strings.TrimSpace(e.Name))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		sites = append(sites, Site{Name: name, URL: e.URL})
	}
	return &SiteDirectory{sites: sites}
}

// Match returns the first site whose name is a substring of target.
func (d *SiteDirectory) Match(target string) (Site, bool) {
	for _, s := range d.sites {
		if strings.Contains(target, s.Name) {
			return s, true
		}
	}
	return Site{}, false
}

// Sites returns the directory entries in priority order.
func (d *SiteDirectory) Sites() []Site {
	out := make([]Site, len(d.sites))
	copy(out, d.sites)
	return out
}

// LoadSitesFile reads extra site entries from a YAML list. YAML sequences
// keep document order, which is why this does not go through a generic
// config map: the file's order becomes the entries' match priority.
func LoadSitesFile(path string) ([]Site, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sites file: %w", err)
	}
	var sites []Site
	if err := yaml.Unmarshal(data, &sites); err != nil {
		return nil, fmt.Errorf("failed to parse sites file %s: %w", path, err)
	}
	return sites, nil
}
