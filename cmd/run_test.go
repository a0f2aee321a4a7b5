package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestBuildSiteDirectory_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := buildSiteDirectory(false)
	sites := dir.Sites()
	if len(sites) != 14 {
		t.Fatalf("len(sites) = %d, want the 14 built-ins", len(sites))
	}
	if sites[0].Name != "youtube" {
		t.Errorf("first site = %s, want youtube", sites[0].Name)
	}
}

func TestBuildSiteDirectory_ExtraFileAppendsAfterBuiltins(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "sites.yaml")
	content := `- name: hackernews
  url: https://news.ycombinator.com
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	viper.Set("sites.file", path)

	sites := buildSiteDirectory(false).Sites()
	if len(sites) != 15 {
		t.Fatalf("len(sites) = %d, want 15", len(sites))
	}
	if sites[14].Name != "hackernews" {
		t.Errorf("extra site = %s, want hackernews appended last", sites[14].Name)
	}
}

func TestBuildSiteDirectory_BadFileIgnored(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("sites.file", filepath.Join(t.TempDir(), "missing.yaml"))

	sites := buildSiteDirectory(false).Sites()
	if len(sites) != 14 {
		t.Errorf("len(sites) = %d, want the built-ins only", len(sites))
	}
}
