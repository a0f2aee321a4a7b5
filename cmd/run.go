package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bgdnvk/hush/internal/command"
	"github.com/bgdnvk/hush/internal/history"
	"github.com/bgdnvk/hush/internal/platform"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [words...]",
	Short: "Silently execute one transcribed command",
	Long: `Join all trailing arguments into one transcription and execute it.

Examples:
  hush run open youtube
  hush run search for weather in tokyo
  hush run open settings sound then open gmail`,
	// Zero args is a valid invocation: an empty transcription yields zero
	// segments, and the process still exits 0.
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		transcription := strings.Join(args, " ")
		debug := viper.GetBool("debug")

		dispatcher, _, cleanup := buildDispatcher(debug)
		defer cleanup()

		dispatcher.Execute(transcription)

		// Always exit 0: the voice pipeline has no consumer for a failure
		// code, and an unrecognized command is a normal outcome.
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// buildDispatcher wires the interpretation core against the host platform.
// The returned store may be nil when history could not be opened; the
// returned cleanup is always safe to call.
func buildDispatcher(debug bool) (*command.Dispatcher, *history.Store, func()) {
	sites := buildSiteDirectory(debug)
	browser := platform.NewBrowser(runtime.GOOS, viper.GetString("browser.app"))
	gateway := platform.NewGateway(runtime.GOOS, browser)

	var recorder command.Recorder
	store, err := openHistoryStore()
	cleanup := func() {}
	if err == nil {
		recorder = store
		cleanup = func() { store.Close() }
	} else {
		store = nil
		if debug {
			fmt.Printf("hush: history disabled: %v\n", err)
		}
	}

	classifier := command.NewClassifier(sites)
	return command.NewDispatcher(classifier, gateway, recorder, debug), store, cleanup
}

// buildSiteDirectory assembles the site table: built-ins first, then any
// extra entries from the configured YAML file, in file order.
func buildSiteDirectory(debug bool) *command.SiteDirectory {
	entries := command.DefaultSites()
	if path := viper.GetString("sites.file"); path != "" {
		extra, err := command.LoadSitesFile(path)
		if err != nil {
			if debug {
				fmt.Printf("hush: ignoring sites file: %v\n", err)
			}
		} else {
			entries = append(entries, extra...)
		}
	}
	return command.NewSiteDirectory(entries)
}

func openHistoryStore() (*history.Store, error) {
	path := viper.GetString("history.path")
	if path == "" {
		var err error
		path, err = history.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return history.Open(path)
}
