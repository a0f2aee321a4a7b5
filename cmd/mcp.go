package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bgdnvk/hush/internal/desktop"
	"github.com/bgdnvk/hush/internal/mcpd"
	"github.com/bgdnvk/hush/internal/platform"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the desktop tool set over MCP (stdio)",
	Long: `Run hush as a Model Context Protocol server exposing the desktop
tools: silent command execution, clipboard, typing, screenshots, speech,
and the action history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		debug := viper.GetBool("debug")

		dispatcher, store, cleanup := buildDispatcher(debug)
		defer cleanup()

		srv := mcpd.New(version, mcpd.Deps{
			Dispatcher: dispatcher,
			Browser:    platform.NewBrowser(runtime.GOOS, viper.GetString("browser.app")),
			Desktop:    desktop.New(runtime.GOOS),
			Store:      store,
		})
		return srv.ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
