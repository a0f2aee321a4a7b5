package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// sitesCmd represents the sites command
var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "List the site directory in match-priority order",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		dir := buildSiteDirectory(viper.GetBool("debug"))

		switch format {
		case "yaml":
			enc := yaml.NewEncoder(os.Stdout)
			defer enc.Close()
			return enc.Encode(dir.Sites())
		case "text":
			for i, s := range dir.Sites() {
				fmt.Printf("%2d  %-12s %s\n", i+1, s.Name, s.URL)
			}
			return nil
		default:
			return fmt.Errorf("unknown format %q (want text or yaml)", format)
		}
	},
}

func init() {
	rootCmd.AddCommand(sitesCmd)

	sitesCmd.Flags().String("format", "text", "output format: text or yaml")
}
