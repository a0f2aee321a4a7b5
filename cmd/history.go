package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently executed actions",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, _ := cmd.Flags().GetInt("limit")

		store, err := openHistoryStore()
		if err != nil {
			return fmt.Errorf("failed to open history: %w", err)
		}
		defer store.Close()

		records, err := store.Recent(n)
		if err != nil {
			return fmt.Errorf("failed to read history: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No actions recorded yet.")
			return nil
		}
		for _, rec := range records {
			status := "ok"
			if !rec.OK {
				status = "failed"
			}
			fmt.Printf("%s  %-14s %-7s %s\n",
				rec.Timestamp.Format("2006-01-02 15:04:05"), rec.Kind, status, rec.Detail)
		}
		return nil
	},
}

// historyExportCmd represents the history export command
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the action log as JSON lines",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openHistoryStore()
		if err != nil {
			return fmt.Errorf("failed to open history: %w", err)
		}
		defer store.Close()

		return store.ExportJSONL(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyExportCmd)

	historyCmd.Flags().IntP("limit", "n", 20, "number of actions to show")
}
