package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/jgivc/weatherdata/internal/app"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the data summary as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		a := app.New(cfgFileName)
		if err := a.Init(); err != nil {
			return err
		}

		summary, err := a.Summary(cmd.Context())
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")

		return enc.Encode(summary)
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
