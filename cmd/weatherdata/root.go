package main

import (
	"github.com/spf13/cobra"
)

var cfgFileName string

var rootCmd = &cobra.Command{
	Use:   "weatherdata",
	Short: "Read-only HTTP service over a weather CSV hierarchy",
	Long: `weatherdata serves a directory tree of weather CSV files organized as
forecast type / city / district / town / variable. It lists every level,
groups files by variable, previews legacy Korean encoded files and streams downloads.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFileName, "config", "c", "config.yml", "Path to config file")
}
