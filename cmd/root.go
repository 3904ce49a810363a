package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "claimpilot",
	Short: "AI assistant for creating and retrieving auto insurance claims",
	Long: `ClaimPilot turns free-text messages about auto insurance incidents
into fully populated claim records, or into read-only queries over the
existing claims, through a single conversational interface.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".claimpilot.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
