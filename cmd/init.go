package cmd

import (
	"github.com/spf13/cobra"
	"github.com/ziadkadry99/claimpilot/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize claimpilot configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure claimpilot and generates a .claimpilot.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
