package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/claimpilot/internal/claims"
)

var submitAPIURL string

var submitCmd = &cobra.Command{
	Use:   "submit <claim.json>",
	Short: "Submit a complete claim file to a running claimpilot server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		apiURL := submitAPIURL
		if apiURL == "" {
			apiURL = cfg.APIBaseURL
		}
		if apiURL == "" {
			apiURL = fmt.Sprintf("http://127.0.0.1:%d", cfg.Port)
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading claim file: %w", err)
		}

		var draft claims.Draft
		if err := json.Unmarshal(data, &draft); err != nil {
			return fmt.Errorf("parsing claim file: %w", err)
		}

		client := claims.NewClient(apiURL, time.Duration(cfg.OracleTimeoutSeconds)*time.Second)
		claim, err := client.Submit(context.Background(), draft)
		if err != nil {
			return fmt.Errorf("submitting claim: %w", err)
		}

		out, _ := json.MarshalIndent(claim, "", "  ")
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	submitCmd.Flags().StringVar(&submitAPIURL, "api-url", "", "claims API base URL (default from config)")
	rootCmd.AddCommand(submitCmd)
}
