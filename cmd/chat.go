package cmd

import (
	"context"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/claimpilot/internal/db"
	"github.com/ziadkadry99/claimpilot/internal/session"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the claim assistant in the terminal",
	Long: `Starts an interactive chat loop against the local database. Type a
message about an incident to file a claim, or ask for existing claims.
Type "exit" to leave.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, err := db.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		eng, _, err := buildEngine(cfg, database)
		if err != nil {
			return err
		}

		ctx := context.Background()
		sessions := session.NewStore(database)
		sess, err := sessions.Create(ctx, "cli")
		if err != nil {
			return fmt.Errorf("creating session: %w", err)
		}

		fmt.Println("Hi! How can I help you with your auto insurance claim today?")
		fmt.Println("(type \"exit\" to leave)")

		for {
			prompt := promptui.Prompt{Label: "You"}
			input, err := prompt.Run()
			if err != nil {
				// Ctrl-C or Ctrl-D ends the chat.
				return nil
			}
			if input == "exit" || input == "quit" {
				return nil
			}
			if input == "" {
				continue
			}

			st := eng.Run(ctx, input)

			if verbose {
				for _, step := range st.Steps {
					fmt.Printf("  - %s\n", step)
				}
			}
			fmt.Println(st.FinalResponse)
			fmt.Println()

			sessions.AddMessage(ctx, session.Message{
				SessionID: sess.ID,
				Role:      "user",
				Content:   input,
			})
			sessions.AddMessage(ctx, session.Message{
				SessionID: sess.ID,
				Role:      "assistant",
				Content:   st.FinalResponse,
				Steps:     st.Steps,
			})
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
