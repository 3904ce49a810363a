package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/claimpilot/internal/claims"
	"github.com/ziadkadry99/claimpilot/internal/db"
	"github.com/ziadkadry99/claimpilot/internal/progress"
	"github.com/ziadkadry99/claimpilot/internal/synth"
)

var (
	seedCount int
	seedValue int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with synthesized sample claims",
	Long: `Generates fully synthesized claim records and inserts them into the
local database, for demos and for exercising retrieval queries.`,
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

		store := claims.NewStore(database)

		src := seedValue
		if src == 0 {
			src = time.Now().UnixNano()
		}
		synthesizer := synth.New(rand.New(rand.NewSource(src)))

		ctx := context.Background()
		reporter := progress.NewReporter()
		reporter.Start(seedCount)

		inserted := 0
		for i := 0; i < seedCount; i++ {
			draft, _ := synthesizer.Synthesize(claims.Partial{})
			claim, err := store.Insert(ctx, draft)
			if err != nil {
				// Policy numbers are random; a rare collision is skipped.
				reporter.Update(i+1, "skipped: "+err.Error())
				continue
			}
			inserted++
			reporter.Update(i+1, claim.ID)
		}
		reporter.Finish()

		fmt.Printf("Inserted %d claim(s) into %s\n", inserted, cfg.DBPath)
		return nil
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedCount, "count", 25, "number of claims to generate")
	seedCmd.Flags().Int64Var(&seedValue, "seed", 0, "random seed (0 = time-based)")
	rootCmd.AddCommand(seedCmd)
}
