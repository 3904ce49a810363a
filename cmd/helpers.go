package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ziadkadry99/claimpilot/internal/claims"
	"github.com/ziadkadry99/claimpilot/internal/config"
	"github.com/ziadkadry99/claimpilot/internal/db"
	"github.com/ziadkadry99/claimpilot/internal/engine"
	"github.com/ziadkadry99/claimpilot/internal/llm"
	"github.com/ziadkadry99/claimpilot/internal/oracle"
	"github.com/ziadkadry99/claimpilot/internal/synth"
)

// loadConfig reads and validates the configuration file.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// buildEngine assembles the orchestration engine from the configuration.
// When cfg.APIBaseURL is set, new claims are submitted over HTTP to that
// API; otherwise they are written to the local store directly.
func buildEngine(cfg *config.Config, database *db.DB) (*engine.Engine, *claims.Store, error) {
	provider, err := llm.NewProvider(string(cfg.Provider), cfg.Model)
	if err != nil {
		return nil, nil, fmt.Errorf("creating LLM provider: %w", err)
	}

	store := claims.NewStore(database)
	timeout := time.Duration(cfg.OracleTimeoutSeconds) * time.Second

	var submitter engine.Submitter
	if cfg.APIBaseURL != "" {
		submitter = claims.NewClient(cfg.APIBaseURL, timeout)
	} else {
		submitter = claims.NewStoreSubmitter(store)
	}

	eng := engine.New(engine.Config{
		Classifier:  oracle.NewClassifier(provider, cfg.Model),
		Extractor:   oracle.NewExtractor(provider, cfg.Model),
		QueryGen:    oracle.NewQueryGen(provider, cfg.Model),
		Executor:    claims.NewExecutor(store),
		Submitter:   submitter,
		Synthesizer: synth.New(rand.New(rand.NewSource(time.Now().UnixNano()))),
		CallTimeout: timeout,
	})

	return eng, store, nil
}
