package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .claimpilot.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to claimpilot! Let's configure your assistant.")
	fmt.Println()

	defaults := DefaultConfig()

	// 1. Provider selection.
	providerPrompt := promptui.Select{
		Label: "Select LLM provider",
		Items: []string{"openai", "ollama"},
	}
	_, providerStr, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("provider selection: %w", err)
	}
	provider := ProviderType(providerStr)

	// 2. Model.
	defaultModel := defaults.Model
	if provider == ProviderOllama {
		defaultModel = "llama3"
	}
	modelPrompt := promptui.Prompt{
		Label:   "Model",
		Default: defaultModel,
	}
	model, err := modelPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}

	// 3. Database path.
	dbPrompt := promptui.Prompt{
		Label:   "SQLite database path",
		Default: defaults.DBPath,
	}
	dbPath, err := dbPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("db path: %w", err)
	}

	// 4. Port.
	portPrompt := promptui.Prompt{
		Label:   "Server port",
		Default: strconv.Itoa(defaults.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	port, _ := strconv.Atoi(portStr)

	cfg := &Config{
		Provider:             provider,
		Model:                model,
		DBPath:               dbPath,
		Port:                 port,
		OracleTimeoutSeconds: defaults.OracleTimeoutSeconds,
	}

	if provider == ProviderOpenAI && os.Getenv("OPENAI_API_KEY") == "" {
		fmt.Println("\nNote: Set OPENAI_API_KEY in your environment before running claimpilot serve.")
	}

	configPath := ".claimpilot.yml"
	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}
