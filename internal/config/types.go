package config

// ProviderType identifies an LLM provider.
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderOllama ProviderType = "ollama"
)

// Config is the top-level claimpilot configuration, corresponding to
// .claimpilot.yml.
type Config struct {
	Provider ProviderType `yaml:"provider" koanf:"provider"`
	Model    string       `yaml:"model" koanf:"model"`
	DBPath   string       `yaml:"db_path" koanf:"db_path"`
	Port     int          `yaml:"port" koanf:"port"`

	// APIBaseURL is where the chat engine submits new claims. When empty,
	// in-process submission against the local store is used instead.
	APIBaseURL string `yaml:"api_base_url" koanf:"api_base_url"`

	// OracleTimeoutSeconds bounds each oracle/executor/submitter call.
	OracleTimeoutSeconds int `yaml:"oracle_timeout_seconds" koanf:"oracle_timeout_seconds"`

	// AllowAllOrigins relaxes CORS for development.
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}
