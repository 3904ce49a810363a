package config

// DefaultConfig returns the configuration used when no file or environment
// overrides are present.
func DefaultConfig() *Config {
	return &Config{
		Provider:             ProviderOpenAI,
		Model:                "gpt-4.1-nano",
		DBPath:               "claimpilot.db",
		Port:                 8722,
		OracleTimeoutSeconds: 30,
	}
}
