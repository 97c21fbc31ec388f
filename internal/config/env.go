package config

import "os"

// FromEnv applies environment overrides on top of cfg. Unset variables leave
// the value alone.
func FromEnv(cfg Config) Config {
	if v := os.Getenv("TODO_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("TODO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TODO_MERGE_STRATEGY"); v != "" {
		cfg.Import.MergeStrategy = v
	}
	return cfg
}
