package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application settings. It is read from an optional YAML
// file and can be overridden from the environment (see FromEnv).
type Config struct {
	// DataDir is where the JSON stores live.
	DataDir string `yaml:"data_dir"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	Import   Import `yaml:"import"`
}

type Import struct {
	// MergeStrategy is the default conflict policy for imports:
	// skip_duplicates, overwrite or keep_both.
	MergeStrategy string `yaml:"merge_strategy"`
}

func Default() Config {
	return Config{
		DataDir:  "data",
		LogLevel: "info",
		Import: Import{
			MergeStrategy: "skip_duplicates",
		},
	}
}

// Load reads the config file at path. A missing file is not an error; the
// defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
