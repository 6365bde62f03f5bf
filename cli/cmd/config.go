package cmd

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is scarab's CLI configuration, yaml-tagged exactly in the style of
// the teacher's DatabaseConfig. A missing file is not an error: defaults
// apply, matching the teacher's tolerant optional-config pattern.
type Config struct {
	Prompt      string `yaml:"prompt"`
	HistoryFile string `yaml:"history_file"`
	Verbose     bool   `yaml:"verbose"`
}

func defaultConfig() Config {
	return Config{Prompt: "> "}
}

// LoadConfig reads and parses the YAML config at path, falling back to
// defaults (not an error) when the file does not exist.
func LoadConfig(path string) (Config, error) {
	result := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return Config{}, err
	}

	if err := yaml.Unmarshal(data, &result); err != nil {
		return Config{}, err
	}
	return result, nil
}
