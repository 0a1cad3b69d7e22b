package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"hexcast/internal/errors"
	"hexcast/internal/fusion"
	"hexcast/internal/signal"
)

// Config represents the complete application configuration
type Config struct {
	Profile string // default fusion profile
	Method  string // default casting method
	Log     LogConfig
	Paths   PathConfig
}

// LogConfig holds logging settings
type LogConfig struct {
	Level      string
	OutputFile string
}

// PathConfig holds optional override files for the static tables
type PathConfig struct {
	PolicyFile     string
	ThresholdsFile string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Profile: getEnv("HEXCAST_PROFILE", fusion.ProfileClassic),
		Method:  getEnv("HEXCAST_METHOD", "coin"),
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			OutputFile: os.Getenv("LOG_FILE"),
		},
		Paths: PathConfig{
			PolicyFile:     os.Getenv("HEXCAST_POLICY_FILE"),
			ThresholdsFile: os.Getenv("HEXCAST_THRESHOLDS_FILE"),
		},
	}
	return config, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// policyFile is the YAML shape of a policy override file.
type policyFile struct {
	Profiles map[string][]fusion.WeightVector `yaml:"profiles"`
}

// LoadPolicy reads a policy table from a YAML file. Each profile must carry
// exactly 7 vectors indexed 0..6 by changing-line count. An empty path
// returns the authored defaults.
func LoadPolicy(path string) (fusion.PolicyTable, error) {
	if path == "" {
		return fusion.DefaultPolicy(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read policy file %s", path)
	}
	var parsed policyFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, errors.Wrapf(err, "failed to parse policy file %s", path)
	}

	table := fusion.PolicyTable{}
	for profile, vectors := range parsed.Profiles {
		if len(vectors) != 7 {
			return nil, errors.ConfigInvalid(
				fmt.Sprintf("profile %q has %d entries, want 7", profile, len(vectors)))
		}
		var row [7]fusion.WeightVector
		copy(row[:], vectors)
		table[profile] = row
	}
	if err := table.Validate(); err != nil {
		return nil, errors.Wrap(err, "policy file validation failed")
	}
	return table, nil
}

// thresholdsFile is the YAML shape of a threshold-definitions override file.
type thresholdsFile struct {
	Metrics map[string]signal.Definition `yaml:"metrics"`
}

// LoadThresholds reads threshold definitions from a YAML file. An empty path
// returns the built-in defaults.
func LoadThresholds(path string) (map[string]signal.Definition, error) {
	if path == "" {
		return signal.DefaultDefinitions(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read thresholds file %s", path)
	}
	var parsed thresholdsFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, errors.Wrapf(err, "failed to parse thresholds file %s", path)
	}
	if err := signal.ValidateDefinitions(parsed.Metrics); err != nil {
		return nil, errors.Wrap(err, "thresholds file validation failed")
	}
	return parsed.Metrics, nil
}
