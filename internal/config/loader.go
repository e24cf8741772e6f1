package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configDirName is the per-user directory holding configs and the run journal.
const configDirName = ".void-runner"

// LoadRunner loads the runner configuration and validates it.
// Search order: customPath -> ~/.void-runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadRunner(customPath string) (RunnerConfig, error) {
	cfg, err := loadRunner(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadRunner(customPath string) (RunnerConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultRunnerConfig(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseRunner(data)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Unreadable or malformed search-path files are skipped.
	for _, path := range searchPaths("runner.yaml") {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := ParseRunner(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := ParseRunner(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil
	}
	return cfg, nil
}

// searchPaths lists where a config file is looked up, in priority order.
func searchPaths(filename string) []string {
	var paths []string
	if dir, err := DataDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "configs", filename))
	}
	return append(paths, filepath.Join("configs", filename))
}

// ParseRunner decodes YAML over the built-in defaults.
func ParseRunner(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultRunnerConfig(), err
	}
	return cfg, nil
}

// DataDir returns the per-user directory for configs, the journal, the SSH
// host key and screenshots. It is not created here.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot locate home directory: %w", err)
	}
	return filepath.Join(home, configDirName), nil
}

// DefaultJournalPath is the default location of the run journal database.
func DefaultJournalPath() string {
	return filepath.Join("~", configDirName, "runs.db")
}

// ApplyRunnerPreset modifies the config based on a difficulty preset.
func ApplyRunnerPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}
