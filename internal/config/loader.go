package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// validatable is implemented by every game config.
type validatable interface {
	Validate() error
}

// LoadLetters loads the Letter Collector configuration.
// Search order: customPath -> ~/.workshop/configs/letters.yaml -> ./configs/letters.yaml -> embedded default
func LoadLetters(customPath string) (LettersConfig, error) {
	return load("letters.yaml", customPath, defaultLettersYAML, DefaultLettersConfig)
}

// LoadViewer loads the 3D scene configuration.
// Search order: customPath -> ~/.workshop/configs/viewer.yaml -> ./configs/viewer.yaml -> embedded default
func LoadViewer(customPath string) (ViewerConfig, error) {
	return load("viewer.yaml", customPath, defaultViewerYAML, DefaultViewerConfig)
}

// load resolves a config file through the search order. Files are decoded on
// top of the hardcoded defaults, so partial files only override what they set.
// Only a broken customPath is an error; other broken files are logged and
// skipped.
func load[T validatable](filename, customPath string, embedded []byte, defaults func() T) (T, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			var zero T
			return zero, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data, defaults)
		if err != nil {
			var zero T
			return zero, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				logger().Warn("cannot read config, skipping", "path", path, "error", err)
			}
			continue
		}
		cfg, err := decode(data, defaults)
		if err != nil {
			logger().Warn("invalid config, skipping", "path", path, "error", err)
			continue
		}
		return cfg, nil
	}

	cfg, err := decode(embedded, defaults)
	if err != nil {
		logger().Error("embedded config is broken, using hardcoded defaults", "file", filename, "error", err)
		return defaults(), nil
	}
	return cfg, nil
}

// decode unmarshals YAML over the defaults and validates the result.
func decode[T validatable](data []byte, defaults func() T) (T, error) {
	cfg := defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".workshop", "configs", filename)
}

func logger() *log.Logger {
	return log.WithPrefix("config")
}
