package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported as the source when no config file was found.
const SourceEmbedded = "embedded"

// Load loads the skyhop configuration.
// Search order: customPath -> ~/.skyhop/configs/skyhop.yaml -> ./configs/skyhop.yaml -> embedded default.
// Files are decoded on top of the defaults, so a file only needs the keys it changes.
// A file that exists but cannot be parsed is an error, as is a result that fails Validate.
// The second return value names the file that was used.
func Load(customPath string) (SkyhopConfig, string, error) {
	cfg := base()

	// Custom path must exist
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, customPath, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		return decode(cfg, data, customPath)
	}

	candidates := []string{filepath.Join("configs", "skyhop.yaml")}
	if userCfgPath := userConfigPath("skyhop.yaml"); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return cfg, path, fmt.Errorf("config: failed to read %s: %w", path, err)
		}
		return decode(cfg, data, path)
	}

	return cfg, SourceEmbedded, cfg.Validate()
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (SkyhopConfig, error) {
	cfg, _, err := decode(base(), data, "input")
	return cfg, err
}

// Marshal renders a configuration as YAML.
func Marshal(cfg SkyhopConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to marshal: %w", err)
	}
	return data, nil
}

func decode(cfg SkyhopConfig, data []byte, source string) (SkyhopConfig, string, error) {
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, source, fmt.Errorf("config: failed to parse %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, source, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, source, nil
}

// base returns the embedded defaults, falling back to the hardcoded copy.
func base() SkyhopConfig {
	var cfg SkyhopConfig
	if err := yaml.Unmarshal(defaultSkyhopYAML, &cfg); err != nil {
		return DefaultSkyhopConfig()
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skyhop", "configs", filename)
}
