package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned by FindConfigFile when no file exists in
// the working directory or any parent.
var ErrConfigNotFound = errors.New("config file not found")

// LoadSpec loads and validates a configuration file. Relative paths in the
// file are resolved against the file's directory.
func LoadSpec(path string) (*Spec, error) {
	cfg, err := LoadSpecWithoutValidation(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadSpecWithoutValidation loads a configuration file without validation.
func LoadSpecWithoutValidation(path string) (*Spec, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := parseSpec(data)
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}
	cfg.baseDir = filepath.Dir(abs)
	return cfg, nil
}

// LoadSpecFromBytes loads and validates a configuration from bytes.
func LoadSpecFromBytes(data []byte) (*Spec, error) {
	cfg, err := parseSpec(data)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// parseSpec decodes YAML over the built-in defaults. Keys present in the
// document replace the default value wholesale, lists included.
func parseSpec(data []byte) (*Spec, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return cfg, nil
}

// Discover locates and loads the configuration for a run. An explicit path
// must exist. Without one, seriesgen.yaml is searched from the working
// directory upwards, and the built-in defaults anchored at the working
// directory are used when none is found.
func Discover(explicitPath string) (*Spec, string, error) {
	if explicitPath != "" {
		cfg, err := LoadSpec(explicitPath)
		return cfg, explicitPath, err
	}

	path, err := FindConfigFile()
	if err == nil {
		cfg, err := LoadSpec(path)
		return cfg, path, err
	}
	if !errors.Is(err, ErrConfigNotFound) {
		return nil, "", err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("failed to get current directory: %w", err)
	}
	cfg := Default()
	cfg.baseDir = cwd
	return cfg, "", nil
}

// FindConfigFile searches the working directory and its parents for
// seriesgen.yaml.
func FindConfigFile() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return findConfigFrom(cwd)
}

func findConfigFrom(dir string) (string, error) {
	for {
		path := filepath.Join(dir, DefaultConfigFilename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%w: %s", ErrConfigNotFound, DefaultConfigFilename)
}

// SaveSpec writes a configuration to a file.
func SaveSpec(cfg *Spec, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
