package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config represents the verdict configuration.
type Config struct {
	ScannerPath     string  `yaml:"scannerPath,omitempty"`
	GroundTruthPath string  `yaml:"groundTruthPath,omitempty"`
	Format          string  `yaml:"format"`
	TopN            int     `yaml:"topN"`
	PackageDepth    int     `yaml:"packageDepth"`
	FailUnder       float64 `yaml:"failUnder"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Format:       "text",
		TopN:         15,
		PackageDepth: 3,
		FailUnder:    0,
	}
}

// ConfigDir returns the platform-appropriate config directory for verdict.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "verdict"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "verdict"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "verdict"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "verdict"), nil
	default:
		return filepath.Join(home, ".config", "verdict"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil
// error if the file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.ScannerPath != "" {
		dst.ScannerPath = src.ScannerPath
	}
	if src.GroundTruthPath != "" {
		dst.GroundTruthPath = src.GroundTruthPath
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.TopN > 0 {
		dst.TopN = src.TopN
	}
	if src.PackageDepth > 0 {
		dst.PackageDepth = src.PackageDepth
	}
	if src.FailUnder > 0 {
		dst.FailUnder = src.FailUnder
	}
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("VERDICT_SCANNER"); v != "" {
		cfg.ScannerPath = v
	}
	if v := os.Getenv("VERDICT_GROUND_TRUTH"); v != "" {
		cfg.GroundTruthPath = v
	}
	if v := os.Getenv("VERDICT_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("VERDICT_TOP_N"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TopN = n
		}
	}
	if v := os.Getenv("VERDICT_PACKAGE_DEPTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.PackageDepth = n
		}
	}
	if v := os.Getenv("VERDICT_FAIL_UNDER"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.FailUnder = f
		}
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["scannerPath"]; ok && v != "" {
		cfg.ScannerPath = v
	}
	if v, ok := overrides["groundTruthPath"]; ok && v != "" {
		cfg.GroundTruthPath = v
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
	if v, ok := overrides["topN"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TopN = n
		}
	}
	if v, ok := overrides["packageDepth"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.PackageDepth = n
		}
	}
	if v, ok := overrides["failUnder"]; ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.FailUnder = f
		}
	}
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "scannerPath":
		cfg.ScannerPath = value
	case "groundTruthPath":
		cfg.GroundTruthPath = value
	case "format":
		cfg.Format = value
	case "topN":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("topN must be an integer: %w", err)
		}
		cfg.TopN = n
	case "packageDepth":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("packageDepth must be an integer: %w", err)
		}
		cfg.PackageDepth = n
	case "failUnder":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("failUnder must be a number: %w", err)
		}
		cfg.FailUnder = f
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
