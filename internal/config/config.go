package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/calories/internal/catalog"
	apperrors "github.com/julianstephens/calories/internal/errors"
	"github.com/julianstephens/calories/internal/models"
)

// FileName is the optional config file inside the config directory.
const FileName = "config.yaml"

type Config struct {
	Debug    bool           `yaml:"debug"`
	Log      LogConfig      `yaml:"log"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

type LogConfig struct {
	MaxSizeMB  int  `yaml:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days"`
	Compress   bool `yaml:"compress"`
}

// DefaultsConfig seeds a new screen. These are preferences, not saved input.
type DefaultsConfig struct {
	Sex       string `yaml:"sex"`
	Intensity string `yaml:"intensity"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Log: LogConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   true,
		},
	}
}

// LoadDotEnv loads a .env file from the working directory if one exists.
// Variables already set in the environment win.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load reads <dir>/config.yaml over the defaults. A missing file is not an
// error. ${VAR} references in the file are expanded from the environment.
func Load(dir string) (Config, error) {
	cfg := Default()

	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	expanded := []byte(os.ExpandEnv(string(data)))
	if err := yaml.Unmarshal(expanded, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports default values that cannot be applied to a screen.
func (c Config) Validate() error {
	var problems []string

	if c.Defaults.Sex != "" {
		if _, err := models.ParseSex(c.Defaults.Sex); err != nil {
			problems = append(problems, "defaults.sex: "+err.Error())
		}
	}
	if c.Defaults.Intensity != "" {
		if _, ok := catalog.IndexOf(c.Defaults.Intensity); !ok {
			problems = append(problems, fmt.Sprintf("defaults.intensity: unknown intensity %q (expected one of: %s)",
				c.Defaults.Intensity, strings.Join(catalog.Labels(), ", ")))
		}
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		problems = append(problems, "log: rotation limits must not be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
