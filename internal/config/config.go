// Package config loads tablekit settings from an optional YAML file and
// TABLEKIT_* environment variables using Viper.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/Makepad-fr/tablekit/internal/shape"
)

const (
	configFileName = "tablekit"
	configFileType = "yaml"
	envPrefix      = "TABLEKIT"

	keyTheme     = "theme"
	keyLogLevel  = "log.level"
	keyLogFormat = "log.format"
	keyLogFile   = "log.file"
)

var (
	ErrThemeUnknown     = errors.New("unknown theme")
	ErrLogFormatUnknown = errors.New("unknown log format")
	ErrPageSizeInvalid  = errors.New("page size must not be negative")
)

var knownThemes = map[string]bool{"classic": true, "neon": true, "mono": true}

// Config holds every tablekit setting.
type Config struct {
	Theme string    `mapstructure:"theme"`
	Log   LogConfig `mapstructure:"log"`

	// PageSize and Seed are keyed by shape name.
	PageSize map[string]int    `mapstructure:"page_size"`
	Seed     map[string]string `mapstructure:"seed"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File receives logs; empty means stderr for commands and nothing for
	// the interactive view.
	File string `mapstructure:"file"`
}

// PageSizeFor returns the configured page size for a shape, or fallback
// when none is set.
func (c *Config) PageSizeFor(name string, fallback int) int {
	if n, ok := c.PageSize[name]; ok && n > 0 {
		return n
	}
	return fallback
}

// SeedFor returns the seed file for a shape; empty means built-in rows.
func (c *Config) SeedFor(name string) string {
	return c.Seed[name]
}

// Validate checks the loaded values and returns a sentinel error from this
// package on failure.
func (c *Config) Validate() error {
	if !knownThemes[strings.ToLower(c.Theme)] {
		return fmt.Errorf("%w: %q", ErrThemeUnknown, c.Theme)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrLogFormatUnknown, c.Log.Format)
	}
	for name, n := range c.PageSize {
		if n < 0 {
			return fmt.Errorf("%w: %s=%d", ErrPageSizeInvalid, name, n)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyTheme, "classic")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFormat, "text")
	v.SetDefault(keyLogFile, "")
	for _, name := range shape.Names() {
		// Zero falls back to the shape's own page size.
		v.SetDefault("page_size."+name, 0)
		v.SetDefault("seed."+name, "")
	}
}

// Load reads configuration. With an explicit path the file must exist;
// otherwise tablekit.yaml is looked up in the working directory and in
// $HOME/.tablekit, and a missing file is not an error. A .env file in the
// working directory is loaded first and never overrides the environment.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".tablekit"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
