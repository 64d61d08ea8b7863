// Package config provides configuration types and defaults for bizperiod.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/zjrosen/bizperiod/internal/log"
	"github.com/zjrosen/bizperiod/internal/period"
)

// EnvPrefix prefixes environment overrides, e.g. BIZPERIOD_FISCAL_YEAR_START_MONTH.
const EnvPrefix = "BIZPERIOD"

// Output formats accepted by the output setting.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds all configuration options for bizperiod.
type Config struct {
	FiscalYearStartMonth int          `mapstructure:"fiscal_year_start_month" json:"fiscal_year_start_month" yaml:"fiscal_year_start_month"`
	Output               string       `mapstructure:"output" json:"output" yaml:"output"`
	LogLevel             string       `mapstructure:"log_level" json:"log_level" yaml:"log_level"`
	Parser               ParserConfig `mapstructure:"parser" json:"parser" yaml:"parser"`
}

// ParserConfig holds period parser options.
type ParserConfig struct {
	// Cache memoizes parsed strings. Useful when the same periods are parsed repeatedly.
	Cache    bool          `mapstructure:"cache" json:"cache" yaml:"cache"`
	CacheTTL time.Duration `mapstructure:"cache_ttl" json:"cache_ttl" yaml:"cache_ttl"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		FiscalYearStartMonth: period.DefaultFiscalYearStart,
		Output:               OutputText,
		LogLevel:             "warn",
		Parser: ParserConfig{
			Cache:    false,
			CacheTTL: 10 * time.Minute,
		},
	}
}

// SetDefaults registers every key and its default on v, which also makes the keys
// visible to environment overrides.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("fiscal_year_start_month", d.FiscalYearStartMonth)
	v.SetDefault("output", d.Output)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("parser.cache", d.Parser.Cache)
	v.SetDefault("parser.cache_ttl", d.Parser.CacheTTL)
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if _, err := period.NewConfig(c.FiscalYearStartMonth); err != nil {
		return fmt.Errorf("fiscal_year_start_month: %w", err)
	}
	switch c.Output {
	case OutputText, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("output: unsupported format %q (want text, json or yaml)", c.Output)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.Parser.Cache && c.Parser.CacheTTL <= 0 {
		return fmt.Errorf("parser.cache_ttl: must be positive when the cache is enabled, got %s", c.Parser.CacheTTL)
	}
	return nil
}

// PeriodConfig returns the fiscal configuration used to build periods.
func (c Config) PeriodConfig() (period.Config, error) {
	return period.NewConfig(c.FiscalYearStartMonth)
}

// NewParser returns a period parser for the configured fiscal start, memoized when
// the parser cache is enabled.
func (c Config) NewParser() (*period.Parser, error) {
	var opts []period.ParserOption
	if c.Parser.Cache {
		opts = append(opts, period.WithCache(c.Parser.CacheTTL, 2*c.Parser.CacheTTL))
	}
	return period.NewParser(c.FiscalYearStartMonth, opts...)
}

// DefaultConfigPath returns the user config file location,
// e.g. ~/.config/bizperiod/config.yaml.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "bizperiod", "config.yaml")
}

// NewViper returns a viper instance with defaults and environment overrides registered,
// reading configFile when set, or the default config file when it exists.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			log.ErrorErr(log.CatConfig, "Failed to read config file", err, "path", configFile)
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		log.Debug(log.CatConfig, "Loaded config file", "path", configFile)
		return v, nil
	}

	path := DefaultConfigPath()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug(log.CatConfig, "No config file, using defaults", "path", path)
			return v, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	log.Debug(log.CatConfig, "Loaded config file", "path", path)
	return v, nil
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# bizperiod configuration

# Calendar month (1-12) in which the fiscal year starts. The fiscal year is
# named after the calendar year it ends in: with July, FY2024 runs Jul 2023 - Jun 2024.
fiscal_year_start_month: 7

# Output format for periodctl: text, json or yaml
output: text

# Log level: debug, info, warn, error
log_level: warn

# Period parser options
parser:
  cache: false       # Memoize parsed period strings
  cache_ttl: 10m     # How long a parsed string stays cached

# Environment overrides use the BIZPERIOD_ prefix, e.g.
#   BIZPERIOD_FISCAL_YEAR_START_MONTH=4
#   BIZPERIOD_PARSER_CACHE=true
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
