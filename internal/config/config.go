// Package config loads settings from flags, a config file, environment
// variables and defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultQueries are looked up after the dictionary is loaded.
var DefaultQueries = []string{"notaword", "ucf", "no", "note", "corg"}

// Config holds all configuration for the application
type Config struct {
	Dictionary  DictionaryConfig  `mapstructure:"dictionary"`
	Query       QueryConfig       `mapstructure:"query"`
	Interactive InteractiveConfig `mapstructure:"interactive"`
	Log         LogConfig         `mapstructure:"log"`
}

// DictionaryConfig holds word source configuration
type DictionaryConfig struct {
	Path string `mapstructure:"path"`
	// Alphabet lists the legal symbols. Empty means lowercase a-z.
	Alphabet string `mapstructure:"alphabet"`
	Strict   bool   `mapstructure:"strict"`
}

// QueryConfig holds the words looked up after loading
type QueryConfig struct {
	Words []string `mapstructure:"words"`
}

// InteractiveConfig holds interactive session configuration
type InteractiveConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Prompt      string `mapstructure:"prompt"`
	HistoryFile string `mapstructure:"history_file"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// LoadConfig parses args as flags and merges them over the config file
// given by --config, DICTRIE_* environment variables and defaults.
func LoadConfig(args []string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := bindFlags(v, fs); err != nil {
		return nil, err
	}
	if rest := fs.Args(); len(rest) > 0 {
		v.Set("query.words", rest)
	}

	if configPath, _ := fs.GetString("config"); configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("dictrie")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// HISTFILE is honoured as in a shell.
	if err := v.BindEnv("interactive.history_file", "DICTRIE_INTERACTIVE_HISTORY_FILE", "HISTFILE"); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dictionary.path", "dictionary.txt")
	v.SetDefault("dictionary.alphabet", "")
	v.SetDefault("dictionary.strict", false)

	v.SetDefault("query.words", DefaultQueries)

	v.SetDefault("interactive.enabled", false)
	v.SetDefault("interactive.prompt", "> ")
	v.SetDefault("interactive.history_file", "")

	v.SetDefault("log.level", "info")
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("dictrie", pflag.ContinueOnError)
	fs.String("config", "", "Path to a config file")
	fs.StringP("dictionary", "d", "dictionary.txt", "Word list to load")
	fs.String("alphabet", "", "Legal symbols, lowercase a-z when empty")
	fs.Bool("strict", false, "Abort on the first word with an invalid symbol")
	fs.BoolP("interactive", "i", false, "Read queries from stdin after the default ones")
	fs.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	return fs
}

var flagKeys = map[string]string{
	"dictionary":  "dictionary.path",
	"alphabet":    "dictionary.alphabet",
	"strict":      "dictionary.strict",
	"interactive": "interactive.enabled",
	"log-level":   "log.level",
}

// bindFlags binds only flags given on the command line so that config file
// and environment values are not shadowed by flag defaults.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var err error
	fs.Visit(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || err != nil {
			return
		}
		err = v.BindPFlag(key, f)
	})
	return err
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Dictionary.Path == "" {
		return fmt.Errorf("dictionary path cannot be empty")
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return nil
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
