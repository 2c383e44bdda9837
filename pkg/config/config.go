// Package config loads prae's runtime settings from defaults, an optional
// config file, PRAE_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"prae/pkg/core"
)

// EnvPrefix is the prefix of environment variables read by Load
const EnvPrefix = "PRAE"

// Config holds the settings shared by all commands
type Config struct {
	Codec   string `mapstructure:"codec"`
	Verbose bool   `mapstructure:"verbose"`
	Quiet   bool   `mapstructure:"quiet"`
}

// DefaultConfig returns the settings used when nothing overrides them
func DefaultConfig() *Config {
	return &Config{
		Codec: string(core.DefaultCodec),
	}
}

// LoadOptions controls where Load looks for settings
type LoadOptions struct {
	// ConfigFile is an explicit config file; its absence is an error.
	ConfigFile string
	// Flags, when set, override file and environment values for every
	// flag the user changed.
	Flags *pflag.FlagSet
}

// Load resolves the configuration. Precedence, highest first: changed
// flags, environment, config file, defaults.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("codec", defaults.Codec)
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("quiet", defaults.Quiet)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", opts.ConfigFile, err)
		}
	}

	if opts.Flags != nil {
		for _, key := range []string{"codec", "verbose", "quiet"} {
			if f := opts.Flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", key, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings no command can honor
func (c *Config) Validate() error {
	if _, err := core.ParseCodec(c.Codec); err != nil {
		return fmt.Errorf("invalid codec: %w", err)
	}
	if c.Verbose && c.Quiet {
		return errors.New("verbose and quiet are mutually exclusive")
	}
	return nil
}

// CodecValue returns the validated compression codec
func (c *Config) CodecValue() core.Codec {
	codec, err := core.ParseCodec(c.Codec)
	if err != nil {
		return core.DefaultCodec
	}
	return codec
}
