package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	_envPrefix     = "aoc"
	_defaultFormat = "text"
)

// Config is what a solver sees. Values come from flags, then AOC_*
// environment variables, then the optional --config file.
type Config struct {
	Input   string
	Verbose int
	Format  string

	// day 2
	MaxRed, MaxGreen, MaxBlue int

	// day 5
	Bound  int64
	Verify bool
}

func loadConfig(cmd *cobra.Command) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(_envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("format", _defaultFormat)

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return Config{}, err
	}

	if name := v.GetString("config"); name != "" {
		v.SetConfigFile(name)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errorf("read config %v: %w", name, err)
		}
	}

	cfg := Config{
		Input:    v.GetString("input"),
		Verbose:  v.GetInt("verbose"),
		Format:   strings.ToLower(v.GetString("format")),
		MaxRed:   v.GetInt("max-red"),
		MaxGreen: v.GetInt("max-green"),
		MaxBlue:  v.GetInt("max-blue"),
		Bound:    v.GetInt64("bound"),
		Verify:   v.GetBool("verify"),
	}
	return cfg, cfg.validate()
}

func (cfg Config) validate() error {
	if cfg.Input == "" {
		return errors.New("no input file, use --input")
	}
	switch cfg.Format {
	case "text", "yaml":
	default:
		return errorf("unknown format %q", cfg.Format)
	}
	if cfg.Bound < 0 {
		return errorf("negative bound %v", cfg.Bound)
	}
	return nil
}
