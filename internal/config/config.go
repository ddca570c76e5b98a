// Package config holds the settings of the eea command.
package config

import (
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Config is the command configuration. A TOML file may set any subset of
// the fields; the rest keep their defaults.
type Config struct {
	Format   string   `toml:"format"`
	Delay    Duration `toml:"delay"`
	Group    bool     `toml:"group"`
	LogLevel string   `toml:"log_level"`
}

// Duration is a time.Duration read from a TOML string such as "100ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format:   FormatTable,
		LogLevel: zerolog.WarnLevel.String(),
	}
}

// Load reads the TOML file at path on top of Default and validates the
// result.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "loading config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Errorf("loading config %s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "loading config %s", path)
	}
	return cfg, nil
}

// Validate checks that the format and log level are known and the delay is
// not negative.
func (c Config) Validate() error {
	switch c.Format {
	case FormatTable, FormatJSON:
	default:
		return errors.Errorf("unknown format %q", c.Format)
	}
	if c.Delay.Duration < 0 {
		return errors.Errorf("negative delay %s", c.Delay)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level.
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, errors.Wrapf(err, "log level %q", c.LogLevel)
	}
	return lvl, nil
}
