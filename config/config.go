/*
Package config loads the settings of the xtransfer tool.
*/
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/xtransfer-org/xtransfer-go/types"
)

const envPrefix = "XTRANSFER"

const (
	keyPrefix          = "prefix"
	keyUnitWeight      = "unit_weight"
	keyMaxInstructions = "max_instructions"
	keyLogLevel        = "log_level"
	keyJournalPath     = "journal_path"
)

type Config struct {
	// Prefix is the location prefix of the general index assets, in location notation.
	Prefix          string `mapstructure:"prefix"`
	UnitWeight      uint64 `mapstructure:"unit_weight"`
	MaxInstructions int    `mapstructure:"max_instructions"`
	LogLevel        string `mapstructure:"log_level"`
	// JournalPath is the bolt database the attempted transfers are recorded in, empty disables the journal.
	JournalPath string `mapstructure:"journal_path"`
}

/*
Load reads the configuration from the file (when path is not empty) and
XTRANSFER_* environment variables, the environment overrides the file.
*/
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault(keyPrefix, "PalletInstance(50)")
	v.SetDefault(keyUnitWeight, 1_000_000)
	v.SetDefault(keyMaxInstructions, 100)
	v.SetDefault(keyLogLevel, logrus.InfoLevel.String())
	v.SetDefault(keyJournalPath, "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %q: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.IsValid(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsValid() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if _, err := c.PrefixLocation(); err != nil {
		return err
	}
	if c.MaxInstructions <= 0 {
		return fmt.Errorf("max instructions must be positive, got %d", c.MaxInstructions)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// PrefixLocation parses the asset prefix, it must be an interior location.
func (c *Config) PrefixLocation() (types.Location, error) {
	loc, err := types.ParseLocation(c.Prefix)
	if err != nil {
		return nil, fmt.Errorf("invalid asset prefix: %w", err)
	}
	if !loc.IsInterior() {
		return nil, fmt.Errorf("asset prefix must be interior location, got %s", loc)
	}
	return loc, nil
}

// Level returns the parsed log level, info when the level is not valid.
func (c *Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
