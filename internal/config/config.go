// Package config provides configuration management for the sarf command.
//
// Settings are read from defaults, an optional YAML file, SARF_* environment
// variables and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/npillmayer/sarf"
	"github.com/spf13/pflag"
)

// Defaults.
const (
	DefaultConfigFile  = "sarf.yaml"
	DefaultRootsFile   = "roots.txt"
	DefaultSchemeOrder = "table"
	envPrefix          = "SARF_"
)

// Config holds the settings of the sarf command.
type Config struct {
	RootsFile     string `koanf:"roots_file"`
	TableCapacity int    `koanf:"table_capacity"`
	SchemeOrder   string `koanf:"scheme_order"`
	Verbose       bool   `koanf:"verbose"`

	FileUsed string `koanf:"-"` // config file read, if any
}

// flagKeys maps flag names to config keys where they differ.
var flagKeys = map[string]string{
	"roots":    "roots_file",
	"capacity": "table_capacity",
	"order":    "scheme_order",
}

// Load loads configuration from defaults, cfgFile, environment variables and
// flags. If cfgFile is empty, ./sarf.yaml is read if it exists.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"roots_file":     DefaultRootsFile,
		"table_capacity": sarf.DefaultTableCapacity,
		"scheme_order":   DefaultSchemeOrder,
		"verbose":        false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. config file
	if cfgFile == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			cfgFile = DefaultConfigFile
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// 3. environment: SARF_ROOTS_FILE -> roots_file
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. flags, only those set explicitly
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			if mapped, ok := flagKeys[f.Name]; ok {
				key = mapped
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.FileUsed = cfgFile
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.RootsFile) == "" {
		errs = append(errs, errors.New("roots_file may not be empty"))
	}
	if c.TableCapacity < 1 {
		errs = append(errs, fmt.Errorf("table_capacity must be positive, is %d", c.TableCapacity))
	}
	if _, err := sarf.ParseSchemeOrder(c.SchemeOrder); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Order returns the configured scheme order.
func (c *Config) Order() sarf.SchemeOrder {
	order, _ := sarf.ParseSchemeOrder(c.SchemeOrder)
	return order
}
