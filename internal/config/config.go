// Package config resolves the venvctl settings from defaults, an optional
// config file and command-line flags, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/venvctl/pkg/domain"
	"github.com/goccy/go-json"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Flag names shared with the command tree.
const (
	FlagDir        = "dir"
	FlagPython     = "python"
	FlagConfig     = "config"
	FlagDebug      = "debug"
	FlagStrictExit = "strict-exit"
	FlagVenvArg    = "venv-arg"
)

// Config holds everything the CLI needs to build a manager.
type Config struct {
	Dir        string            `yaml:"dir" json:"dir" mapstructure:"dir"`
	Python     string            `yaml:"python" json:"python" mapstructure:"python"`
	VenvArgs   []string          `yaml:"venv_args" json:"venv_args" mapstructure:"venv_args"`
	Env        map[string]string `yaml:"env" json:"env" mapstructure:"env"`
	Layout     domain.Layout     `yaml:"layout" json:"layout" mapstructure:"layout"`
	StrictExit bool              `yaml:"strict_exit" json:"strict_exit" mapstructure:"strict_exit"`
	Debug      bool              `yaml:"debug" json:"debug" mapstructure:"debug"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Dir:    ".",
		Python: "python3",
		Layout: domain.DefaultLayout(),
	}
}

// LoadFile merges the file at path over cfg.
func LoadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	return Decode(raw, cfg)
}

// Decode applies a loosely typed document over cfg.
// Keys absent from raw keep their current value; unknown keys are rejected.
func Decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ApplyFlags overrides cfg with every flag the user set explicitly.
func ApplyFlags(cfg *Config, flags *pflag.FlagSet) error {
	var err error
	if f := flags.Lookup(FlagDir); f != nil && f.Changed {
		cfg.Dir = f.Value.String()
	}
	if f := flags.Lookup(FlagPython); f != nil && f.Changed {
		cfg.Python = f.Value.String()
	}
	if f := flags.Lookup(FlagDebug); f != nil && f.Changed {
		if cfg.Debug, err = flags.GetBool(FlagDebug); err != nil {
			return err
		}
	}
	if f := flags.Lookup(FlagStrictExit); f != nil && f.Changed {
		if cfg.StrictExit, err = flags.GetBool(FlagStrictExit); err != nil {
			return err
		}
	}
	if f := flags.Lookup(FlagVenvArg); f != nil && f.Changed {
		if cfg.VenvArgs, err = flags.GetStringArray(FlagVenvArg); err != nil {
			return err
		}
	}
	return nil
}

// Resolve builds the effective configuration for a command invocation.
// A config file is only read when --config names one; nothing in the
// working directory is picked up implicitly.
func Resolve(flags *pflag.FlagSet) (Config, error) {
	cfg := Default()

	if f := flags.Lookup(FlagConfig); f != nil && f.Changed {
		if err := LoadFile(&cfg, f.Value.String()); err != nil {
			return cfg, err
		}
	}
	if err := ApplyFlags(&cfg, flags); err != nil {
		return cfg, err
	}
	if cfg.Python == "" {
		return cfg, errors.New("invalid config: python must not be empty")
	}
	return cfg, nil
}

// RegisterFlags declares the persistent flags understood by Resolve.
func RegisterFlags(flags *pflag.FlagSet) {
	d := Default()
	flags.String(FlagDir, d.Dir, "Directory holding the virtual environments")
	flags.String(FlagPython, d.Python, "Interpreter used to create environments")
	flags.String(FlagConfig, "", "Config file (YAML or JSON)")
	flags.Bool(FlagDebug, false, "Log debug information to stderr")
	flags.Bool(FlagStrictExit, false, "Exit with a distinct non-zero code when an operation fails")
	flags.StringArray(FlagVenvArg, nil, "Extra argument passed to `venv` (repeatable)")
}
