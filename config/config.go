// SPDX-License-Identifier: MIT
//
// Package config holds the runtime settings shared by the command-line
// programs: defaults, an optional config file, CLOSETREE_* environment
// variables (optionally from a .env file) and command-line flags, layered
// by viper in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/closetree/prim_kruskal"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. CLOSETREE_LOG_LEVEL.
const EnvPrefix = "CLOSETREE"

// Keys.
const (
	KeyLogLevel    = "log.level"
	KeyLogFormat   = "log.format"
	KeyGraphSimple = "graph.simple"
	KeySolveMethod = "solve.method"
	KeySolveVerify = "solve.verify"
)

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrInvalid indicates a setting outside its allowed values.
var ErrInvalid = errors.New("config: invalid setting")

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"log-level":  KeyLogLevel,
	"log-format": KeyLogFormat,
	"simple":     KeyGraphSimple,
	"method":     KeySolveMethod,
	"verify":     KeySolveVerify,
}

// Config manages runtime settings using Viper.
type Config struct {
	v *viper.Viper
}

// NewConfig creates a configuration with defaults and environment overrides.
func NewConfig() *Config {
	v := viper.New()

	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, FormatConsole)
	v.SetDefault(KeyGraphSimple, false)
	v.SetDefault(KeySolveMethod, prim_kruskal.MethodPrim)
	v.SetDefault(KeySolveVerify, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// RegisterFlags defines the configuration flags on fs.
// "config" names an optional config file; it is read by the caller.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a config file (yaml, json, toml)")
	fs.String("log-level", "warn", "log level: trace, debug, info, warn, error")
	fs.String("log-format", FormatConsole, "log format: console or json")
	fs.Bool("simple", false, "reject self-loops and parallel edges in the input")
	fs.String("method", prim_kruskal.MethodPrim, "spanning-tree method: prim or kruskal")
	fs.Bool("verify", false, "cross-check results against gonum")
}

// BindFlags binds the flags defined by RegisterFlags. A flag overrides the
// file and environment only when set on the command line.
func (c *Config) BindFlags(fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := c.v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind --%s: %w", name, err)
		}
	}

	return nil
}

// LoadFromFile loads configuration from file.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	return c.v.ReadInConfig()
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment
// when the file exists. Variables already set are left alone.
// It reports whether the file was loaded.
func LoadDotEnv(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if err := godotenv.Load(path); err != nil {
		return false, fmt.Errorf("load %s: %w", path, err)
	}

	return true, nil
}

// Set allows dynamic configuration changes.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

func (c *Config) LogLevel() string  { return c.v.GetString(KeyLogLevel) }
func (c *Config) LogFormat() string { return c.v.GetString(KeyLogFormat) }
func (c *Config) Simple() bool      { return c.v.GetBool(KeyGraphSimple) }
func (c *Config) Method() string    { return c.v.GetString(KeySolveMethod) }
func (c *Config) Verify() bool      { return c.v.GetBool(KeySolveVerify) }

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel()); err != nil {
		return fmt.Errorf("%s=%q: %w", KeyLogLevel, c.LogLevel(), ErrInvalid)
	}
	switch c.LogFormat() {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("%s=%q: %w", KeyLogFormat, c.LogFormat(), ErrInvalid)
	}
	switch c.Method() {
	case prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal:
	default:
		return fmt.Errorf("%s=%q: %w", KeySolveMethod, c.Method(), ErrInvalid)
	}

	return nil
}

// CreateLogger creates a zerolog logger writing to out.
// An unknown level falls back to warn.
func (c *Config) CreateLogger(out io.Writer, service string) zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel())
	if err != nil || c.LogLevel() == "" {
		level = zerolog.WarnLevel
	}

	var w io.Writer = out
	if c.LogFormat() != FormatJSON {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05", NoColor: true}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Str("service", service).Logger()
}
