// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// DotEnvFile is read from the working directory by Load when present.
const DotEnvFile = ".env"

// Load assembles the configuration of a command: .env, environment, the
// optional --config file, then the flags in args. Usage and flag errors are
// written to usage. pflag.ErrHelp is returned as is for --help.
func Load(name string, args []string, usage io.Writer) (*Config, error) {
	if _, err := LoadDotEnv(DotEnvFile); err != nil {
		return nil, err
	}

	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(usage)
	RegisterFlags(fs)

	c := NewConfig()
	if err := c.BindFlags(fs); err != nil {
		return nil, err
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if path, _ := fs.GetString("config"); path != "" {
		if err := c.LoadFromFile(path); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}
