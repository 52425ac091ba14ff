/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package cmd

import (
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/octago/sflags/gen/gpflag"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bbva/sternbrocot/log"
	"github.com/bbva/sternbrocot/navigation"
)

// EnvPrefix prefixes the environment variables read by the tool, e.g.
// STERNBROCOT_BOUND or STERNBROCOT_MAX_NUMERATOR.
const EnvPrefix = "STERNBROCOT"

// Config holds the settings shared by every command. Values come from
// flags, then the environment, then the config file.
type Config struct {
	// Path to a YAML config file.
	Config string `desc:"Path to a YAML config file" mapstructure:"config"`

	// Log level.
	Log string `desc:"Log level: silent, error, warn, info, debug or trace" mapstructure:"log"`

	// Print the collected counters after running a command.
	Metrics bool `desc:"Print the collected counters after the command" mapstructure:"metrics"`

	// Denominator bound of the bounded queries.
	Bound uint64 `desc:"Denominator bound" mapstructure:"bound"`

	// Restriction applied to enumerations and counts.
	Proper       bool   `desc:"Only consider fractions below 1" mapstructure:"proper"`
	MaxNumerator uint64 `flag:"max-numerator" desc:"Only consider fractions with a numerator up to this value, 0 for no limit" mapstructure:"max-numerator"`
}

// DefaultConfig returns the settings used when nothing else is given.
func DefaultConfig() *Config {
	return &Config{
		Log:    "error",
		Bound:  10,
		Proper: true,
	}
}

// Restriction returns the predicate selected by the config.
func (c *Config) Restriction() navigation.Restriction {
	return navigation.Restriction{
		ProperOnly:   c.Proper,
		MaxNumerator: c.MaxNumerator,
	}
}

type cmdContext struct {
	config   *Config
	viper    *viper.Viper
	registry *prometheus.Registry
	flags    *pflag.FlagSet
}

func (ctx *cmdContext) bindFlags(flags *pflag.FlagSet) error {
	if err := gpflag.ParseTo(ctx.config, flags); err != nil {
		return err
	}
	ctx.flags = flags
	return nil
}

// load merges flags, environment and config file into the config and sets
// up the default logger.
func (ctx *cmdContext) load(cmd *cobra.Command, args []string) error {
	v := ctx.viper
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(ctx.flags); err != nil {
		return errors.Wrap(err, "binding flags")
	}

	if path := v.GetString("config"); path != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return errors.Wrapf(err, "expanding config path %s", path)
		}
		v.SetConfigFile(expanded)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config file %s", expanded)
		}
	}

	if err := v.Unmarshal(ctx.config); err != nil {
		return errors.Wrap(err, "decoding config")
	}

	level := log.LevelFromString(ctx.config.Log)
	if level == log.NotSet {
		return errors.Errorf("unknown log level %q", ctx.config.Log)
	}
	log.SetDefault(log.New(&log.LoggerOptions{
		Name:   "sternbrocot",
		Level:  level,
		Output: cmd.ErrOrStderr(),
	}))
	log.L().Debugf("Loaded config %+v", *ctx.config)

	return nil
}
