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

// Package cmd implements the sternbrocot command line tool.
package cmd

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bbva/sternbrocot/metrics"
)

// NewRoot builds the sternbrocot command tree. Every call returns an
// independent tree with its own configuration and metrics registry.
func NewRoot() *cobra.Command {
	ctx := &cmdContext{
		config:   DefaultConfig(),
		viper:    viper.New(),
		registry: prometheus.NewRegistry(),
	}

	cmd := &cobra.Command{
		Use:   "sternbrocot",
		Short: "Explore the Stern-Brocot tree of positive rationals",
		Long: `sternbrocot builds and queries the Stern-Brocot tree, either fully
materialized under a depth or denominator bound, or lazily one node at a
time. Fractions are written as numerator/denominator.`,
		// SilenceUsage is set to true -> https://github.com/spf13/cobra/issues/340
		SilenceUsage:      true,
		PersistentPreRunE: ctx.load,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !ctx.config.Metrics {
				return nil
			}
			return printMetrics(cmd.OutOrStdout(), ctx.registry)
		},
	}

	if err := ctx.bindFlags(cmd.PersistentFlags()); err != nil {
		panic(errors.Wrap(err, "unable to parse root config"))
	}
	if err := metrics.Register(ctx.registry); err != nil {
		panic(errors.Wrap(err, "unable to register metrics"))
	}

	cmd.AddCommand(
		newTreeCommand(ctx),
		newLocateCommand(ctx),
		newPathCommand(ctx),
		newNeighborsCommand(ctx),
		newSizeCommand(ctx),
		newSequenceCommand(ctx),
		newApproxCommand(ctx),
		newVersionCommand(),
	)

	return cmd
}
