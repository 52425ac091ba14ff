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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bbva/sternbrocot/procedural"
)

func newSequenceCommand(ctx *cmdContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sequence",
		Short: "Print, in order, the fractions with a denominator below the bound",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sequence, err := procedural.Sequence(ctx.config.Bound, ctx.config.Restriction())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), join(sequence))
			return nil
		},
	}
}

func newApproxCommand(ctx *cmdContext) *cobra.Command {
	return &cobra.Command{
		Use:   "approx VALUE...",
		Short: "Approximate values by fractions with a denominator below the bound",
		Long: `Print the two consecutive fractions with a denominator below --bound that
enclose each value, given as a fraction or a decimal, and the closest one.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			targets, err := parseFractions(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, target := range targets {
				lower, upper, err := procedural.Approximate(target, ctx.config.Bound)
				if err != nil {
					return err
				}
				closest, err := procedural.Closest(target, ctx.config.Bound)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s in [%s, %s] closest %s\n", target, lower, upper, closest)
			}
			return nil
		},
	}
}
