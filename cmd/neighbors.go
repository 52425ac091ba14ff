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

func newNeighborsCommand(ctx *cmdContext) *cobra.Command {
	return &cobra.Command{
		Use:   "neighbors FRACTION...",
		Short: "Print the neighbors of fractions among those with a denominator below the bound",
		Long: `Print, for each fraction, the largest smaller and the smallest greater
fraction with a denominator below --bound. The 0/1 and 1/0 boundaries stand
for missing neighbors.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			targets, err := parseFractions(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, target := range targets {
				node, err := procedural.Locate(target)
				if err != nil {
					return err
				}
				left, right, err := node.Neighbors(ctx.config.Bound)
				if err != nil {
					return err
				}
				lf, rf := procedural.NeighborFractions(node, left, right)
				fmt.Fprintf(out, "%s < %s < %s\n", lf, node, rf)
			}
			return nil
		},
	}
}
