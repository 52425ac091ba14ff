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

	"github.com/bbva/sternbrocot/fraction"
	"github.com/bbva/sternbrocot/navigation"
	"github.com/bbva/sternbrocot/procedural"
)

func newLocateCommand(ctx *cmdContext) *cobra.Command {
	return &cobra.Command{
		Use:   "locate FRACTION...",
		Short: "Locate fractions in the lazy tree",
		Long: `Descend from the root to each fraction, printing its path of L and R
turns (I for the root), its depth, its bounds and its continued fraction.`,
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
				cf, err := fraction.ContinuedFraction(target)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s path %s depth %d bounds %s cf %v\n",
					node, node.Path(), node.Depth(), node.Bounds(), cf)
			}
			return nil
		},
	}
}

func newPathCommand(ctx *cmdContext) *cobra.Command {
	return &cobra.Command{
		Use:   "path PATH...",
		Short: "Print the fraction reached by following a path of L and R turns",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				path, err := navigation.ParsePath(arg)
				if err != nil {
					return err
				}
				node := procedural.LocatePath(path)
				fmt.Fprintf(out, "%s %s\n", path, node)
			}
			return nil
		},
	}
}
