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

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bbva/sternbrocot/farey"
	"github.com/bbva/sternbrocot/log"
	"github.com/bbva/sternbrocot/procedural"
)

func newSizeCommand(ctx *cmdContext) *cobra.Command {
	var verify bool

	cmd := &cobra.Command{
		Use:   "size",
		Short: "Count the fractions with a denominator up to the bound",
		Long: `Count, without materializing the tree, the fractions with a
denominator less than or equal to --bound admitted by the restriction.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			restriction := ctx.config.Restriction()
			size, err := procedural.TreeSize(procedural.Root(), ctx.config.Bound, restriction)
			if err != nil {
				return err
			}

			if verify {
				expected, err := farey.Count(ctx.config.Bound, restriction)
				if err != nil {
					return err
				}
				if expected != size {
					return errors.Errorf("tree size %d differs from the %d fractions enumerated", size, expected)
				}
				log.L().Infof("Verified %d fractions against the enumeration", size)
			}

			fmt.Fprintln(cmd.OutOrStdout(), size)
			return nil
		},
	}

	cmd.Flags().BoolVar(&verify, "verify", false, "Check the count against a brute-force enumeration")

	return cmd
}
