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
	"strings"

	"github.com/octago/sflags/gen/gpflag"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bbva/sternbrocot/fraction"
	"github.com/bbva/sternbrocot/log"
	"github.com/bbva/sternbrocot/materialized"
)

type treeParams struct {
	Depth     int    `desc:"Generate every node down to this depth instead of using the denominator bound, -1 to disable"`
	Format    string `desc:"Output format: list, nested or indent"`
	Row       int    `desc:"Print only the fractions at this depth, -1 to disable"`
	Search    string `desc:"Search this fraction in the generated tree"`
	NodeLimit uint64 `flag:"node-limit" desc:"Maximum number of generated nodes, 0 for no limit"`
}

func newTreeCommand(ctx *cmdContext) *cobra.Command {
	params := &treeParams{
		Depth:     -1,
		Format:    "list",
		Row:       -1,
		NodeLimit: materialized.DefaultNodeLimit,
	}

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Generate a materialized tree and print or query it",
		Long: `Generate every node of the tree under a depth bound (--depth) or every
node with a denominator below --bound admitted by the restriction, then print
it in order, nested or indented, print one of its rows, or search a fraction.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var bound materialized.Bound
			if params.Depth >= 0 {
				bound = materialized.DepthBound(params.Depth)
			} else {
				bound = materialized.DenominatorBound{
					Max:         ctx.config.Bound,
					Restriction: ctx.config.Restriction(),
				}
			}

			root, err := materialized.Generate(bound,
				materialized.SetLogger(log.L().Named("materialized")),
				materialized.SetNodeLimit(params.NodeLimit),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case params.Search != "":
				target, err := fraction.Parse(params.Search)
				if err != nil {
					return err
				}
				node, err := root.Search(target)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s depth %d bounds %s\n", node.Fraction, node.Depth(), node.Bounds)

			case params.Row >= 0:
				row, err := root.Row(params.Row)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, join(row))

			default:
				switch params.Format {
				case "list":
					fmt.Fprintln(out, join(root.InOrder()))
				case "nested":
					fmt.Fprintln(out, root)
				case "indent":
					visitor := materialized.NewIndentVisitor()
					root.PreOrder(visitor)
					fmt.Fprintln(out, visitor.Result())
				default:
					return errors.Errorf("unknown format %q", params.Format)
				}
			}
			return nil
		},
	}

	if err := gpflag.ParseTo(params, cmd.Flags()); err != nil {
		panic(errors.Wrap(err, "unable to parse tree params"))
	}

	return cmd
}

func join(fractions []fraction.Fraction) string {
	tokens := make([]string, len(fractions))
	for i, f := range fractions {
		tokens[i] = f.String()
	}
	return strings.Join(tokens, " ")
}

func parseFractions(args []string) ([]fraction.Fraction, error) {
	fractions := make([]fraction.Fraction, 0, len(args))
	for _, arg := range args {
		f, err := fraction.Parse(arg)
		if err != nil {
			return nil, err
		}
		fractions = append(fractions, f)
	}
	return fractions, nil
}
