// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbayes/models"
)

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in networks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, m := range models.Catalog() {
				bn, err := m.Build()
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%d vars\t%s\n", m.Name, len(bn.Variables()), m.Description)
			}
			return w.Flush()
		},
	}
}

func (a *app) newShowCmd() *cobra.Command {
	var only string
	cmd := &cobra.Command{
		Use:   "show <model>",
		Short: "Print a network's variables and tables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bn, err := models.Build(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if only != "" {
				f, ok := bn.Factor(only)
				if !ok {
					return fmt.Errorf("model %s has no factor %q", args[0], only)
				}
				fmt.Fprintf(out, "%s\n", f)
				return f.Format(out)
			}

			fmt.Fprintln(out, bn)
			order, err := bn.TopologicalOrder()
			if err != nil {
				return err
			}
			for _, v := range order {
				parents, err := bn.Parents(v)
				if err != nil {
					return err
				}
				ps := make([]string, len(parents))
				for i, p := range parents {
					ps[i] = p.Name()
				}
				fmt.Fprintf(out, "  %s  parents=[%s]\n", v, strings.Join(ps, ", "))
			}
			for _, f := range bn.Factors() {
				fmt.Fprintf(out, "\n%s\n", f)
				if err := f.Format(out); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&only, "factor", "", "Print only the named factor, e.g. \"P(Alarm|Burglary,Earthquake)\"")

	return cmd
}
