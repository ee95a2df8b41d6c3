package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datawire/verset/pkg/cliutil"
	"github.com/datawire/verset/pkg/version"
)

func init() {
	var argYAML bool
	cmd := &cobra.Command{
		Use:   "parse [flags] CONSTRAINT...",
		Short: "Parse constraints and print their canonical forms",
		Long: "Parse each CONSTRAINT (a version, a range such as \"1.0:2.0\", or a " +
			"comma-separated list) and print it back in canonical form.  With " +
			"--yaml, print the serialized mapping used in lockfiles instead.",
		Args: cliutil.WrapPositionalArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				val, err := parseConstraint(cmd.Context(), arg)
				if err != nil {
					return err
				}
				if argYAML {
					data, err := version.MarshalYAML(val)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s", data)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), val)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&argYAML, "yaml", false, "Print the serialized YAML mapping instead of the canonical string")

	argparser.AddCommand(cmd)
}
