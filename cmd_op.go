package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datawire/verset/pkg/cliutil"
	"github.com/datawire/verset/pkg/version"
)

func init() {
	for _, op := range []struct {
		name  string
		short string
		fn    func(a, b version.Value) version.Value
	}{
		{"union", "Print the union of two constraints",
			version.Union},
		{"intersection", "Print the intersection of two constraints (empty output means no version fits both)",
			version.Intersection},
	} {
		fn := op.fn
		argparser.AddCommand(&cobra.Command{
			Use:   op.name + " CONSTRAINT CONSTRAINT",
			Short: op.short,
			Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(2)),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := parseConstraint(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				b, err := parseConstraint(cmd.Context(), args[1])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), fn(a, b))
				return nil
			},
		})
	}

	for _, op := range []struct {
		name  string
		short string
		fn    func(a, b version.Value) bool
	}{
		{"satisfies", "Report whether the first constraint satisfies the second",
			version.Satisfies},
		{"overlaps", "Report whether two constraints share any version",
			version.Overlaps},
		{"contains", "Report whether the first constraint wholly contains the second",
			version.Contains},
	} {
		fn := op.fn
		argparser.AddCommand(&cobra.Command{
			Use:   op.name + " CONSTRAINT CONSTRAINT",
			Short: op.short,
			Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(2)),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, err := parseConstraint(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				b, err := parseConstraint(cmd.Context(), args[1])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), fn(a, b))
				return nil
			},
		})
	}
}
