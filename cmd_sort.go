package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/datawire/verset/pkg/cliutil"
	"github.com/datawire/verset/pkg/version"
)

func init() {
	var argPreferred bool
	cmd := &cobra.Command{
		Use:   "sort [flags] VERSION...",
		Short: "Sort versions in ascending order",
		Long: "Sort the given versions the way the resolver orders them: RPM-style " +
			"segment comparison, with develop-like names above every numbered " +
			"version.  With --preferred, print only the version a resolver " +
			"would pick.",
		Args: cliutil.WrapPositionalArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			versions := make([]version.Version, 0, len(args))
			list := version.NewList()
			for _, arg := range args {
				v, err := version.ParseVersion(arg)
				if err != nil {
					return err
				}
				versions = append(versions, v)
				list.Add(v)
			}
			if argPreferred {
				fmt.Fprintln(cmd.OutOrStdout(), list.Preferred())
				return nil
			}
			sort.SliceStable(versions, func(i, j int) bool {
				return versions[i].Less(versions[j])
			})
			for _, v := range versions {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&argPreferred, "preferred", false, "Print only the version a resolver would pick")

	argparser.AddCommand(cmd)
}
