package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/admin-console/pkg/navigation"
)

type matches []navigation.Match

func (m matches) header() []string {
	return []string{"PATH", "NAME", "FULL PATH", "CHAIN", "REDIRECT", "COMPONENT"}
}

func (m matches) rows() [][]string {
	out := make([][]string, len(m))
	for i, match := range m {
		component := ""
		if c := match.Component(); c != nil {
			component = c.Path()
		}
		out[i] = []string{
			match.Path,
			match.Name,
			match.FullPath,
			strings.Join(match.Chain, " > "),
			match.Redirect,
			component,
		}
	}
	return out
}

func resolveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path>...",
		Short: "Resolve request paths against the route table",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := opts.buildTree()
			if err != nil {
				return err
			}

			out := make(matches, len(args))
			for i, path := range args {
				out[i] = tree.Resolve(path)
			}

			if len(out) == 1 && opts.format != formatTable {
				return write(cmd.OutOrStdout(), opts.format, out[0])
			}
			return write(cmd.OutOrStdout(), opts.format, []navigation.Match(out))
		},
	}
}
