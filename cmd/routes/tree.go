package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/admin-console/pkg/navigation"
)

type entries []navigation.Entry

func (e entries) header() []string {
	return []string{"NAME", "PATH", "COMPONENT", "REDIRECT", "HIDDEN", "TITLE"}
}

func (e entries) rows() [][]string {
	out := make([][]string, len(e))
	for i, entry := range e {
		out[i] = []string{
			strings.Repeat("  ", entry.Depth) + entry.Name,
			entry.FullPath,
			entry.Component,
			entry.Redirect,
			flag(entry.Hidden),
			entry.Title,
		}
	}
	return out
}

func treeCmd(opts *options) *cobra.Command {
	var flat bool

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the assembled route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := opts.buildTree()
			if err != nil {
				return err
			}

			if flat || opts.format == formatTable {
				return write(cmd.OutOrStdout(), opts.format, entries(tree.Flatten()))
			}
			return write(cmd.OutOrStdout(), opts.format, tree.Routes())
		},
	}

	cmd.Flags().BoolVar(&flat, "flat", false, "list routes depth-first with full paths")

	return cmd
}
