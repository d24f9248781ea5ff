package main

import (
	"github.com/spf13/cobra"

	"github.com/JaimeStill/admin-console/pkg/navigation"
)

type menuItems []navigation.MenuItem

func (m menuItems) header() []string {
	return []string{"NAME", "PATH", "TITLE", "ICON"}
}

func (m menuItems) rows() [][]string {
	var out [][]string
	var walk func(items []navigation.MenuItem, indent string)
	walk = func(items []navigation.MenuItem, indent string) {
		for _, item := range items {
			out = append(out, []string{indent + item.Name, item.Path, item.Title, item.Icon})
			walk(item.Children, indent+"  ")
		}
	}
	walk(m, "")
	return out
}

func menuCmd(opts *options) *cobra.Command {
	var (
		allow []string
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Project the navigation menu for a permission set",
		Long: `Project the navigation menu for the route names given by --allow.
Hidden routes never appear; a route survives only when its ancestors do.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := opts.buildTree()
			if err != nil {
				return err
			}

			allowed := navigation.NewNameSet(allow...)
			if all {
				allowed = navigation.NewNameSet(tree.Names()...)
			}

			menu := navigation.Project(tree, allowed)
			if opts.format == formatTable {
				return write(cmd.OutOrStdout(), opts.format, menuItems(menu.Items))
			}
			return write(cmd.OutOrStdout(), opts.format, menu)
		},
	}

	cmd.Flags().StringSliceVar(&allow, "allow", nil, "permitted route names")
	cmd.Flags().BoolVar(&all, "all", false, "permit every route name")
	cmd.MarkFlagsMutuallyExclusive("allow", "all")

	return cmd
}
