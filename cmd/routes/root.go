package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/admin-console/internal/views"
	"github.com/JaimeStill/admin-console/pkg/logging"
	"github.com/JaimeStill/admin-console/pkg/navigation"
)

type options struct {
	policy  string
	format  string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "routes",
		Short:        "Inspect the dashboard route table",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.policy, "policy", string(navigation.PolicyReject), "duplicate policy (reject or last-write-wins)")
	cmd.PersistentFlags().StringVarP(&opts.format, "format", "f", formatYAML, "output format (yaml, json or table)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log route table assembly")

	cmd.AddCommand(treeCmd(opts))
	cmd.AddCommand(menuCmd(opts))
	cmd.AddCommand(resolveCmd(opts))

	return cmd
}

// buildTree assembles the route table without templates or an upstream;
// components are inspected, never loaded.
func (o *options) buildTree() (*navigation.Tree, error) {
	policy := navigation.Policy(o.policy)
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	logger := o.logger()
	tree, err := views.NewTree(views.NewCatalog(nil, nil, logger), policy, logger)
	if err != nil {
		return nil, fmt.Errorf("build route table: %w", err)
	}
	return tree, nil
}

func (o *options) logger() *slog.Logger {
	if !o.verbose {
		return logging.Discard()
	}
	return logging.NewWriter(&logging.Config{
		Level:  logging.LevelDebug,
		Format: logging.FormatText,
	}, os.Stderr)
}
