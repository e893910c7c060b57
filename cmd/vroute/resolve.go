package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vroute/pkg/router"
)

func resolveCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path>...",
		Short: "Show which route each path selects",
		Long: `Resolve paths against the route table. Exact keys win; anything
else falls back to the wildcard route, if one exists.

Examples:
  vroute resolve /about /missing`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			app, err := mountAt(cfg, logger, "/")
			if err != nil {
				return err
			}
			defer app.Close()

			table := app.Router().Table()
			for _, key := range args {
				_, match := table.Resolve(key)
				switch match {
				case router.MatchExact:
					fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (exact)\n", key, key)
				case router.MatchWildcard:
					fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (wildcard)\n", key, router.Wildcard)
				default:
					fmt.Fprintf(cmd.OutOrStdout(), "%s -> nothing\n", key)
				}
			}
			return nil
		},
	}
}
