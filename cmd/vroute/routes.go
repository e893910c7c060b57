package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vroute/pkg/router"
)

func routesCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the route table",
		Long: `List the routes in table order with their names and sources.

Examples:
  vroute routes
  vroute routes --config site/vroute.toml`,
		Args: cobra.NoArgs,
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

			sources := make(map[string]string, len(cfg.Routes))
			for _, rc := range cfg.Routes {
				switch {
				case rc.Component != "":
					sources[rc.Path] = rc.Component
				default:
					sources[rc.Path] = "static"
				}
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PATH\tNAME\tCOMPONENT")
			for _, rt := range app.Routes() {
				name := rt.Name
				if name == "" {
					name = "-"
				}
				source, ok := sources[rt.Key]
				if !ok {
					source = "builtin"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", rt.Key, name, source)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if _, ok := app.Router().Table().Get(router.Wildcard); !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "\nNo wildcard route: unmatched paths render nothing.")
			}
			return nil
		},
	}
}
