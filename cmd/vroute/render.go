package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vroute/pkg/render"
)

func renderCmd(flags *globalFlags) *cobra.Command {
	var (
		page   bool
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "render <path>",
		Short: "Render the app at a path to HTML",
		Long: `Mount the app on an in-memory window at path and print its HTML.

Examples:
  vroute render /about
  vroute render /about --page`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			app, err := mountAt(cfg, logger, args[0])
			if err != nil {
				return err
			}
			defer app.Close()

			renderer := render.NewRenderer(render.RendererConfig{Pretty: pretty})
			html, err := renderer.RenderToString(app.Instance().Tree())
			if err != nil {
				return err
			}

			if !page {
				fmt.Fprintln(cmd.OutOrStdout(), html)
				return nil
			}
			return renderer.RenderPage(cmd.OutOrStdout(), render.PageData{
				Title:     cfg.Name,
				MountHTML: html,
				ClientConfig: map[string]any{
					"mode": cfg.Mode,
					"base": cfg.Base,
				},
			})
		},
	}

	cmd.Flags().BoolVar(&page, "page", false, "Wrap the output in the shell document")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the output")

	return cmd
}
