// Command vroute serves, inspects and renders routed apps described by a
// vroute.json or vroute.toml file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	vrerrors "github.com/vango-dev/vroute/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	logLevel   string
}

func main() {
	if os.Getenv("NO_COLOR") != "" {
		vrerrors.DisableColors()
	}
	if err := newRootCmd().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError prints coded errors with their detail and hint, anything else
// on one line.
func printError(w io.Writer, err error) {
	var re *vrerrors.RouterError
	if errors.As(err, &re) && re.Code != "" {
		fmt.Fprint(w, re.Format())
		return
	}
	fmt.Fprintf(w, "\033[31mError:\033[0m %s\n", err)
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "vroute",
		Short: "A client-side router for Go UI hosts",
		Long: `vroute maps the browser location to a view and keeps the two in sync.

Routes come from vroute.json or vroute.toml in the working directory,
or from the built-in Home/About/404 set when no file is present.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to vroute.json or vroute.toml")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	rootCmd.AddCommand(
		serveCmd(flags),
		routesCmd(flags),
		resolveCmd(flags),
		renderCmd(flags),
		versionCmd(),
	)

	return rootCmd
}
