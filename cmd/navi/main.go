package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errNoMatch) {
			fmt.Fprintf(os.Stderr, "navi: %s\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "navi",
		Short: "Match URLs against URL templates",
		Long: `navi matches URLs against ordered lists of URL templates such as
"myapp://user/<int:id>" and prints the extracted values.

Routes come from --pattern flags or a YAML route file (--routes or
NAVI_ROUTES). Environment variables may also be set in a .env file.`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.routesFile, "routes", "", "YAML route file (overrides NAVI_ROUTES)")
	rootCmd.PersistentFlags().StringArrayVarP(&opts.patterns, "pattern", "p", nil, "pattern to match against, in priority order (repeatable)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides NAVI_LOG_LEVEL)")

	rootCmd.AddCommand(
		matchCmd(opts),
		normalizeCmd(),
		queryCmd(),
		checkCmd(opts),
	)

	return rootCmd
}
