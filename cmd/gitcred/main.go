package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/systmms/gitcred/cmd/gitcred/commands"
	"github.com/systmms/gitcred/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Global flags
	var (
		noColor bool
		debug   bool
	)

	opts := &commands.Options{}

	rootCmd := &cobra.Command{
		Use:   "gitcred",
		Short: "Discover git credentials through gitcredentials(7) helpers",
		Long: `gitcred resolves a username/password pair for a URL by consulting git
configuration and running the configured credential helpers in precedence
order. It can also act as a credential helper itself, storing credentials
in the operating system keyring.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize logger with parsed flags
			opts.Logger = logging.New(debug, noColor)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(
		commands.NewFillCommand(opts),
		commands.NewHelperCommand(opts),
	)

	return rootCmd.Execute()
}
