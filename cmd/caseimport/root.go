package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const defaultServer = "http://localhost:3000"

type globalOptions struct {
	Server   string
	LogLevel string
}

func newRootCmd() *cobra.Command {
	var opts globalOptions

	cmd := &cobra.Command{
		Use:           "caseimport",
		Short:         "Validate and bulk import case CSV files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.Server, "server", envOr("CASEIMPORT_SERVER", defaultServer), "case API base URL")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(newLoginCmd(&opts))
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newImportCmd(&opts))
	return cmd
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
