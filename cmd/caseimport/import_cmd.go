package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/grachmannico95/casedesk-be/internal/client"
	"github.com/grachmannico95/casedesk-be/internal/domain"
	"github.com/grachmannico95/casedesk-be/internal/importer"
	"github.com/grachmannico95/casedesk-be/internal/validation"
	"github.com/grachmannico95/casedesk-be/pkg/logger"
)

type importOptions struct {
	Token   string
	MaxRows int
	Timeout time.Duration
}

func newImportCmd(global *globalOptions) *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import FILE --token <token>",
		Short: "Validate a CSV file and import it when it has no errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(opts.Token) == "" {
				return errors.New("--token is required (or set CASEIMPORT_TOKEN)")
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			log := logger.New(global.LogLevel)
			session := importer.NewSession(
				importer.NewCSVParser(),
				validation.New(),
				client.New(global.Server, log),
				client.ExpiryValidator{},
				log,
				importer.SessionConfig{MaxRows: opts.MaxRows},
			)

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.Timeout)
			defer cancel()

			out := cmd.OutOrStdout()

			view, err := session.Load(ctx, filepath.Base(args[0]), data)
			if err != nil {
				return err
			}
			summary := view.Summary()
			fmt.Fprintf(out, "%d rows, %d valid, %d errors\n", summary.TotalRows, summary.ValidRows, summary.ErrorCount)

			result, err := session.Submit(ctx, opts.Token)
			if errors.Is(err, domain.ErrBatchHasErrors) {
				if printErr := printErrors(out, view.Errors); printErr != nil {
					return printErr
				}
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "imported %d cases, %d failed\n", result.Success, result.Failed)
			if len(result.Errors) > 0 {
				return printErrors(out, result.Errors)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Token, "token", os.Getenv("CASEIMPORT_TOKEN"), "bearer token from `caseimport login`")
	cmd.Flags().IntVar(&opts.MaxRows, "max-rows", 5000, "refuse files with more rows")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 2*time.Minute, "overall time limit")

	return cmd
}
