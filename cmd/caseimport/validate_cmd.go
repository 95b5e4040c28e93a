package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grachmannico95/casedesk-be/internal/importer"
	"github.com/grachmannico95/casedesk-be/internal/validation"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a CSV file and print every validation error",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			rows, err := importer.NewCSVParser().Parse(f)
			if err != nil {
				return err
			}

			result := importer.Process(validation.New(), rows)
			out := cmd.OutOrStdout()
			if err := printErrors(out, result.Errors); err != nil {
				return err
			}
			fmt.Fprintf(out, "%d rows, %d valid, %d errors\n", len(rows), len(result.ValidRecords), len(result.Errors))

			if len(result.Errors) > 0 {
				return fmt.Errorf("%s has %d validation errors", args[0], len(result.Errors))
			}
			return nil
		},
	}
}
