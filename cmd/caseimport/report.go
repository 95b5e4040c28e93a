package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/grachmannico95/casedesk-be/internal/domain"
)

func printErrors(w io.Writer, errs []domain.ValidationError) error {
	if len(errs) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ROW\tFIELD\tMESSAGE\tVALUE")
	for _, e := range errs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%q\n", e.Row, e.Field, e.Message, e.Value)
	}
	return tw.Flush()
}
