package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/grachmannico95/casedesk-be/internal/client"
	"github.com/grachmannico95/casedesk-be/pkg/logger"
)

type loginOptions struct {
	Email    string
	Password string
}

func newLoginCmd(global *globalOptions) *cobra.Command {
	var opts loginOptions

	cmd := &cobra.Command{
		Use:   "login --email <email> --password <password>",
		Short: "Log in and print a bearer token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(opts.Email) == "" || opts.Password == "" {
				return errors.New("--email and --password are required")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			c := client.New(global.Server, logger.New(global.LogLevel))
			resp, err := c.Login(ctx, opts.Email, opts.Password)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.Token)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Email, "email", "", "account email")
	cmd.Flags().StringVar(&opts.Password, "password", "", "account password")

	return cmd
}
