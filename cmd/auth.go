package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/devdhirendra/enhanced-ns-sub000/pkg/api"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newLoginCommand(a *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and keep the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if password == "" {
				password = os.Getenv("NETOPS_PASSWORD")
			}
			if email == "" || password == "" {
				return errors.New("login needs --email and --password (or NETOPS_PASSWORD)")
			}

			client, err := a.apiClient()
			if err != nil {
				return err
			}
			resp, err := client.Auth().Login(cmd.Context(), email, password)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}
			if resp.Token == "" {
				return errors.New("login: response carried no token")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s). Dashboard: %s\n", resp.UserID, resp.Role, resp.Role.Dashboard())
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	return cmd
}

func newLogoutCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and forget the token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.apiClient()
			if err != nil {
				return err
			}
			if err := client.Auth().Logout(cmd.Context()); err != nil {
				a.logger.Warn("server logout failed; local token removed anyway", zap.Error(err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newStatusCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.apiClient()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "API:    %s\n", client.BaseURL())

			token, ok := client.CurrentToken()
			if !ok {
				fmt.Fprintln(out, "Token:  none")
				return nil
			}

			claims, err := api.TokenClaims(token)
			if err != nil {
				fmt.Fprintln(out, "Token:  held (not decodable)")
				return nil
			}
			fmt.Fprintln(out, "Token:  held")
			fmt.Fprintf(out, "User:   %s\n", claims.UserID)
			fmt.Fprintf(out, "Role:   %s\n", claims.Role)
			if !claims.ExpiresAt.IsZero() {
				fmt.Fprintf(out, "Expiry: %s\n", claims.ExpiresAt.Format(time.RFC3339))
			}
			fmt.Fprintf(out, "Valid:  %t\n", client.Authenticated(time.Now()))
			return nil
		},
	}
}
