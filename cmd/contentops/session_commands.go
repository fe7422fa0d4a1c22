package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"contentops/internal/store"
)

func newSessionCommand(ctx *commandContext) *cobra.Command {
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Issue and revoke API sessions",
	}
	sessionCmd.AddCommand(newSessionCreateCommand(ctx))
	sessionCmd.AddCommand(newSessionRevokeCommand(ctx))
	return sessionCmd
}

func newSessionCreateCommand(ctx *commandContext) *cobra.Command {
	var email, role, googleToken string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			email = strings.TrimSpace(email)
			role = strings.TrimSpace(role)
			if email == "" || role == "" {
				return errors.New("--email and --role are required")
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			ttl := time.Duration(cfg.Auth.SessionTTLHours) * time.Hour
			return ctx.withStore(func(st *store.Store) error {
				session, err := st.CreateSession(commandContextOf(cmd), email, role, strings.TrimSpace(googleToken), ttl)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, session.Token)
				if !cfg.RoleAllowed(session.Role) {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: role %s is not authorized for privileged endpoints\n", session.Role)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Session user email")
	cmd.Flags().StringVar(&role, "role", "", "Session role (for example ADMIN)")
	cmd.Flags().StringVar(&googleToken, "google-token", "", "Google OAuth access token used for Drive and Sheets calls")
	return cmd
}

func newSessionRevokeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "revoke <token>",
		Short: "Delete a session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				if err := st.DeleteSession(commandContextOf(cmd), strings.TrimSpace(args[0])); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Session revoked")
				return nil
			})
		},
	}
}
