package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"contentops/internal/logging"
	"contentops/internal/server"
	"contentops/internal/store"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API in the foreground",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if bind != "" {
				cfg.Server.Bind = bind
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			st, err := store.Open(cfg)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer st.Close()

			var opts []server.Option
			if ctx.openWorkspace != nil {
				opts = append(opts, server.WithWorkspaces(ctx.openWorkspace))
			}
			srv, err := server.New(cfg, st, logger, opts...)
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(commandContextOf(cmd), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			fmt.Fprintf(cmd.OutOrStdout(), "Serving on %s\n", cfg.Server.Bind)
			if err := srv.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&bind, "bind", "", "Override the configured listen address")
	return cmd
}
