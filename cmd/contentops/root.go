package main

import (
	"github.com/spf13/cobra"

	"contentops/internal/server"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	return buildRootCommand(newCommandContext(&configFlag, nil))
}

func buildRootCommand(ctx *commandContext) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "contentops",
		Short:         "Caption bank provisioning and client model management",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(ctx.configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newServeCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newModelCommand(ctx))
	rootCmd.AddCommand(newSessionCommand(ctx))
	rootCmd.AddCommand(newLinksCommand(ctx))
	rootCmd.AddCommand(newProvisionCommand(ctx))

	return rootCmd
}

// workspaceOpener returns the configured opener, defaulting to Google.
func (c *commandContext) workspaceOpener() (server.WorkspaceOpener, error) {
	if c.openWorkspace != nil {
		return c.openWorkspace, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return server.GoogleWorkspaces(cfg.Google), nil
}
