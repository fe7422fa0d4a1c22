package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"contentops/internal/folders"
	"contentops/internal/store"
)

func newModelCommand(ctx *commandContext) *cobra.Command {
	modelCmd := &cobra.Command{
		Use:   "model",
		Short: "Manage client models",
	}
	modelCmd.AddCommand(newModelAddCommand(ctx))
	modelCmd.AddCommand(newModelListCommand(ctx))
	modelCmd.AddCommand(newModelSetFolderCommand(ctx))
	return modelCmd
}

func newModelAddCommand(ctx *commandContext) *cobra.Command {
	var launches string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Register a client model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			launches = strings.TrimSpace(launches)
			if launches != "" {
				if _, err := folders.ResolveFolderID(launches); err != nil {
					return fmt.Errorf("launches folder: %w", err)
				}
			}
			return ctx.withStore(func(st *store.Store) error {
				model, err := st.CreateClientModel(commandContextOf(cmd), args[0], launches)
				if errors.Is(err, store.ErrDuplicateModelName) {
					return fmt.Errorf("a client model named %q already exists", store.CanonicalName(args[0]))
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created client model %d (%s)\n", model.ID, model.Name)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&launches, "launches", "", "Launches folder URL or ID")
	return cmd
}

func newModelListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List client models",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				models, err := st.ListClientModels(commandContextOf(cmd))
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(models) == 0 {
					fmt.Fprintln(out, "No client models")
					return nil
				}
				rows := make([][]string, 0, len(models))
				for _, m := range models {
					rows = append(rows, []string{
						fmt.Sprintf("%d", m.ID),
						m.Name,
						m.LaunchesFolder,
						yesNo(m.HasLaunchesFolder()),
					})
				}
				headers := []string{"ID", "Name", "Launches Folder", "Ready"}
				fmt.Fprintln(out, renderTable(headers, rows, []columnAlignment{alignRight}))
				return nil
			})
		},
	}
}

func newModelSetFolderCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set-folder <model-id> <launches-url-or-id>",
		Short: "Set the launches folder of a client model",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseModelID(args[0])
			if err != nil {
				return err
			}
			ref := strings.TrimSpace(args[1])
			if _, err := folders.ResolveFolderID(ref); err != nil {
				return fmt.Errorf("launches folder: %w", err)
			}
			return ctx.withStore(func(st *store.Store) error {
				if err := st.SetLaunchesFolder(commandContextOf(cmd), id, ref); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated launches folder for client model %d\n", id)
				return nil
			})
		},
	}
}
