package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"contentops/internal/store"
)

const exportSheetName = "Sheet Links"

var linkHeaders = []string{"ID", "Sheet Name", "Type", "Folder", "Folder ID", "URL", "Created"}

func newLinksCommand(ctx *commandContext) *cobra.Command {
	linksCmd := &cobra.Command{
		Use:   "links",
		Short: "Inspect generated spreadsheets",
	}
	linksCmd.AddCommand(newLinksListCommand(ctx))
	linksCmd.AddCommand(newLinksExportCommand(ctx))
	return linksCmd
}

func newLinksListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list <model-id>",
		Short: "List sheet links of a client model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			links, err := loadLinks(cmd, ctx, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(links) == 0 {
				fmt.Fprintln(out, "No sheet links")
				return nil
			}
			fmt.Fprintln(out, renderTable(linkHeaders, linkRows(links), []columnAlignment{alignRight}))
			return nil
		},
	}
}

func newLinksExportCommand(ctx *commandContext) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export <model-id>",
		Short: "Write sheet links of a client model to an xlsx workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outPath = strings.TrimSpace(outPath)
			if outPath == "" {
				return errors.New("--out is required")
			}
			links, err := loadLinks(cmd, ctx, args[0])
			if err != nil {
				return err
			}
			if err := exportLinks(outPath, links); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d sheet links to %s\n", len(links), outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Destination .xlsx path")
	return cmd
}

func loadLinks(cmd *cobra.Command, ctx *commandContext, rawID string) ([]*store.SheetLink, error) {
	id, err := parseModelID(rawID)
	if err != nil {
		return nil, err
	}
	var links []*store.SheetLink
	err = ctx.withStore(func(st *store.Store) error {
		model, err := st.GetClientModel(commandContextOf(cmd), id)
		if err != nil {
			return err
		}
		if model == nil {
			return fmt.Errorf("client model %d not found", id)
		}
		links, err = st.ListSheetLinks(commandContextOf(cmd), id)
		return err
	})
	return links, err
}

func linkRows(links []*store.SheetLink) [][]string {
	rows := make([][]string, 0, len(links))
	for _, link := range links {
		created := ""
		if !link.CreatedAt.IsZero() {
			created = link.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", link.ID),
			link.SheetName,
			link.SheetType,
			link.FolderName,
			link.FolderID,
			link.SheetURL,
			created,
		})
	}
	return rows
}

func exportLinks(path string, links []*store.SheetLink) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheetName); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}
	rows := append([][]string{linkHeaders}, linkRows(links)...)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(exportSheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
