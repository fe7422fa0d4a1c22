package workbook

import (
	"context"
	"fmt"
	"strings"

	"contentops/internal/services"
)

// DuplicateTabs copies the source tab once per selected category, free
// before paid, in one batch. Nothing is sent for an empty selection.
func DuplicateTabs(ctx context.Context, store Store, spreadsheetID string, layout Layout, sel Selection) ([]Tab, error) {
	reqs := duplicateRequests(layout, sel)
	if len(reqs) == 0 {
		return []Tab{}, nil
	}
	tabs, err := store.DuplicateTabs(ctx, spreadsheetID, reqs)
	if err != nil {
		return nil, services.Wrap(services.ErrExternal, "workbook", "duplicate tabs", "Failed to duplicate tabs", err)
	}
	if len(tabs) != len(reqs) {
		return nil, services.Wrap(services.ErrExternal, "workbook", "duplicate tabs",
			fmt.Sprintf("Expected %d duplicated tabs, got %d", len(reqs), len(tabs)), nil)
	}
	return tabs, nil
}

func duplicateRequests(layout Layout, sel Selection) []DuplicateRequest {
	var reqs []DuplicateRequest
	if sel.Free {
		reqs = append(reqs, DuplicateRequest{
			SourceTabID: layout.SourceTabID,
			InsertIndex: layout.FirstInsertIndex,
			NewName:     layout.FreeTabName,
		})
	}
	if sel.Paid {
		index := layout.FirstInsertIndex
		if sel.Free {
			index++
		}
		reqs = append(reqs, DuplicateRequest{
			SourceTabID: layout.SourceTabID,
			InsertIndex: index,
			NewName:     layout.PaidTabName,
		})
	}
	return reqs
}

// WriteHeaders writes "{modelName} {tabName}" into the merged header row of
// each tab in one batch.
func WriteHeaders(ctx context.Context, store Store, spreadsheetID string, layout Layout, tabs []Tab, modelName string) error {
	if len(tabs) == 0 {
		return nil
	}
	span := layout.HeaderColumns
	if span < 1 {
		span = 1
	}
	writes := make([]CellWrite, 0, len(tabs))
	for _, tab := range tabs {
		writes = append(writes, CellWrite{
			TabID:  tab.ID,
			Cell:   Cell{Row: 0, Col: 0},
			EndCol: span,
			Value:  strings.TrimSpace(modelName) + " " + tab.Name,
		})
	}
	if err := store.UpdateCells(ctx, spreadsheetID, writes); err != nil {
		return services.Wrap(services.ErrExternal, "workbook", "write headers", "Failed to update headers", err)
	}
	return nil
}

// WriteAggregationFormulas writes the MM and POST formulas into A2 of their
// MasterSheet tabs. A formula is skipped when it is empty or its tab is
// missing; no write is issued when both are skipped.
func WriteAggregationFormulas(ctx context.Context, store Store, spreadsheetID string, layout Layout, sel Selection) error {
	formulas := BuildFormulas(layout, sel)
	if formulas.MM == "" && formulas.POST == "" {
		return nil
	}
	tabs, err := store.ListTabs(ctx, spreadsheetID)
	if err != nil {
		return services.Wrap(services.ErrExternal, "workbook", "list tabs", "Failed to read spreadsheet tabs", err)
	}
	byName := make(map[string]int64, len(tabs))
	for _, tab := range tabs {
		if _, seen := byName[tab.Name]; !seen {
			byName[tab.Name] = tab.ID
		}
	}

	var writes []CellWrite
	for _, target := range []struct {
		tab     string
		formula string
	}{
		{layout.MMTabName, formulas.MM},
		{layout.POSTTabName, formulas.POST},
	} {
		id, ok := byName[target.tab]
		if !ok || target.formula == "" {
			continue
		}
		writes = append(writes, CellWrite{
			TabID:   id,
			Cell:    Cell{Row: 1, Col: 0},
			EndCol:  1,
			Value:   target.formula,
			Formula: true,
		})
	}
	if len(writes) == 0 {
		return nil
	}
	if err := store.UpdateCells(ctx, spreadsheetID, writes); err != nil {
		return services.Wrap(services.ErrExternal, "workbook", "write formulas", "Failed to update formulas", err)
	}
	return nil
}

// ProtectRanges adds one hard protected range per configured cell on every
// tab, in one batch.
func ProtectRanges(ctx context.Context, store Store, spreadsheetID string, layout Layout, tabs []Tab) error {
	if len(tabs) == 0 || len(layout.ProtectedCells) == 0 {
		return nil
	}
	ranges := make([]ProtectedRange, 0, len(tabs)*len(layout.ProtectedCells))
	for _, tab := range tabs {
		for _, cell := range layout.ProtectedCells {
			ranges = append(ranges, ProtectedRange{
				TabID:       tab.ID,
				Cell:        cell,
				Description: tab.Name + " " + cell.A1(),
			})
		}
	}
	if err := store.ProtectRanges(ctx, spreadsheetID, ranges); err != nil {
		return services.Wrap(services.ErrExternal, "workbook", "protect ranges", "Failed to protect cells", err)
	}
	return nil
}
