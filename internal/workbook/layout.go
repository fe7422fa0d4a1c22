package workbook

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"contentops/internal/config"
)

// Selection is the caller's choice of category tabs to generate.
type Selection struct {
	Free bool
	Paid bool
}

// Empty reports whether no category is selected.
func (s Selection) Empty() bool {
	return !s.Free && !s.Paid
}

// String renders the selection for logs.
func (s Selection) String() string {
	var parts []string
	if s.Free {
		parts = append(parts, "free")
	}
	if s.Paid {
		parts = append(parts, "paid")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// Cell is a 0-based grid coordinate.
type Cell struct {
	Row int64
	Col int64
}

// A1 renders the cell in A1 notation.
func (c Cell) A1() string {
	name, err := excelize.CoordinatesToCellName(int(c.Col)+1, int(c.Row)+1)
	if err != nil {
		return fmt.Sprintf("R%dC%d", c.Row+1, c.Col+1)
	}
	return name
}

// ParseCell converts an A1 reference such as "D3" into a 0-based Cell.
func ParseCell(ref string) (Cell, error) {
	col, row, err := excelize.CellNameToCoordinates(strings.TrimSpace(ref))
	if err != nil {
		return Cell{}, fmt.Errorf("parse cell %q: %w", ref, err)
	}
	return Cell{Row: int64(row - 1), Col: int64(col - 1)}, nil
}

// Layout holds the template conventions the workbook steps depend on.
type Layout struct {
	SourceTabID      int64
	FreeTabName      string
	PaidTabName      string
	FirstInsertIndex int64
	HeaderColumns    int64
	MMTabName        string
	POSTTabName      string
	ProtectedCells   []Cell
}

// LayoutFromConfig builds a Layout from the caption bank configuration.
func LayoutFromConfig(cb config.CaptionBank) (Layout, error) {
	cells := make([]Cell, 0, len(cb.ProtectedCells))
	for _, ref := range cb.ProtectedCells {
		cell, err := ParseCell(ref)
		if err != nil {
			return Layout{}, err
		}
		cells = append(cells, cell)
	}
	return Layout{
		SourceTabID:      cb.SourceTabID,
		FreeTabName:      cb.FreeTabName,
		PaidTabName:      cb.PaidTabName,
		FirstInsertIndex: cb.FirstInsertIndex,
		HeaderColumns:    cb.HeaderColumns,
		MMTabName:        cb.MMTabName,
		POSTTabName:      cb.POSTTabName,
		ProtectedCells:   cells,
	}, nil
}
