package workbook

import "context"

// Tab is a sheet within a spreadsheet.
type Tab struct {
	ID   int64
	Name string
}

// DuplicateRequest copies SourceTabID to InsertIndex under NewName.
type DuplicateRequest struct {
	SourceTabID int64
	InsertIndex int64
	NewName     string
}

// CellWrite sets the user-entered value of one cell. The write covers
// columns [Cell.Col, EndCol) of Cell.Row; cells beyond the first are cleared.
// Formula marks Value as formula text rather than a literal string.
type CellWrite struct {
	TabID   int64
	Cell    Cell
	EndCol  int64
	Value   string
	Formula bool
}

// ProtectedRange marks a single cell as non-editable.
type ProtectedRange struct {
	TabID       int64
	Cell        Cell
	Description string
}

// Store is the remote spreadsheet API consumed by this package. Each method
// maps to exactly one remote call.
type Store interface {
	DuplicateTabs(ctx context.Context, spreadsheetID string, reqs []DuplicateRequest) ([]Tab, error)
	ListTabs(ctx context.Context, spreadsheetID string) ([]Tab, error)
	UpdateCells(ctx context.Context, spreadsheetID string, writes []CellWrite) error
	ProtectRanges(ctx context.Context, spreadsheetID string, ranges []ProtectedRange) error
}
