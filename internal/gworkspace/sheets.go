package gworkspace

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/sheets/v4"

	"contentops/internal/workbook"
)

var _ workbook.Store = (*Client)(nil)

// DuplicateTabs sends every duplicate request in one batchUpdate and maps the
// replies back to tabs in request order.
func (c *Client) DuplicateTabs(ctx context.Context, spreadsheetID string, reqs []workbook.DuplicateRequest) ([]workbook.Tab, error) {
	requests := make([]*sheets.Request, 0, len(reqs))
	for _, req := range reqs {
		requests = append(requests, &sheets.Request{
			DuplicateSheet: &sheets.DuplicateSheetRequest{
				SourceSheetId:    req.SourceTabID,
				InsertSheetIndex: req.InsertIndex,
				NewSheetName:     req.NewName,
				ForceSendFields:  []string{"SourceSheetId", "InsertSheetIndex"},
			},
		})
	}
	resp, err := c.batchUpdate(ctx, spreadsheetID, requests)
	if err != nil {
		return nil, err
	}
	if len(resp.Replies) != len(reqs) {
		return nil, fmt.Errorf("duplicate sheet: expected %d replies, got %d", len(reqs), len(resp.Replies))
	}
	tabs := make([]workbook.Tab, 0, len(reqs))
	for i, reply := range resp.Replies {
		if reply == nil || reply.DuplicateSheet == nil || reply.DuplicateSheet.Properties == nil {
			return nil, fmt.Errorf("duplicate sheet: reply %d missing sheet properties", i)
		}
		props := reply.DuplicateSheet.Properties
		tabs = append(tabs, workbook.Tab{ID: props.SheetId, Name: props.Title})
	}
	return tabs, nil
}

// ListTabs reads the sheet properties of a spreadsheet.
func (c *Client) ListTabs(ctx context.Context, spreadsheetID string) ([]workbook.Tab, error) {
	spreadsheet, err := c.sheets.Spreadsheets.Get(spreadsheetID).
		Fields("sheets.properties").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	tabs := make([]workbook.Tab, 0, len(spreadsheet.Sheets))
	for _, sheet := range spreadsheet.Sheets {
		if sheet == nil || sheet.Properties == nil {
			continue
		}
		tabs = append(tabs, workbook.Tab{ID: sheet.Properties.SheetId, Name: sheet.Properties.Title})
	}
	return tabs, nil
}

// UpdateCells writes user-entered values in one batchUpdate.
func (c *Client) UpdateCells(ctx context.Context, spreadsheetID string, writes []workbook.CellWrite) error {
	requests := make([]*sheets.Request, 0, len(writes))
	for _, write := range writes {
		value := write.Value
		extended := &sheets.ExtendedValue{StringValue: &value}
		if write.Formula {
			extended = &sheets.ExtendedValue{FormulaValue: &value}
		}
		endCol := write.EndCol
		if endCol <= write.Cell.Col {
			endCol = write.Cell.Col + 1
		}
		requests = append(requests, &sheets.Request{
			UpdateCells: &sheets.UpdateCellsRequest{
				Range: gridRange(write.TabID, write.Cell.Row, write.Cell.Col, endCol),
				Rows: []*sheets.RowData{{
					Values: []*sheets.CellData{{UserEnteredValue: extended}},
				}},
				Fields: "userEnteredValue",
			},
		})
	}
	_, err := c.batchUpdate(ctx, spreadsheetID, requests)
	return err
}

// ProtectRanges adds hard protected ranges in one batchUpdate.
func (c *Client) ProtectRanges(ctx context.Context, spreadsheetID string, ranges []workbook.ProtectedRange) error {
	requests := make([]*sheets.Request, 0, len(ranges))
	for _, rng := range ranges {
		requests = append(requests, &sheets.Request{
			AddProtectedRange: &sheets.AddProtectedRangeRequest{
				ProtectedRange: &sheets.ProtectedRange{
					Range:           gridRange(rng.TabID, rng.Cell.Row, rng.Cell.Col, rng.Cell.Col+1),
					Description:     rng.Description,
					WarningOnly:     false,
					ForceSendFields: []string{"WarningOnly"},
				},
			},
		})
	}
	_, err := c.batchUpdate(ctx, spreadsheetID, requests)
	return err
}

func (c *Client) batchUpdate(ctx context.Context, spreadsheetID string, requests []*sheets.Request) (*sheets.BatchUpdateSpreadsheetResponse, error) {
	resp, err := c.sheets.Spreadsheets.BatchUpdate(spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, errors.New("batch update returned no response")
	}
	return resp, nil
}

// gridRange covers one row and columns [startCol, endCol).
func gridRange(tabID, row, startCol, endCol int64) *sheets.GridRange {
	return &sheets.GridRange{
		SheetId:          tabID,
		StartRowIndex:    row,
		EndRowIndex:      row + 1,
		StartColumnIndex: startCol,
		EndColumnIndex:   endCol,
		ForceSendFields:  []string{"SheetId", "StartRowIndex", "StartColumnIndex"},
	}
}
