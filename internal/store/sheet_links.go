package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const sheetLinkColumns = "id, client_model_id, sheet_url, sheet_name, sheet_type, folder_name, folder_id, created_at"

// InsertSheetLink records a generated spreadsheet. The returned link carries
// the assigned ID and creation time.
func (s *Store) InsertSheetLink(ctx context.Context, link SheetLink) (*SheetLink, error) {
	if link.ClientModelID == 0 {
		return nil, errors.New("sheet link requires a client model")
	}
	if link.SheetURL == "" {
		return nil, errors.New("sheet link requires a url")
	}
	created := time.Now().UTC()

	res, err := s.execWithRetry(
		ctx,
		`INSERT INTO sheet_links (
            client_model_id, sheet_url, sheet_name, sheet_type, folder_name, folder_id, created_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		link.ClientModelID,
		link.SheetURL,
		link.SheetName,
		link.SheetType,
		link.FolderName,
		link.FolderID,
		formatTime(created),
	)
	if err != nil {
		return nil, fmt.Errorf("insert sheet link: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	row := s.db.QueryRowContext(ensureContext(ctx), `SELECT `+sheetLinkColumns+` FROM sheet_links WHERE id = ?`, id)
	stored, err := scanSheetLink(row)
	if err != nil {
		return nil, fmt.Errorf("reload sheet link: %w", err)
	}
	return stored, nil
}

// ListSheetLinks returns the links of a model, oldest first.
func (s *Store) ListSheetLinks(ctx context.Context, clientModelID int64) ([]*SheetLink, error) {
	rows, err := s.db.QueryContext(
		ensureContext(ctx),
		`SELECT `+sheetLinkColumns+` FROM sheet_links WHERE client_model_id = ? ORDER BY id`,
		clientModelID,
	)
	if err != nil {
		return nil, fmt.Errorf("list sheet links: %w", err)
	}
	defer rows.Close()

	var links []*SheetLink
	for rows.Next() {
		link, err := scanSheetLink(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sheet link: %w", err)
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

func scanSheetLink(scanner interface{ Scan(dest ...any) error }) (*SheetLink, error) {
	var (
		link       SheetLink
		createdRaw sql.NullString
	)
	if err := scanner.Scan(
		&link.ID,
		&link.ClientModelID,
		&link.SheetURL,
		&link.SheetName,
		&link.SheetType,
		&link.FolderName,
		&link.FolderID,
		&createdRaw,
	); err != nil {
		return nil, err
	}
	link.CreatedAt = parseTime(createdRaw)
	return &link, nil
}
