package gworkspace

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/api/drive/v3"

	"contentops/internal/folders"
)

var _ folders.Store = (*Client)(nil)

// FindFolders lists non-trashed folders named q.Name directly under q.Parent.
func (c *Client) FindFolders(ctx context.Context, q folders.Query) ([]folders.Folder, error) {
	query := fmt.Sprintf("'%s' in parents and name = '%s' and mimeType = '%s' and trashed = false",
		escapeQuery(q.Parent), escapeQuery(q.Name), folders.FolderMimeType)
	list, err := c.drive.Files.List().
		Q(query).
		Fields("files(id, name)").
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	out := make([]folders.Folder, 0, len(list.Files))
	for _, file := range list.Files {
		if file == nil || file.Id == "" {
			continue
		}
		out = append(out, folders.Folder{ID: file.Id, Name: file.Name})
	}
	return out, nil
}

// CreateFolder creates a folder named name under parent.
func (c *Client) CreateFolder(ctx context.Context, parent, name string) (folders.Folder, error) {
	created, err := c.drive.Files.Create(&drive.File{
		Name:     name,
		MimeType: folders.FolderMimeType,
		Parents:  []string{parent},
	}).
		Fields("id, name").
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return folders.Folder{}, err
	}
	if created == nil || created.Id == "" {
		return folders.Folder{}, errors.New("drive create returned no folder id")
	}
	return folders.Folder{ID: created.Id, Name: created.Name}, nil
}

// CopyFile copies fileID into parent as name. A reply without an ID yields a
// zero File so callers can classify the failure.
func (c *Client) CopyFile(ctx context.Context, fileID, parent, name string) (folders.File, error) {
	copied, err := c.drive.Files.Copy(fileID, &drive.File{
		Name:    name,
		Parents: []string{parent},
	}).
		Fields("id, name").
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return folders.File{}, err
	}
	if copied == nil {
		return folders.File{}, nil
	}
	return folders.File{ID: copied.Id, Name: copied.Name}, nil
}

func escapeQuery(value string) string {
	value = strings.ReplaceAll(value, `\`, `\\`)
	return strings.ReplaceAll(value, `'`, `\'`)
}
