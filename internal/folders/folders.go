package folders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"contentops/internal/services"
)

// ErrRemoteCopyFailed reports a copy call that returned no file ID.
var ErrRemoteCopyFailed = errors.New("remote copy failed")

// FindOrCreateSubfolder returns the first folder named name directly under
// parent, creating it when none exists.
func FindOrCreateSubfolder(ctx context.Context, store Store, parent, name string) (string, error) {
	if store == nil {
		return "", services.Wrap(services.ErrConfiguration, "folders", "find or create", "folder store unavailable", nil)
	}
	parent = strings.TrimSpace(parent)
	if parent == "" || strings.TrimSpace(name) == "" {
		return "", services.Wrap(services.ErrValidation, "folders", "find or create", "parent and name are required", nil)
	}

	existing, err := store.FindFolders(ctx, Query{Parent: parent, Name: name})
	if err != nil {
		return "", services.Wrap(services.ErrExternal, "folders", "list", "Failed to look up "+name+" folder", err)
	}
	for _, folder := range existing {
		if folder.ID != "" {
			return folder.ID, nil
		}
	}

	created, err := store.CreateFolder(ctx, parent, name)
	if err != nil {
		return "", services.Wrap(services.ErrExternal, "folders", "create", "Failed to create "+name+" folder", err)
	}
	if created.ID == "" {
		return "", services.Wrap(services.ErrExternal, "folders", "create", "Folder create returned no ID", nil)
	}
	return created.ID, nil
}

// CloneTemplate copies templateID into destFolder as newName.
func CloneTemplate(ctx context.Context, store Store, templateID, destFolder, newName string) (File, error) {
	if store == nil {
		return File{}, services.Wrap(services.ErrConfiguration, "folders", "copy", "folder store unavailable", nil)
	}
	if strings.TrimSpace(templateID) == "" {
		return File{}, services.Wrap(services.ErrConfiguration, "folders", "copy", "template spreadsheet ID is not configured", nil)
	}
	file, err := store.CopyFile(ctx, templateID, destFolder, newName)
	if err != nil {
		return File{}, services.Wrap(services.ErrExternal, "folders", "copy", "Failed to copy template", err)
	}
	if file.ID == "" {
		return File{}, services.Wrap(services.ErrExternal, "folders", "copy", "Failed to copy template", ErrRemoteCopyFailed)
	}
	if file.Name == "" {
		file.Name = newName
	}
	return file, nil
}

// SheetName renders the copied spreadsheet name for a model. format must
// contain a single %s verb.
func SheetName(format, modelName string) string {
	return fmt.Sprintf(format, strings.TrimSpace(modelName))
}
