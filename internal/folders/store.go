package folders

import "context"

// FolderMimeType identifies Drive folders.
const FolderMimeType = "application/vnd.google-apps.folder"

// Folder is a remote folder reference.
type Folder struct {
	ID   string
	Name string
}

// File is a remote file reference returned by a copy.
type File struct {
	ID   string
	Name string
}

// Query narrows a folder listing to direct, non-trashed children of Parent
// with exactly Name.
type Query struct {
	Parent string
	Name   string
}

// Store is the remote file API consumed by this package. Each call maps to
// one remote request.
type Store interface {
	FindFolders(ctx context.Context, q Query) ([]Folder, error)
	CreateFolder(ctx context.Context, parent, name string) (Folder, error)
	CopyFile(ctx context.Context, fileID, parent, name string) (File, error)
}
