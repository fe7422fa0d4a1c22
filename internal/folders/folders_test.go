package folders_test

import (
	"context"
	"errors"
	"testing"

	"contentops/internal/folders"
	"contentops/internal/services"
)

func TestResolveFolderID(t *testing.T) {
	longID := "1AbCdEfGhIjKlMnOpQrStUvWxYz_-12"
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"folders url", "https://drive.google.com/drive/folders/abc123?usp=sharing", "abc123"},
		{"folders url with user", "https://drive.google.com/drive/u/0/folders/" + longID, longID},
		{"id query", "https://drive.google.com/open?id=xyz_789", "xyz_789"},
		{"embedded token", "https://example.com/share/" + longID + "/view", longID},
		{"bare long token", "  " + longID + "  ", longID},
		{"bare short id", "short-id", "short-id"},
		{"plain text", "Launch Folder", "Launch Folder"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := folders.ResolveFolderID(tc.raw)
			if err != nil {
				t.Fatalf("ResolveFolderID(%q) returned error: %v", tc.raw, err)
			}
			if got != tc.want {
				t.Fatalf("ResolveFolderID(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestResolveFolderIDRejectsUnparseable(t *testing.T) {
	for _, raw := range []string{"", "   ", "https://drive.google.com/drive/my-drive", "a/b"} {
		_, err := folders.ResolveFolderID(raw)
		if !errors.Is(err, folders.ErrInvalidFolderReference) {
			t.Fatalf("ResolveFolderID(%q): expected ErrInvalidFolderReference, got %v", raw, err)
		}
		if !errors.Is(err, services.ErrValidation) {
			t.Fatalf("ResolveFolderID(%q): expected validation marker, got %v", raw, err)
		}
	}
}

type fakeStore struct {
	folders   map[string][]folders.Folder
	creates   []folders.Query
	copies    []copyCall
	copyFile  folders.File
	copyErr   error
	listErr   error
	nextIndex int
}

type copyCall struct {
	fileID, parent, name string
}

func newFakeStore() *fakeStore {
	return &fakeStore{folders: map[string][]folders.Folder{}}
}

func (f *fakeStore) FindFolders(_ context.Context, q folders.Query) ([]folders.Folder, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []folders.Folder
	for _, folder := range f.folders[q.Parent] {
		if folder.Name == q.Name {
			out = append(out, folder)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateFolder(_ context.Context, parent, name string) (folders.Folder, error) {
	f.nextIndex++
	folder := folders.Folder{ID: "created-" + string(rune('0'+f.nextIndex)), Name: name}
	f.folders[parent] = append(f.folders[parent], folder)
	f.creates = append(f.creates, folders.Query{Parent: parent, Name: name})
	return folder, nil
}

func (f *fakeStore) CopyFile(_ context.Context, fileID, parent, name string) (folders.File, error) {
	f.copies = append(f.copies, copyCall{fileID: fileID, parent: parent, name: name})
	return f.copyFile, f.copyErr
}

func TestFindOrCreateSubfolderReusesFolder(t *testing.T) {
	store := newFakeStore()
	ctx := context.Background()

	first, err := folders.FindOrCreateSubfolder(ctx, store, "parent", "CAPTION BANK")
	if err != nil {
		t.Fatalf("first call failed: %v", err)
	}
	second, err := folders.FindOrCreateSubfolder(ctx, store, "parent", "CAPTION BANK")
	if err != nil {
		t.Fatalf("second call failed: %v", err)
	}
	if first != second {
		t.Fatalf("expected the same folder, got %q and %q", first, second)
	}
	if len(store.creates) != 1 {
		t.Fatalf("expected exactly one create, got %d", len(store.creates))
	}
}

func TestFindOrCreateSubfolderReturnsFirstExisting(t *testing.T) {
	store := newFakeStore()
	store.folders["parent"] = []folders.Folder{
		{ID: "other", Name: "ARCHIVE"},
		{ID: "bank-1", Name: "CAPTION BANK"},
		{ID: "bank-2", Name: "CAPTION BANK"},
	}
	got, err := folders.FindOrCreateSubfolder(context.Background(), store, "parent", "CAPTION BANK")
	if err != nil {
		t.Fatalf("FindOrCreateSubfolder failed: %v", err)
	}
	if got != "bank-1" {
		t.Fatalf("expected first match, got %q", got)
	}
	if len(store.creates) != 0 {
		t.Fatalf("expected no creates, got %d", len(store.creates))
	}
}

func TestFindOrCreateSubfolderWrapsListError(t *testing.T) {
	store := newFakeStore()
	store.listErr = errors.New("quota exceeded")
	_, err := folders.FindOrCreateSubfolder(context.Background(), store, "parent", "CAPTION BANK")
	if !errors.Is(err, services.ErrExternal) {
		t.Fatalf("expected external marker, got %v", err)
	}
	if msg := services.Message(err, ""); msg != "Failed to look up CAPTION BANK folder: quota exceeded" {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestCloneTemplate(t *testing.T) {
	store := newFakeStore()
	store.copyFile = folders.File{ID: "sheet-1", Name: "🔴 Ava - The Schedule Library"}

	name := folders.SheetName("🔴 %s - The Schedule Library", " Ava ")
	file, err := folders.CloneTemplate(context.Background(), store, "template", "bank", name)
	if err != nil {
		t.Fatalf("CloneTemplate failed: %v", err)
	}
	if file.ID != "sheet-1" {
		t.Fatalf("unexpected file %#v", file)
	}
	want := copyCall{fileID: "template", parent: "bank", name: "🔴 Ava - The Schedule Library"}
	if len(store.copies) != 1 || store.copies[0] != want {
		t.Fatalf("unexpected copy calls %#v", store.copies)
	}
}

func TestCloneTemplateRequiresFileID(t *testing.T) {
	store := newFakeStore()
	_, err := folders.CloneTemplate(context.Background(), store, "template", "bank", "name")
	if !errors.Is(err, folders.ErrRemoteCopyFailed) {
		t.Fatalf("expected ErrRemoteCopyFailed, got %v", err)
	}

	store.copyErr = errors.New("permission denied")
	_, err = folders.CloneTemplate(context.Background(), store, "template", "bank", "name")
	if msg := services.Message(err, ""); msg != "Failed to copy template: permission denied" {
		t.Fatalf("unexpected message %q", msg)
	}
}
