package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"contentops/internal/store"
	"contentops/internal/testsupport"
)

func TestConfigInitAndShow(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, env.configPath)
	requireContains(t, out, "template-sheet")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, env, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, env, "config", "init", "--path", target); err == nil {
		t.Fatal("expected second init without --overwrite to fail")
	}
}

func TestModelCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env, "model", "add", "Luna  Star", "--launches", "https://drive.google.com/drive/folders/launch123")
	if err != nil {
		t.Fatalf("model add: %v", err)
	}
	requireContains(t, out, "Created client model 1 (Luna Star)")

	if _, _, err := runCLI(t, env, "model", "add", "luna star"); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected duplicate name error, got %v", err)
	}
	if _, _, err := runCLI(t, env, "model", "add", "Nova", "--launches", "https://example.com/nothing/here"); err == nil {
		t.Fatal("expected invalid launches folder to be rejected")
	}

	out, _, err = runCLI(t, env, "model", "add", "Nova")
	if err != nil {
		t.Fatalf("model add without folder: %v", err)
	}
	requireContains(t, out, "Created client model 2 (Nova)")

	if _, _, err := runCLI(t, env, "model", "set-folder", "2", "folder-abc"); err != nil {
		t.Fatalf("model set-folder: %v", err)
	}
	if _, _, err := runCLI(t, env, "model", "set-folder", "99", "folder-abc"); err == nil {
		t.Fatal("expected unknown model to fail")
	}

	out, _, err = runCLI(t, env, "model", "list")
	if err != nil {
		t.Fatalf("model list: %v", err)
	}
	requireContains(t, out, "Luna Star")
	requireContains(t, out, "folder-abc")
}

func TestSessionCreateAndRevoke(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, env, "session", "create", "--email", "a@example.com"); err == nil {
		t.Fatal("expected missing role to fail")
	}

	out, stderr, err := runCLI(t, env, "session", "create", "--email", "a@example.com", "--role", "viewer")
	if err != nil {
		t.Fatalf("session create: %v", err)
	}
	token := strings.TrimSpace(out)
	if token == "" {
		t.Fatal("expected token on stdout")
	}
	requireContains(t, stderr, "not authorized")

	st := testsupport.MustOpenStore(t, env.cfg)
	session, err := st.LookupSession(context.Background(), token)
	if err != nil || session == nil {
		t.Fatalf("expected session to exist: %v", err)
	}
	if session.Role != "VIEWER" {
		t.Fatalf("unexpected role %q", session.Role)
	}

	if _, _, err := runCLI(t, env, "session", "revoke", token); err != nil {
		t.Fatalf("session revoke: %v", err)
	}
	session, err = st.LookupSession(context.Background(), token)
	if err != nil || session != nil {
		t.Fatalf("expected session to be gone, got %+v err=%v", session, err)
	}
}

func TestProvisionPrintsEventsAndPersistsLink(t *testing.T) {
	env := setupCLITestEnv(t)
	st := testsupport.MustOpenStore(t, env.cfg)
	model := testsupport.NewClientModel(t, st, "Luna", "launch-folder")

	out, _, err := runCLI(t, env, "provision", "1", "--free", "--paid", "--google-token", "tok")
	if err != nil {
		t.Fatalf("provision: %v\n%s", err, out)
	}
	requireContains(t, out, "validate:")
	requireContains(t, out, "save:")
	requireContains(t, out, "complete: Caption bank created successfully")
	requireContains(t, out, "https://docs.google.com/spreadsheets/d/sheet-42")
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no colour codes when not a terminal: %q", out)
	}

	links, err := st.ListSheetLinks(context.Background(), model.ID)
	if err != nil {
		t.Fatalf("list links: %v", err)
	}
	if len(links) != 1 || links[0].FolderID != "bank-folder" {
		t.Fatalf("unexpected links: %+v", links)
	}
}

func TestProvisionFailures(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, env, "provision", "1", "--free"); err == nil || !strings.Contains(err.Error(), "--google-token") {
		t.Fatalf("expected missing token error, got %v", err)
	}

	out, _, err := runCLI(t, env, "provision", "7", "--free", "--google-token", "tok")
	if err == nil {
		t.Fatal("expected unknown model to fail")
	}
	requireContains(t, out, "error: Model not found")
	if len(env.workspace.calls) != 0 {
		t.Fatalf("expected no remote calls, got %v", env.workspace.calls)
	}
}

func TestLinksListAndExport(t *testing.T) {
	env := setupCLITestEnv(t)
	st := testsupport.MustOpenStore(t, env.cfg)
	model := testsupport.NewClientModel(t, st, "Luna", "launch-folder")

	out, _, err := runCLI(t, env, "links", "list", "1")
	if err != nil {
		t.Fatalf("links list: %v", err)
	}
	requireContains(t, out, "No sheet links")

	for _, name := range []string{"first", "second"} {
		if _, err := st.InsertSheetLink(context.Background(), store.SheetLink{
			ClientModelID: model.ID,
			SheetURL:      "https://docs.google.com/spreadsheets/d/" + name,
			SheetName:     name,
			SheetType:     "Caption Bank",
			FolderName:    "CAPTION BANK",
			FolderID:      "bank",
		}); err != nil {
			t.Fatalf("insert link: %v", err)
		}
	}

	out, _, err = runCLI(t, env, "links", "list", "1")
	if err != nil {
		t.Fatalf("links list: %v", err)
	}
	requireContains(t, out, "second")

	if _, _, err := runCLI(t, env, "links", "list", "5"); err == nil {
		t.Fatal("expected unknown model to fail")
	}

	target := filepath.Join(t.TempDir(), "links.xlsx")
	if _, _, err := runCLI(t, env, "links", "export", "1", "--out", target); err != nil {
		t.Fatalf("links export: %v", err)
	}
	f, err := excelize.OpenFile(target)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows(exportSheetName)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[0][1] != "Sheet Name" || rows[1][1] != "first" || rows[2][1] != "second" {
		t.Fatalf("unexpected rows: %v", rows)
	}
}
