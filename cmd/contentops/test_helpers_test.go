package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"contentops/internal/config"
	"contentops/internal/folders"
	"contentops/internal/gworkspace"
	"contentops/internal/provision"
	"contentops/internal/testsupport"
	"contentops/internal/workbook"
)

// fakeWorkspace answers every Drive/Sheets call with canned data and counts calls.
type fakeWorkspace struct {
	mu    sync.Mutex
	calls []string
}

func (w *fakeWorkspace) record(call string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calls = append(w.calls, call)
}

func (w *fakeWorkspace) FindFolders(context.Context, folders.Query) ([]folders.Folder, error) {
	w.record("find")
	return []folders.Folder{{ID: "bank-folder", Name: "CAPTION BANK"}}, nil
}

func (w *fakeWorkspace) CreateFolder(_ context.Context, _, name string) (folders.Folder, error) {
	w.record("create")
	return folders.Folder{ID: "new-folder", Name: name}, nil
}

func (w *fakeWorkspace) CopyFile(_ context.Context, _, _, name string) (folders.File, error) {
	w.record("copy")
	return folders.File{ID: "sheet-42", Name: name}, nil
}

func (w *fakeWorkspace) DuplicateTabs(_ context.Context, _ string, reqs []workbook.DuplicateRequest) ([]workbook.Tab, error) {
	w.record("duplicate")
	tabs := make([]workbook.Tab, len(reqs))
	for i, req := range reqs {
		tabs[i] = workbook.Tab{ID: int64(300 + i), Name: req.NewName}
	}
	return tabs, nil
}

func (w *fakeWorkspace) ListTabs(context.Context, string) ([]workbook.Tab, error) {
	w.record("list")
	return nil, nil
}

func (w *fakeWorkspace) UpdateCells(context.Context, string, []workbook.CellWrite) error {
	w.record("update")
	return nil
}

func (w *fakeWorkspace) ProtectRanges(context.Context, string, []workbook.ProtectedRange) error {
	w.record("protect")
	return nil
}

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	workspace  *fakeWorkspace
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	configPath := filepath.Join(testsupport.BaseDir(cfg), "contentops.toml")
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return &cliTestEnv{cfg: cfg, configPath: configPath, workspace: &fakeWorkspace{}}
}

func (env *cliTestEnv) opener(_ context.Context, token string) (provision.Workspace, error) {
	if token == "" {
		return nil, gworkspace.ErrMissingToken
	}
	return env.workspace, nil
}

func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, string, error) {
	t.Helper()
	var configFlag string
	cmd := buildRootCommand(newCommandContext(&configFlag, env.opener))
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}
