package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"contentops/internal/config"
)

func TestLoadDefaultConfigUsesEnvTemplateAndExpandsPaths(t *testing.T) {
	t.Setenv("CONTENTOPS_TEMPLATE_SPREADSHEET_ID", "template-from-env")
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantDB := filepath.Join(tempHome, ".local", "share", "contentops", "contentops.db")
	if cfg.Database.Path != wantDB {
		t.Fatalf("unexpected database path: got %q want %q", cfg.Database.Path, wantDB)
	}
	if cfg.Server.Bind != "127.0.0.1:8787" {
		t.Fatalf("unexpected bind: %q", cfg.Server.Bind)
	}
	if cfg.CaptionBank.TemplateSpreadsheetID != "template-from-env" {
		t.Fatalf("expected template from env, got %q", cfg.CaptionBank.TemplateSpreadsheetID)
	}
	if cfg.CaptionBank.FolderName != "CAPTION BANK" {
		t.Fatalf("unexpected folder name: %q", cfg.CaptionBank.FolderName)
	}
	if cfg.CaptionBank.FirstInsertIndex != 6 {
		t.Fatalf("unexpected first insert index: %d", cfg.CaptionBank.FirstInsertIndex)
	}
	if got := strings.Join(cfg.CaptionBank.ProtectedCells, ","); got != "D3,T3" {
		t.Fatalf("unexpected protected cells: %s", got)
	}
	if got := strings.Join(cfg.Auth.Roles, ","); got != "ADMIN,MODERATOR" {
		t.Fatalf("unexpected roles: %s", got)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	if info, err := os.Stat(filepath.Dir(cfg.Database.Path)); err != nil || !info.IsDir() {
		t.Fatalf("expected database directory to exist: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	t.Setenv("CONTENTOPS_TEMPLATE_SPREADSHEET_ID", "")
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "contentops.toml")

	type payload struct {
		Database struct {
			Path string `toml:"path"`
		} `toml:"database"`
		Auth struct {
			Roles []string `toml:"roles"`
		} `toml:"auth"`
		CaptionBank struct {
			TemplateSpreadsheetID string `toml:"template_spreadsheet_id"`
			SourceTabID           int64  `toml:"source_tab_id"`
		} `toml:"caption_bank"`
		Logging struct {
			Format string `toml:"format"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Database.Path = filepath.Join(tempDir, "data", "ops.db")
	custom.Auth.Roles = []string{" admin ", "editor", "ADMIN"}
	custom.CaptionBank.TemplateSpreadsheetID = "tmpl-123"
	custom.CaptionBank.SourceTabID = 987
	custom.Logging.Format = "JSON"

	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected custom config to be used, got %q exists=%v", resolved, exists)
	}
	if cfg.Database.Path != custom.Database.Path {
		t.Fatalf("unexpected database path: %q", cfg.Database.Path)
	}
	if got := strings.Join(cfg.Auth.Roles, ","); got != "ADMIN,EDITOR" {
		t.Fatalf("expected roles to be upper-cased and deduplicated, got %s", got)
	}
	if cfg.CaptionBank.SourceTabID != 987 {
		t.Fatalf("unexpected source tab id: %d", cfg.CaptionBank.SourceTabID)
	}
	if cfg.CaptionBank.MMTabName != "MasterSheet DB (MM)" {
		t.Fatalf("expected default MM tab name, got %q", cfg.CaptionBank.MMTabName)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected json log format, got %q", cfg.Logging.Format)
	}
	if !cfg.RoleAllowed("editor") || cfg.RoleAllowed("viewer") {
		t.Fatal("unexpected role membership")
	}
}

func TestValidateRejectsBadCaptionBank(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"missing template", func(c *config.Config) { c.CaptionBank.TemplateSpreadsheetID = "" }, "template_spreadsheet_id"},
		{"bad cell", func(c *config.Config) { c.CaptionBank.ProtectedCells = []string{"3D"} }, "protected_cells"},
		{"format without verb", func(c *config.Config) { c.CaptionBank.SheetNameFormat = "Library" }, "sheet_name_format"},
		{"same tab names", func(c *config.Config) { c.CaptionBank.PaidTabName = "free" }, "must differ"},
		{"no roles", func(c *config.Config) { c.Auth.Roles = nil }, "auth.roles"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.CaptionBank.TemplateSpreadsheetID = "tmpl"
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q in error, got %v", tc.want, err)
			}
		})
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	t.Setenv("CONTENTOPS_TEMPLATE_SPREADSHEET_ID", "tmpl-env")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.CaptionBank.SheetNameFormat != "🔴 %s - The Schedule Library" {
		t.Fatalf("unexpected sheet name format: %q", cfg.CaptionBank.SheetNameFormat)
	}
}
