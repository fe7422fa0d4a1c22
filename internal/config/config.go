package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Server contains HTTP listener settings.
type Server struct {
	Bind              string `toml:"bind"`
	ReadHeaderTimeout int    `toml:"read_header_timeout"`
	IdleTimeout       int    `toml:"idle_timeout"`
}

// Database contains SQLite storage settings.
type Database struct {
	Path string `toml:"path"`
}

// Auth contains session and role settings.
type Auth struct {
	Roles           []string `toml:"roles"`
	SessionCookie   string   `toml:"session_cookie"`
	SessionTTLHours int      `toml:"session_ttl_hours"`
}

// Google contains optional Drive/Sheets endpoint overrides.
type Google struct {
	DriveEndpoint  string `toml:"drive_endpoint"`
	SheetsEndpoint string `toml:"sheets_endpoint"`
}

// CaptionBank contains the identifiers and layout conventions used when
// provisioning caption bank spreadsheets.
type CaptionBank struct {
	TemplateSpreadsheetID string   `toml:"template_spreadsheet_id"`
	SourceTabID           int64    `toml:"source_tab_id"`
	FolderName            string   `toml:"folder_name"`
	SheetNameFormat       string   `toml:"sheet_name_format"`
	SheetType             string   `toml:"sheet_type"`
	FreeTabName           string   `toml:"free_tab_name"`
	PaidTabName           string   `toml:"paid_tab_name"`
	FirstInsertIndex      int64    `toml:"first_insert_index"`
	HeaderColumns         int64    `toml:"header_columns"`
	MMTabName             string   `toml:"mm_tab_name"`
	POSTTabName           string   `toml:"post_tab_name"`
	ProtectedCells        []string `toml:"protected_cells"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	Dir    string `toml:"dir"`
}

// Config encapsulates all configuration values for contentops.
//
// Configuration sections by subsystem:
//   - Server: HTTP bind address and timeouts
//   - Database: SQLite file location
//   - Auth: authorized roles and session cookie
//   - Google: Drive/Sheets endpoint overrides
//   - CaptionBank: template identifiers and tab layout
//   - Logging: log format, level, and optional file directory
type Config struct {
	Server      Server      `toml:"server"`
	Database    Database    `toml:"database"`
	Auth        Auth        `toml:"auth"`
	Google      Google      `toml:"google"`
	CaptionBank CaptionBank `toml:"caption_bank"`
	Logging     Logging     `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("contentops.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories the server writes into.
func (c *Config) EnsureDirectories() error {
	dirs := []string{filepath.Dir(c.Database.Path)}
	if strings.TrimSpace(c.Logging.Dir) != "" {
		dirs = append(dirs, c.Logging.Dir)
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// LockPath returns the file lock guarding single-server access to the database.
func (c *Config) LockPath() string {
	return c.Database.Path + ".lock"
}

// RoleAllowed reports whether role is one of the configured privileged roles.
func (c *Config) RoleAllowed(role string) bool {
	role = strings.TrimSpace(role)
	if role == "" {
		return false
	}
	for _, allowed := range c.Auth.Roles {
		if strings.EqualFold(allowed, role) {
			return true
		}
	}
	return false
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
