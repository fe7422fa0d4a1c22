package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeServer()
	c.normalizeAuth()
	c.normalizeGoogle()
	c.normalizeCaptionBank()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Database.Path) == "" {
		c.Database.Path = defaultDatabasePath
	}
	if c.Database.Path, err = expandPath(c.Database.Path); err != nil {
		return fmt.Errorf("database.path: %w", err)
	}
	if strings.TrimSpace(c.Logging.Dir) != "" {
		if c.Logging.Dir, err = expandPath(c.Logging.Dir); err != nil {
			return fmt.Errorf("logging.dir: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeServer() {
	c.Server.Bind = strings.TrimSpace(c.Server.Bind)
	if c.Server.Bind == "" {
		c.Server.Bind = defaultServerBind
	}
	if c.Server.ReadHeaderTimeout <= 0 {
		c.Server.ReadHeaderTimeout = defaultReadHeaderTimeout
	}
	if c.Server.IdleTimeout <= 0 {
		c.Server.IdleTimeout = defaultIdleTimeout
	}
}

func (c *Config) normalizeAuth() {
	roles := make([]string, 0, len(c.Auth.Roles))
	seen := make(map[string]struct{}, len(c.Auth.Roles))
	for _, role := range c.Auth.Roles {
		normalized := strings.ToUpper(strings.TrimSpace(role))
		if normalized == "" {
			continue
		}
		if _, exists := seen[normalized]; exists {
			continue
		}
		seen[normalized] = struct{}{}
		roles = append(roles, normalized)
	}
	c.Auth.Roles = roles
	c.Auth.SessionCookie = strings.TrimSpace(c.Auth.SessionCookie)
	if c.Auth.SessionCookie == "" {
		c.Auth.SessionCookie = defaultSessionCookie
	}
	if c.Auth.SessionTTLHours <= 0 {
		c.Auth.SessionTTLHours = defaultSessionTTLHours
	}
}

func (c *Config) normalizeGoogle() {
	c.Google.DriveEndpoint = strings.TrimSpace(c.Google.DriveEndpoint)
	c.Google.SheetsEndpoint = strings.TrimSpace(c.Google.SheetsEndpoint)
}

func (c *Config) normalizeCaptionBank() {
	cb := &c.CaptionBank
	cb.TemplateSpreadsheetID = strings.TrimSpace(cb.TemplateSpreadsheetID)
	if cb.TemplateSpreadsheetID == "" {
		if value, ok := os.LookupEnv(templateSpreadsheetEnv); ok {
			cb.TemplateSpreadsheetID = strings.TrimSpace(value)
		}
	}
	cb.FolderName = defaultString(cb.FolderName, defaultFolderName)
	cb.SheetNameFormat = defaultString(cb.SheetNameFormat, defaultSheetNameFormat)
	cb.SheetType = defaultString(cb.SheetType, defaultSheetType)
	cb.FreeTabName = defaultString(cb.FreeTabName, defaultFreeTabName)
	cb.PaidTabName = defaultString(cb.PaidTabName, defaultPaidTabName)
	cb.MMTabName = defaultString(cb.MMTabName, defaultMMTabName)
	cb.POSTTabName = defaultString(cb.POSTTabName, defaultPOSTTabName)
	if cb.HeaderColumns <= 0 {
		cb.HeaderColumns = defaultHeaderColumns
	}
	cells := make([]string, 0, len(cb.ProtectedCells))
	for _, cell := range cb.ProtectedCells {
		if trimmed := strings.ToUpper(strings.TrimSpace(cell)); trimmed != "" {
			cells = append(cells, trimmed)
		}
	}
	cb.ProtectedCells = cells
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func defaultString(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}
