package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAuth(); err != nil {
		return err
	}
	if err := c.validateCaptionBank(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateAuth() error {
	if len(c.Auth.Roles) == 0 {
		return errors.New("auth.roles must include at least one role")
	}
	return nil
}

func (c *Config) validateCaptionBank() error {
	cb := c.CaptionBank
	if cb.TemplateSpreadsheetID == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = defaultConfigPath
		}
		return fmt.Errorf("caption_bank.template_spreadsheet_id is required. Set %s env var or edit %s (create with 'contentops config init')", templateSpreadsheetEnv, defaultPath)
	}
	if cb.SourceTabID < 0 {
		return errors.New("caption_bank.source_tab_id must be >= 0")
	}
	if cb.FirstInsertIndex < 0 {
		return errors.New("caption_bank.first_insert_index must be >= 0")
	}
	if !strings.Contains(cb.SheetNameFormat, "%s") {
		return errors.New("caption_bank.sheet_name_format must contain %s for the model name")
	}
	if strings.EqualFold(cb.FreeTabName, cb.PaidTabName) {
		return errors.New("caption_bank.free_tab_name and caption_bank.paid_tab_name must differ")
	}
	for _, cell := range cb.ProtectedCells {
		if _, _, err := excelize.CellNameToCoordinates(cell); err != nil {
			return fmt.Errorf("caption_bank.protected_cells: invalid cell %q: %w", cell, err)
		}
	}
	return nil
}
