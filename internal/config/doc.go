// Package config loads, normalizes, and validates contentops configuration.
//
// Configuration lives in TOML. Load resolves the file location (explicit path,
// ~/.config/contentops/config.toml, then ./contentops.toml), decodes it over
// Default(), expands paths, applies environment fallbacks, and validates the
// result so callers receive a ready-to-use *Config.
//
// The caption_bank section carries every identifier the provisioning flow
// needs (template spreadsheet, source tab, insertion index, protected cells)
// so none of them are buried as literals in the orchestration code.
package config
