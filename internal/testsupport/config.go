package testsupport

import (
	"path/filepath"
	"testing"

	"contentops/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config backed by a unique temp directory per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Server.Bind = "127.0.0.1:0"
	cfgVal.Database.Path = filepath.Join(base, "data", "contentops.db")
	cfgVal.CaptionBank.TemplateSpreadsheetID = "template-sheet"
	cfgVal.Logging.Dir = ""

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}
	for _, opt := range opts {
		opt(builder)
	}
	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return builder.cfg
}

// WithTemplate overrides the template spreadsheet identifier.
func WithTemplate(id string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.CaptionBank.TemplateSpreadsheetID = id
	}
}

// WithRoles replaces the authorized role list.
func WithRoles(roles ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Auth.Roles = roles
	}
}

// WithGoogleEndpoint points both Google APIs at a test server.
func WithGoogleEndpoint(url string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Google.DriveEndpoint = url
		b.cfg.Google.SheetsEndpoint = url
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(filepath.Dir(cfg.Database.Path))
}
