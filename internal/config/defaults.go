package config

const (
	defaultConfigPath        = "~/.config/contentops/config.toml"
	defaultServerBind        = "127.0.0.1:8787"
	defaultReadHeaderTimeout = 5
	defaultIdleTimeout       = 60
	defaultDatabasePath      = "~/.local/share/contentops/contentops.db"
	defaultSessionCookie     = "session"
	defaultSessionTTLHours   = 168
	defaultFolderName        = "CAPTION BANK"
	defaultSheetNameFormat   = "🔴 %s - The Schedule Library"
	defaultSheetType         = "Caption Bank"
	defaultFreeTabName       = "FREE"
	defaultPaidTabName       = "PAID"
	defaultFirstInsertIndex  = 6
	defaultHeaderColumns     = 5
	defaultMMTabName         = "MasterSheet DB (MM)"
	defaultPOSTTabName       = "MasterSheet DB (POST)"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"

	templateSpreadsheetEnv = "CONTENTOPS_TEMPLATE_SPREADSHEET_ID"
)

var (
	defaultRoles          = []string{"ADMIN", "MODERATOR"}
	defaultProtectedCells = []string{"D3", "T3"}
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Server: Server{
			Bind:              defaultServerBind,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
			IdleTimeout:       defaultIdleTimeout,
		},
		Database: Database{
			Path: defaultDatabasePath,
		},
		Auth: Auth{
			Roles:           append([]string(nil), defaultRoles...),
			SessionCookie:   defaultSessionCookie,
			SessionTTLHours: defaultSessionTTLHours,
		},
		CaptionBank: CaptionBank{
			FolderName:       defaultFolderName,
			SheetNameFormat:  defaultSheetNameFormat,
			SheetType:        defaultSheetType,
			FreeTabName:      defaultFreeTabName,
			PaidTabName:      defaultPaidTabName,
			FirstInsertIndex: defaultFirstInsertIndex,
			HeaderColumns:    defaultHeaderColumns,
			MMTabName:        defaultMMTabName,
			POSTTabName:      defaultPOSTTabName,
			ProtectedCells:   append([]string(nil), defaultProtectedCells...),
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
