package store

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// ClientModel is a content-producing entity that owns generated resources.
type ClientModel struct {
	ID             int64
	Name           string
	LaunchesFolder string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasLaunchesFolder reports whether a launches folder reference is configured.
func (m *ClientModel) HasLaunchesFolder() bool {
	return m != nil && strings.TrimSpace(m.LaunchesFolder) != ""
}

// SheetLink associates a generated spreadsheet with its owning ClientModel.
type SheetLink struct {
	ID            int64
	ClientModelID int64
	SheetURL      string
	SheetName     string
	SheetType     string
	FolderName    string
	FolderID      string
	CreatedAt     time.Time
}

// Session is an authenticated operator session.
type Session struct {
	Token             string
	UserEmail         string
	Role              string
	GoogleAccessToken string
	CreatedAt         time.Time
	ExpiresAt         time.Time
}

// Expired reports whether the session is no longer valid at now.
func (s *Session) Expired(now time.Time) bool {
	return s == nil || !now.Before(s.ExpiresAt)
}

// CanonicalName trims and NFC-normalizes a model name for display and storage.
func CanonicalName(name string) string {
	return norm.NFC.String(strings.Join(strings.Fields(name), " "))
}

// NameKey returns the case-folded uniqueness key for a model name.
func NameKey(name string) string {
	return cases.Fold().String(CanonicalName(name))
}
