package api

import (
	"time"

	"contentops/internal/store"
)

// FromClientModel converts a store record to its API representation.
func FromClientModel(model *store.ClientModel) ClientModel {
	if model == nil {
		return ClientModel{}
	}
	return ClientModel{
		ID:             model.ID,
		Name:           model.Name,
		LaunchesFolder: model.LaunchesFolder,
		CreatedAt:      formatTimestamp(model.CreatedAt),
		UpdatedAt:      formatTimestamp(model.UpdatedAt),
	}
}

// FromClientModels converts a slice of records, always returning a non-nil slice.
func FromClientModels(models []*store.ClientModel) []ClientModel {
	out := make([]ClientModel, 0, len(models))
	for _, model := range models {
		if model == nil {
			continue
		}
		out = append(out, FromClientModel(model))
	}
	return out
}

// FromSheetLink converts a store record to its API representation.
func FromSheetLink(link *store.SheetLink) SheetLink {
	if link == nil {
		return SheetLink{}
	}
	return SheetLink{
		ID:            link.ID,
		ClientModelID: link.ClientModelID,
		SheetURL:      link.SheetURL,
		SheetName:     link.SheetName,
		SheetType:     link.SheetType,
		FolderName:    link.FolderName,
		FolderID:      link.FolderID,
		CreatedAt:     formatTimestamp(link.CreatedAt),
	}
}

// FromSheetLinks converts a slice of records, always returning a non-nil slice.
func FromSheetLinks(links []*store.SheetLink) []SheetLink {
	out := make([]SheetLink, 0, len(links))
	for _, link := range links {
		if link == nil {
			continue
		}
		out = append(out, FromSheetLink(link))
	}
	return out
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateTimeFormat)
}
