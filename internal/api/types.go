package api

// dateTimeFormat is used for RFC3339 timestamps in API payloads.
const dateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Event names used on the provisioning stream.
const (
	EventProgress = "progress"
	EventError    = "error"
	EventComplete = "complete"
)

// ClientModel describes a client model in a transport-friendly format.
type ClientModel struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	LaunchesFolder string `json:"launchesFolder,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
	UpdatedAt      string `json:"updatedAt,omitempty"`
}

// SheetLink describes a generated spreadsheet record.
type SheetLink struct {
	ID            int64  `json:"id"`
	ClientModelID int64  `json:"clientModelId"`
	SheetURL      string `json:"sheetUrl"`
	SheetName     string `json:"sheetName"`
	SheetType     string `json:"sheetType"`
	FolderName    string `json:"folderName"`
	FolderID      string `json:"folderId"`
	CreatedAt     string `json:"createdAt,omitempty"`
}

// ProgressEvent announces the step that is about to run.
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
}

// ErrorEvent carries the terminal failure of a run.
type ErrorEvent struct {
	Message string `json:"message"`
}

// CompleteEvent carries the persisted sheet link of a successful run.
type CompleteEvent struct {
	SheetLink SheetLink `json:"sheetLink"`
	Message   string    `json:"message"`
}

// ClientModelListResponse wraps a collection of client models.
type ClientModelListResponse struct {
	Models []ClientModel `json:"models"`
}

// SheetLinkListResponse wraps the sheet links of one model.
type SheetLinkListResponse struct {
	Links []SheetLink `json:"links"`
}

// HealthResponse reports server readiness.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// ErrorResponse is the body of every non-2xx JSON reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
