package provision

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"contentops/internal/api"
	"contentops/internal/config"
	"contentops/internal/folders"
	"contentops/internal/logging"
	"contentops/internal/services"
	"contentops/internal/store"
	"contentops/internal/workbook"
)

// SheetURLPrefix is prepended to a spreadsheet ID to form its link.
const SheetURLPrefix = "https://docs.google.com/spreadsheets/d/"

// Workspace is the remote Drive and Sheets surface a run needs.
type Workspace interface {
	folders.Store
	workbook.Store
}

// ModelStore reads client models and records sheet links.
type ModelStore interface {
	GetClientModel(ctx context.Context, id int64) (*store.ClientModel, error)
	InsertSheetLink(ctx context.Context, link store.SheetLink) (*store.SheetLink, error)
}

// Request describes one provisioning run.
type Request struct {
	ModelID   int64
	Selection workbook.Selection
	Workspace Workspace
}

// Orchestrator provisions caption bank spreadsheets.
type Orchestrator struct {
	models ModelStore
	bank   config.CaptionBank
	layout workbook.Layout
	logger *slog.Logger
	newID  func() string
}

// New builds an Orchestrator from the caption bank configuration.
func New(models ModelStore, bank config.CaptionBank, logger *slog.Logger) (*Orchestrator, error) {
	if models == nil {
		return nil, errors.New("model store is required")
	}
	layout, err := workbook.LayoutFromConfig(bank)
	if err != nil {
		return nil, fmt.Errorf("caption bank layout: %w", err)
	}
	return &Orchestrator{
		models: models,
		bank:   bank,
		layout: layout,
		logger: logging.NewComponentLogger(logger, "provision"),
		newID:  uuid.NewString,
	}, nil
}

// run carries values produced by one step into the next.
type run struct {
	req        Request
	model      *store.ClientModel
	launchesID string
	folderID   string
	file       folders.File
	tabs       []workbook.Tab
	link       *store.SheetLink
}

type state struct {
	step    Step
	message func(*run) string
	action  func(context.Context, *run) error
}

func (o *Orchestrator) states() []state {
	return []state{
		{StepValidate, fixed("Validating model configuration"), o.validate},
		{StepFolder, fixed("Locating " + o.bank.FolderName + " folder"), o.resolveFolder},
		{StepCopy, fixed("Copying caption bank template"), o.copyTemplate},
		{StepDuplicate, o.duplicateMessage, o.duplicateTabs},
		{StepUpdate, fixed("Updating tab headers"), o.updateHeaders},
		{StepProtect, fixed("Protecting cells"), o.protectCells},
		{StepFormulas, fixed("Updating MasterSheet formulas"), o.updateFormulas},
		{StepSave, fixed("Saving sheet link"), o.save},
	}
}

func fixed(message string) func(*run) string {
	return func(*run) string { return message }
}

// Run executes every step in order, emitting progress before each one. It
// returns the persisted SheetLink, or the error that ended the run after it
// has been emitted as an error event. Cancelling ctx does not stop the run.
func (o *Orchestrator) Run(ctx context.Context, req Request, emitter Emitter) (*store.SheetLink, error) {
	if emitter == nil {
		emitter = EmitterFunc(func(string, any) error { return nil })
	}
	ctx = context.WithoutCancel(ctx)
	if _, ok := services.RequestIDFromContext(ctx); !ok {
		ctx = services.WithRequestID(ctx, o.newID())
	}
	ctx = services.WithModelID(ctx, req.ModelID)

	logger := logging.WithContext(ctx, o.logger)
	logger.Info("provision started",
		logging.String(logging.FieldEventType, "provision_start"),
		logging.String("selection", req.Selection.String()),
	)
	started := time.Now()

	r := &run{req: req}
	for _, st := range o.states() {
		stepCtx := services.WithStep(ctx, string(st.step))
		stepLogger := logging.WithContext(stepCtx, o.logger)

		o.emit(stepLogger, emitter, api.EventProgress, api.ProgressEvent{Step: string(st.step), Message: st.message(r)})
		stepLogger.Debug("step started", logging.String(logging.FieldEventType, "step_start"))

		if err := st.action(stepCtx, r); err != nil {
			message := services.Message(err, GenericFailureMessage)
			logging.ErrorWithContext(stepLogger, "provision failed", "provision_failure",
				logging.String("error_message", message),
				logging.String(logging.FieldErrorHint, hintFor(err)),
				logging.Error(err),
			)
			o.emit(stepLogger, emitter, api.EventError, api.ErrorEvent{Message: message})
			return nil, err
		}
	}

	o.emit(logger, emitter, api.EventComplete, api.CompleteEvent{
		SheetLink: api.FromSheetLink(r.link),
		Message:   completeMessage,
	})
	logger.Info("provision completed",
		logging.String(logging.FieldEventType, "provision_complete"),
		logging.String(logging.FieldSpreadsheetID, r.file.ID),
		logging.Duration("elapsed", time.Since(started)),
	)
	return r.link, nil
}

func (o *Orchestrator) emit(logger *slog.Logger, emitter Emitter, event string, payload any) {
	if err := emitter.Emit(event, payload); err != nil {
		logger.Debug("event delivery failed", logging.String("event", event), logging.Error(err))
	}
}

func (o *Orchestrator) validate(ctx context.Context, r *run) error {
	if r.req.Workspace == nil {
		return services.Wrap(services.ErrConfiguration, "provision", "validate", "Google workspace unavailable", nil)
	}
	model, err := o.models.GetClientModel(ctx, r.req.ModelID)
	if err != nil {
		return services.Wrap(services.ErrExternal, "provision", "validate", "Failed to load model", err)
	}
	if model == nil {
		return services.Wrap(services.ErrNotFound, "provision", "validate", "Model not found", nil)
	}
	if !model.HasLaunchesFolder() {
		return services.Wrap(services.ErrValidation, "provision", "validate", "Model has no launches folder configured", nil)
	}
	launchesID, err := folders.ResolveFolderID(model.LaunchesFolder)
	if err != nil {
		return services.Wrap(services.ErrValidation, "provision", "validate", "Invalid launches folder reference", err)
	}
	r.model = model
	r.launchesID = launchesID
	return nil
}

func (o *Orchestrator) resolveFolder(ctx context.Context, r *run) error {
	id, err := folders.FindOrCreateSubfolder(ctx, r.req.Workspace, r.launchesID, o.bank.FolderName)
	if err != nil {
		return err
	}
	r.folderID = id
	return nil
}

func (o *Orchestrator) copyTemplate(ctx context.Context, r *run) error {
	name := folders.SheetName(o.bank.SheetNameFormat, r.model.Name)
	file, err := folders.CloneTemplate(ctx, r.req.Workspace, o.bank.TemplateSpreadsheetID, r.folderID, name)
	if err != nil {
		return err
	}
	r.file = file
	return nil
}

func (o *Orchestrator) duplicateMessage(r *run) string {
	var names []string
	if r.req.Selection.Free {
		names = append(names, o.layout.FreeTabName)
	}
	if r.req.Selection.Paid {
		names = append(names, o.layout.PaidTabName)
	}
	if len(names) == 0 {
		return "No tabs selected"
	}
	if len(names) == 1 {
		return "Creating " + names[0] + " tab"
	}
	return "Creating " + strings.Join(names, " and ") + " tabs"
}

func (o *Orchestrator) duplicateTabs(ctx context.Context, r *run) error {
	tabs, err := workbook.DuplicateTabs(ctx, r.req.Workspace, r.file.ID, o.layout, r.req.Selection)
	if err != nil {
		return err
	}
	r.tabs = tabs
	return nil
}

func (o *Orchestrator) updateHeaders(ctx context.Context, r *run) error {
	return workbook.WriteHeaders(ctx, r.req.Workspace, r.file.ID, o.layout, r.tabs, r.model.Name)
}

func (o *Orchestrator) protectCells(ctx context.Context, r *run) error {
	return workbook.ProtectRanges(ctx, r.req.Workspace, r.file.ID, o.layout, r.tabs)
}

func (o *Orchestrator) updateFormulas(ctx context.Context, r *run) error {
	return workbook.WriteAggregationFormulas(ctx, r.req.Workspace, r.file.ID, o.layout, r.req.Selection)
}

func (o *Orchestrator) save(ctx context.Context, r *run) error {
	link, err := o.models.InsertSheetLink(ctx, NewSheetLink(o.bank, r.model.ID, r.file, r.folderID))
	if err != nil {
		return services.Wrap(services.ErrExternal, "provision", "save", "Failed to save sheet link", err)
	}
	r.link = link
	return nil
}

// NewSheetLink builds the record persisted for a copied spreadsheet.
func NewSheetLink(bank config.CaptionBank, modelID int64, file folders.File, folderID string) store.SheetLink {
	return store.SheetLink{
		ClientModelID: modelID,
		SheetURL:      SheetURLPrefix + file.ID,
		SheetName:     file.Name,
		SheetType:     bank.SheetType,
		FolderName:    bank.FolderName,
		FolderID:      folderID,
	}
}

func hintFor(err error) string {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return "check the model id"
	case errors.Is(err, services.ErrValidation):
		return "set a valid launches folder on the model"
	case errors.Is(err, services.ErrConfiguration):
		return "check caption_bank settings and the session google token"
	default:
		return "check google drive permissions for the session account"
	}
}
