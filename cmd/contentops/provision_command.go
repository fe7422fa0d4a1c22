package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"contentops/internal/api"
	"contentops/internal/gworkspace"
	"contentops/internal/logging"
	"contentops/internal/provision"
	"contentops/internal/store"
	"contentops/internal/workbook"
)

func newProvisionCommand(ctx *commandContext) *cobra.Command {
	var free, paid bool
	var googleToken string

	cmd := &cobra.Command{
		Use:   "provision <model-id>",
		Short: "Generate a caption bank spreadsheet for a client model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseModelID(args[0])
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			open, err := ctx.workspaceOpener()
			if err != nil {
				return err
			}
			runCtx := commandContextOf(cmd)
			workspace, err := open(runCtx, strings.TrimSpace(googleToken))
			if errors.Is(err, gworkspace.ErrMissingToken) {
				return errors.New("--google-token is required")
			}
			if err != nil {
				return fmt.Errorf("open google workspace: %w", err)
			}

			logger, err := logging.New(logging.Options{
				Level:       cfg.Logging.Level,
				Format:      cfg.Logging.Format,
				OutputPaths: []string{"stderr"},
			})
			if err != nil {
				return err
			}

			return ctx.withStore(func(st *store.Store) error {
				orchestrator, err := provision.New(st, cfg.CaptionBank, logger)
				if err != nil {
					return err
				}
				printer := newEventPrinter(cmd.OutOrStdout())
				req := provision.Request{
					ModelID:   id,
					Selection: workbook.Selection{Free: free, Paid: paid},
					Workspace: workspace,
				}
				if _, err := orchestrator.Run(runCtx, req, printer); err != nil {
					return fmt.Errorf("provision client model %d failed", id)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&free, "free", false, "Create the FREE category tab")
	cmd.Flags().BoolVar(&paid, "paid", false, "Create the PAID category tab")
	cmd.Flags().StringVar(&googleToken, "google-token", "", "Google OAuth access token")
	return cmd
}

// eventPrinter renders provisioning events one per line. Colour is used only
// when the destination is a terminal.
type eventPrinter struct {
	out   io.Writer
	color bool
}

func newEventPrinter(out io.Writer) *eventPrinter {
	color := false
	if f, ok := out.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &eventPrinter{out: out, color: color}
}

func (p *eventPrinter) Emit(event string, payload any) error {
	var line string
	switch v := payload.(type) {
	case api.ProgressEvent:
		line = p.label(v.Step, "36") + " " + v.Message
	case api.ErrorEvent:
		line = p.label("error", "31") + " " + v.Message
	case api.CompleteEvent:
		line = p.label("complete", "32") + " " + v.Message + "\n" +
			p.label("sheet", "32") + " " + v.SheetLink.SheetName + " " + v.SheetLink.SheetURL
	default:
		line = p.label(event, "0") + fmt.Sprintf(" %v", payload)
	}
	_, err := fmt.Fprintln(p.out, line)
	return err
}

func (p *eventPrinter) label(name, code string) string {
	if !p.color {
		return name + ":"
	}
	return "\x1b[" + code + "m› " + name + "\x1b[0m"
}
