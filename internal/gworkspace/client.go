package gworkspace

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"contentops/internal/config"
)

// ErrMissingToken is returned when no Google access token is available.
var ErrMissingToken = errors.New("google access token is required")

// Client talks to Drive and Sheets on behalf of a single caller.
type Client struct {
	drive  *drive.Service
	sheets *sheets.Service
}

// New builds a Client authenticated with accessToken. Extra options are
// applied after the token source and before endpoint overrides.
func New(ctx context.Context, cfg config.Google, accessToken string, extra ...option.ClientOption) (*Client, error) {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return nil, ErrMissingToken
	}

	base := []option.ClientOption{
		option.WithTokenSource(oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: accessToken,
			TokenType:   "Bearer",
		})),
	}

	driveOpts := append(append([]option.ClientOption{}, base...), extra...)
	if endpoint := strings.TrimSpace(cfg.DriveEndpoint); endpoint != "" {
		driveOpts = append(driveOpts, option.WithEndpoint(endpoint))
	}
	driveSvc, err := drive.NewService(ctx, driveOpts...)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}

	sheetsOpts := append(append([]option.ClientOption{}, base...), extra...)
	if endpoint := strings.TrimSpace(cfg.SheetsEndpoint); endpoint != "" {
		sheetsOpts = append(sheetsOpts, option.WithEndpoint(endpoint))
	}
	sheetsSvc, err := sheets.NewService(ctx, sheetsOpts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Client{drive: driveSvc, sheets: sheetsSvc}, nil
}

// Factory builds Clients for per-request access tokens.
type Factory struct {
	cfg   config.Google
	extra []option.ClientOption
}

// NewFactory returns a Factory using cfg endpoint overrides and extra options
// for every client it creates.
func NewFactory(cfg config.Google, extra ...option.ClientOption) *Factory {
	return &Factory{cfg: cfg, extra: extra}
}

// Open returns a Client for accessToken.
func (f *Factory) Open(ctx context.Context, accessToken string) (*Client, error) {
	return New(ctx, f.cfg, accessToken, f.extra...)
}
