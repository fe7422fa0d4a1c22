package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"golang.org/x/sync/errgroup"

	"contentops/internal/auth"
	"contentops/internal/config"
	"contentops/internal/gworkspace"
	"contentops/internal/logging"
	"contentops/internal/provision"
	"contentops/internal/store"
)

const shutdownTimeout = 5 * time.Second

// WorkspaceOpener returns the Drive/Sheets workspace for a caller's Google token.
type WorkspaceOpener func(ctx context.Context, accessToken string) (provision.Workspace, error)

// GoogleWorkspaces opens gworkspace clients with the configured endpoints.
func GoogleWorkspaces(cfg config.Google) WorkspaceOpener {
	factory := gworkspace.NewFactory(cfg)
	return func(ctx context.Context, accessToken string) (provision.Workspace, error) {
		client, err := factory.Open(ctx, accessToken)
		if err != nil {
			return nil, err
		}
		return client, nil
	}
}

// Option customizes a Server.
type Option func(*Server)

// WithWorkspaces overrides how workspaces are opened.
func WithWorkspaces(open WorkspaceOpener) Option {
	return func(s *Server) {
		s.workspaces = open
	}
}

// Server serves the HTTP API for one database.
type Server struct {
	cfg          *config.Config
	logger       *slog.Logger
	store        *store.Store
	authn        *auth.Authenticator
	orchestrator *provision.Orchestrator
	workspaces   WorkspaceOpener
	lock         *flock.Flock
	handler      http.Handler
}

// New constructs a Server with initialized dependencies.
func New(cfg *config.Config, st *store.Store, logger *slog.Logger, opts ...Option) (*Server, error) {
	if cfg == nil || st == nil {
		return nil, errors.New("server requires config and store")
	}
	logger = logging.NewComponentLogger(logger, "api-server")
	orchestrator, err := provision.New(st, cfg.CaptionBank, logger)
	if err != nil {
		return nil, err
	}
	s := &Server{
		cfg:          cfg,
		logger:       logger,
		store:        st,
		authn:        auth.New(st, cfg),
		orchestrator: orchestrator,
		workspaces:   GoogleWorkspaces(cfg.Google),
		lock:         flock.New(cfg.LockPath()),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.handler = s.routes()
	return s, nil
}

// Handler returns the HTTP handler serving every route.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Lock acquires the single-instance lock. The returned function releases it.
func (s *Server) Lock() (func(), error) {
	ok, err := s.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another contentops server is already using %s", s.cfg.Database.Path)
	}
	return func() {
		if err := s.lock.Unlock(); err != nil {
			s.logger.Warn("failed to release server lock", logging.Error(err))
		}
	}, nil
}

// Run holds the lock, listens on the configured bind address, and serves
// until ctx ends.
func (s *Server) Run(ctx context.Context) error {
	release, err := s.Lock()
	if err != nil {
		return err
	}
	defer release()

	bind := strings.TrimSpace(s.cfg.Server.Bind)
	listener, err := net.Listen("tcp", bind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx ends, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: seconds(s.cfg.Server.ReadHeaderTimeout, 5),
		IdleTimeout:       seconds(s.cfg.Server.IdleTimeout, 60),
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		s.logger.Info("api server listening",
			logging.String("address", listener.Addr().String()),
			logging.String("lock", s.cfg.LockPath()),
		)
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("api serve: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("api shutdown: %w", err)
		}
		s.logger.Info("api server stopped")
		return nil
	})
	return group.Wait()
}

func seconds(value, fallback int) time.Duration {
	if value <= 0 {
		value = fallback
	}
	return time.Duration(value) * time.Second
}
