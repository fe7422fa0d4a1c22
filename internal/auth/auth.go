// Package auth resolves operator sessions for HTTP requests and enforces the
// configured role list.
package auth

import (
	"context"
	"net/http"
	"strings"

	"contentops/internal/config"
	"contentops/internal/services"
	"contentops/internal/store"
)

// SessionStore looks sessions up by token. Unknown or expired tokens yield nil.
type SessionStore interface {
	LookupSession(ctx context.Context, token string) (*store.Session, error)
}

// Authenticator validates request credentials against the session store.
type Authenticator struct {
	sessions SessionStore
	cfg      *config.Config
}

// New returns an Authenticator using the cookie name and roles from cfg.
func New(sessions SessionStore, cfg *config.Config) *Authenticator {
	return &Authenticator{sessions: sessions, cfg: cfg}
}

// TokenFromRequest returns the session token from the session cookie or an
// "Authorization: Bearer" header. The cookie wins when both are present.
func TokenFromRequest(r *http.Request, cookieName string) string {
	if cookieName != "" {
		if cookie, err := r.Cookie(cookieName); err == nil && strings.TrimSpace(cookie.Value) != "" {
			return strings.TrimSpace(cookie.Value)
		}
	}
	header := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

// Authenticate resolves the caller's session.
func (a *Authenticator) Authenticate(r *http.Request) (*store.Session, error) {
	token := TokenFromRequest(r, a.cfg.Auth.SessionCookie)
	if token == "" {
		return nil, services.Wrap(services.ErrUnauthorized, "auth", "authenticate", "Authentication required", nil)
	}
	session, err := a.sessions.LookupSession(r.Context(), token)
	if err != nil {
		return nil, services.Wrap(services.ErrExternal, "auth", "authenticate", "Session lookup failed", err)
	}
	if session == nil {
		return nil, services.Wrap(services.ErrUnauthorized, "auth", "authenticate", "Session expired or invalid", nil)
	}
	return session, nil
}

// Authorize checks the session role against the configured privileged roles.
func (a *Authenticator) Authorize(session *store.Session) error {
	if session == nil {
		return services.Wrap(services.ErrUnauthorized, "auth", "authorize", "Authentication required", nil)
	}
	if !a.cfg.RoleAllowed(session.Role) {
		return services.Wrap(services.ErrForbidden, "auth", "authorize", "Role "+session.Role+" may not perform this action", nil)
	}
	return nil
}

type sessionKey struct{}

// WithSession attaches session to ctx.
func WithSession(ctx context.Context, session *store.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFromContext returns the session attached by Middleware.
func SessionFromContext(ctx context.Context) (*store.Session, bool) {
	session, ok := ctx.Value(sessionKey{}).(*store.Session)
	return session, ok && session != nil
}

// ErrorWriter renders an authentication or authorization failure.
type ErrorWriter func(w http.ResponseWriter, status int, message string)

// Middleware authenticates every request and, when privileged is set, also
// requires an allowed role. Failures are written before next runs.
func (a *Authenticator) Middleware(privileged bool, writeError ErrorWriter, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := a.Authenticate(r)
		if err == nil && privileged {
			err = a.Authorize(session)
		}
		if err != nil {
			writeError(w, services.HTTPStatus(err), services.Message(err, "unauthorized"))
			return
		}
		next(w, r.WithContext(WithSession(r.Context(), session)))
	}
}
