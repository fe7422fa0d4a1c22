package auth_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"contentops/internal/auth"
	"contentops/internal/services"
	"contentops/internal/store"
	"contentops/internal/testsupport"
)

type sessionStub map[string]*store.Session

func (s sessionStub) LookupSession(_ context.Context, token string) (*store.Session, error) {
	if token == "broken" {
		return nil, errors.New("database is locked")
	}
	return s[token], nil
}

func TestTokenFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	if got := auth.TokenFromRequest(req, "session"); got != "header-token" {
		t.Fatalf("expected bearer token, got %q", got)
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: "cookie-token"})
	if got := auth.TokenFromRequest(req, "session"); got != "cookie-token" {
		t.Fatalf("expected cookie token, got %q", got)
	}
	bare := httptest.NewRequest(http.MethodGet, "/", nil)
	bare.Header.Set("Authorization", "Basic abc")
	if got := auth.TokenFromRequest(bare, "session"); got != "" {
		t.Fatalf("expected no token, got %q", got)
	}
}

func TestMiddleware(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	sessions := sessionStub{
		"admin":  {Token: "admin", Role: "ADMIN", UserEmail: "a@example.com"},
		"viewer": {Token: "viewer", Role: "VIEWER", UserEmail: "v@example.com"},
	}
	authn := auth.New(sessions, cfg)

	cases := []struct {
		name       string
		token      string
		privileged bool
		want       int
	}{
		{"no token", "", false, http.StatusUnauthorized},
		{"unknown token", "missing", true, http.StatusUnauthorized},
		{"lookup failure", "broken", true, http.StatusBadGateway},
		{"viewer on privileged route", "viewer", true, http.StatusForbidden},
		{"viewer on plain route", "viewer", false, http.StatusOK},
		{"admin on privileged route", "admin", true, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var seen *store.Session
			handler := authn.Middleware(tc.privileged, func(w http.ResponseWriter, status int, message string) {
				http.Error(w, message, status)
			}, func(w http.ResponseWriter, r *http.Request) {
				seen, _ = auth.SessionFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/models", nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d (%s)", tc.want, rec.Code, rec.Body.String())
			}
			if tc.want == http.StatusOK && (seen == nil || seen.Token != tc.token) {
				t.Fatalf("expected session in context, got %#v", seen)
			}
		})
	}
}

func TestAuthorizeRoles(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithRoles("EDITOR"))
	authn := auth.New(sessionStub{}, cfg)
	if err := authn.Authorize(&store.Session{Role: "editor"}); err != nil {
		t.Fatalf("expected editor to be allowed: %v", err)
	}
	err := authn.Authorize(&store.Session{Role: "ADMIN"})
	if !errors.Is(err, services.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}
