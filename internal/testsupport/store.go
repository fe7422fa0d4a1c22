package testsupport

import (
	"context"
	"testing"
	"time"

	"contentops/internal/config"
	"contentops/internal/store"
)

// MustOpenStore opens a store.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}

// NewClientModel creates a model for tests using the provided store.
func NewClientModel(t testing.TB, st *store.Store, name, launchesFolder string) *store.ClientModel {
	t.Helper()

	model, err := st.CreateClientModel(context.Background(), name, launchesFolder)
	if err != nil {
		t.Fatalf("store.CreateClientModel: %v", err)
	}
	return model
}

// NewSession issues a one-hour session for tests.
func NewSession(t testing.TB, st *store.Store, email, role, googleToken string) *store.Session {
	t.Helper()

	session, err := st.CreateSession(context.Background(), email, role, googleToken, time.Hour)
	if err != nil {
		t.Fatalf("store.CreateSession: %v", err)
	}
	return session
}
