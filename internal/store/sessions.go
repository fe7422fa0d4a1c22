package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CreateSession issues a new session token valid for ttl.
func (s *Store) CreateSession(ctx context.Context, email, role, googleAccessToken string, ttl time.Duration) (*Session, error) {
	email = strings.TrimSpace(email)
	role = strings.ToUpper(strings.TrimSpace(role))
	if email == "" || role == "" {
		return nil, errors.New("session requires email and role")
	}
	if ttl <= 0 {
		return nil, errors.New("session ttl must be positive")
	}

	now := time.Now().UTC()
	session := &Session{
		Token:             uuid.NewString(),
		UserEmail:         email,
		Role:              role,
		GoogleAccessToken: strings.TrimSpace(googleAccessToken),
		CreatedAt:         now,
		ExpiresAt:         now.Add(ttl),
	}
	if _, err := s.execWithRetry(
		ctx,
		`INSERT INTO sessions (token, user_email, role, google_access_token, created_at, expires_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		session.Token,
		session.UserEmail,
		session.Role,
		nullableString(session.GoogleAccessToken),
		formatTime(session.CreatedAt),
		formatTime(session.ExpiresAt),
	); err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	return session, nil
}

// LookupSession returns the session for token, or nil when it is unknown or expired.
func (s *Store) LookupSession(ctx context.Context, token string) (*Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil
	}
	var (
		session    Session
		google     sql.NullString
		createdRaw sql.NullString
		expiresRaw sql.NullString
	)
	err := s.db.QueryRowContext(
		ensureContext(ctx),
		`SELECT token, user_email, role, google_access_token, created_at, expires_at FROM sessions WHERE token = ?`,
		token,
	).Scan(&session.Token, &session.UserEmail, &session.Role, &google, &createdRaw, &expiresRaw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup session: %w", err)
	}
	session.GoogleAccessToken = google.String
	session.CreatedAt = parseTime(createdRaw)
	session.ExpiresAt = parseTime(expiresRaw)
	if session.Expired(time.Now()) {
		return nil, nil
	}
	return &session, nil
}

// DeleteSession revokes a session. Deleting an unknown token is not an error.
func (s *Store) DeleteSession(ctx context.Context, token string) error {
	if _, err := s.execWithRetry(ctx, `DELETE FROM sessions WHERE token = ?`, strings.TrimSpace(token)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
