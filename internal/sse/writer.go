// Package sse writes and reads text/event-stream frames.
package sse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
)

// ErrClosed is returned by Emit after a write to the client has failed.
var ErrClosed = errors.New("event stream closed")

// Writer emits named JSON events on an HTTP response.
type Writer struct {
	mu     sync.Mutex
	w      http.ResponseWriter
	rc     *http.ResponseController
	broken bool
}

// NewWriter sets the event-stream headers and commits the response status.
func NewWriter(w http.ResponseWriter) *Writer {
	h := w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	sw := &Writer{w: w, rc: http.NewResponseController(w)}
	_ = sw.rc.Flush()
	return sw
}

// Emit writes one "event: name / data: json" frame and flushes it.
func (s *Writer) Emit(event string, payload any) error {
	frame, err := Encode(event, payload)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.broken {
		return ErrClosed
	}
	if _, err := s.w.Write(frame); err != nil {
		s.broken = true
		return fmt.Errorf("%w: %v", ErrClosed, err)
	}
	if err := s.rc.Flush(); err != nil && !errors.Is(err, http.ErrNotSupported) {
		s.broken = true
		return fmt.Errorf("%w: %v", ErrClosed, err)
	}
	return nil
}

// Encode renders a single frame. Event names may not contain line breaks.
func Encode(event string, payload any) ([]byte, error) {
	if event == "" || strings.ContainsAny(event, "\r\n") {
		return nil, fmt.Errorf("invalid event name %q", event)
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", event, err)
	}
	var buf bytes.Buffer
	buf.Grow(len(event) + len(data) + 16)
	buf.WriteString("event: ")
	buf.WriteString(event)
	buf.WriteString("\ndata: ")
	buf.Write(data)
	buf.WriteString("\n\n")
	return buf.Bytes(), nil
}
