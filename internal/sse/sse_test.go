package sse_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"contentops/internal/sse"
)

func TestWriterSetsHeadersAndFrames(t *testing.T) {
	rec := httptest.NewRecorder()
	w := sse.NewWriter(rec)

	if err := w.Emit("progress", map[string]string{"step": "validate", "message": "Validating"}); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	if err := w.Emit("complete", map[string]string{"message": "done"}); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}

	for header, want := range map[string]string{
		"Content-Type":  "text/event-stream",
		"Cache-Control": "no-cache",
		"Connection":    "keep-alive",
	} {
		if got := rec.Header().Get(header); got != want {
			t.Fatalf("%s = %q, want %q", header, got, want)
		}
	}
	if !rec.Flushed {
		t.Fatal("expected response to be flushed")
	}

	want := "event: progress\ndata: {\"message\":\"Validating\",\"step\":\"validate\"}\n\n" +
		"event: complete\ndata: {\"message\":\"done\"}\n\n"
	if rec.Body.String() != want {
		t.Fatalf("unexpected body:\n%q\nwant:\n%q", rec.Body.String(), want)
	}
}

func TestReadAllParsesFrames(t *testing.T) {
	stream := ": comment\n" +
		"event: progress\ndata: {\"step\":\"copy\"}\n\n" +
		"data: plain\n\n" +
		"event: error\ndata: {\"message\":\"boom\"}\n"
	events, err := sse.ReadAll(strings.NewReader(stream))
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	want := []sse.Event{
		{Name: "progress", Data: `{"step":"copy"}`},
		{Name: "message", Data: "plain"},
		{Name: "error", Data: `{"message":"boom"}`},
	}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Fatalf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeRejectsBadNames(t *testing.T) {
	if _, err := sse.Encode("bad\nname", nil); err == nil {
		t.Fatal("expected error for multi-line event name")
	}
}

type failingWriter struct {
	header http.Header
}

func (f *failingWriter) Header() http.Header       { return f.header }
func (f *failingWriter) WriteHeader(int)           {}
func (f *failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestEmitAfterFailureReportsClosed(t *testing.T) {
	w := sse.NewWriter(&failingWriter{header: http.Header{}})
	if err := w.Emit("progress", nil); !errors.Is(err, sse.ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if err := w.Emit("progress", nil); !errors.Is(err, sse.ErrClosed) {
		t.Fatalf("expected ErrClosed on second emit, got %v", err)
	}
}
