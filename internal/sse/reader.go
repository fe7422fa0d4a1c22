package sse

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// Event is a decoded frame.
type Event struct {
	Name string
	Data string
}

// ReadAll decodes every frame in r until EOF. Frames without an event line
// are named "message"; comment, id, and retry lines are ignored.
func ReadAll(r io.Reader) ([]Event, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		events []Event
		name   string
		data   bytes.Buffer
	)
	flush := func() {
		if name == "" && data.Len() == 0 {
			return
		}
		payload := strings.TrimSuffix(data.String(), "\n")
		if name == "" {
			name = "message"
		}
		events = append(events, Event{Name: name, Data: payload})
		name = ""
		data.Reset()
	}

	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, "event:"):
			name = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data.WriteString(strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " "))
			data.WriteByte('\n')
		}
	}
	flush()
	return events, scanner.Err()
}
