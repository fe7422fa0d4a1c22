package provision

import (
	"sync"

	"contentops/internal/api"
)

// Emitter delivers a named event with a JSON-serialisable payload.
type Emitter interface {
	Emit(event string, payload any) error
}

// EmitterFunc adapts a function to Emitter.
type EmitterFunc func(event string, payload any) error

// Emit calls f.
func (f EmitterFunc) Emit(event string, payload any) error {
	return f(event, payload)
}

// Event is an emitted event as captured by Recorder.
type Event struct {
	Name    string
	Payload any
}

// Recorder is an Emitter that keeps every event in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Emit records the event.
func (r *Recorder) Emit(event string, payload any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Name: event, Payload: payload})
	return nil
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Steps returns the progress step of each progress event followed by the
// names of terminal events, in emission order.
func (r *Recorder) Steps() []string {
	var out []string
	for _, evt := range r.Events() {
		switch p := evt.Payload.(type) {
		case api.ProgressEvent:
			out = append(out, p.Step)
		default:
			out = append(out, evt.Name)
		}
	}
	return out
}
