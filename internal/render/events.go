// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package render

import "sync"

// Kind identifies what a rendered payload represents on the terminal.
type Kind int

const (
	// Print is a regular log line.
	Print Kind = iota
	// ProgressCreate is the first frame of a progress bar.
	ProgressCreate
	// ProgressUpdate redraws the active progress bar in place.
	ProgressUpdate
	// ProgressRemove clears the active progress bar. It carries no payload.
	ProgressRemove
	// ReadInputStart shows a prompt question and hands the line to the user.
	ReadInputStart
	// ReadInputEnd marks the end of a prompt. It carries no payload.
	ReadInputEnd
)

// String implements the Stringer interface for Kind.
func (k Kind) String() string {
	switch k {
	case Print:
		return "print"
	case ProgressCreate:
		return "progressCreate"
	case ProgressUpdate:
		return "progressUpdate"
	case ProgressRemove:
		return "progressRemove"
	case ReadInputStart:
		return "readInputStart"
	case ReadInputEnd:
		return "readInputEnd"
	default:
		return "unknown"
	}
}

// Event is a single call made to a Renderer.
type Event struct {
	Kind    Kind
	Payload string
}

// Renderer writes events to the terminal.
// Implementations decide between in-place redraws and new lines based on the Kind.
type Renderer interface {
	Render(kind Kind, payload string)
}

// Recorder is a Renderer that keeps every event instead of drawing it.
// It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Render implements Renderer.
func (r *Recorder) Render(kind Kind, payload string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, Event{Kind: kind, Payload: payload})
}

// Events returns a copy of the recorded events in call order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Event, len(r.events))
	copy(out, r.events)

	return out
}

// Kinds returns only the kinds of the recorded events.
func (r *Recorder) Kinds() []Kind {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Kind, len(r.events))
	for i, e := range r.events {
		out[i] = e.Kind
	}

	return out
}

// Last returns the most recent event, or false if nothing was recorded.
func (r *Recorder) Last() (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.events) == 0 {
		return Event{}, false
	}

	return r.events[len(r.events)-1], true
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = nil
}

// Discard is a Renderer that drops everything.
type Discard struct{}

// Render implements Renderer by doing nothing.
func (Discard) Render(Kind, string) {}
