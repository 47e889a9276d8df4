package mocks

import (
	"context"
	"sync"

	"github.com/Cyclone1070/fsnav/internal/progress"
)

// Recorder captures every progress event it receives.
type Recorder struct {
	mu     sync.Mutex
	events []progress.Event
}

// Report implements progress.Reporter.
func (r *Recorder) Report(_ context.Context, ev progress.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []progress.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]progress.Event(nil), r.events...)
}

// Descriptions returns the description of every recorded event.
func (r *Recorder) Descriptions() []string {
	events := r.Events()
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.Data.Description
	}
	return out
}

// Last returns the most recent event, or the zero value if none was recorded.
func (r *Recorder) Last() progress.Event {
	events := r.Events()
	if len(events) == 0 {
		return progress.Event{}
	}
	return events[len(events)-1]
}

// DoneCount returns how many recorded events were terminal.
func (r *Recorder) DoneCount() int {
	n := 0
	for _, ev := range r.Events() {
		if ev.Data.Done {
			n++
		}
	}
	return n
}
