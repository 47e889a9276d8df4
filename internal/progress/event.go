// Package progress defines the status events that long-running tools emit
// while they work, and the reporters that deliver them.
package progress

// TypeStatus is the only event type emitted by the tools.
const TypeStatus = "status"

// Status is the payload of a status event.
type Status struct {
	Description string `json:"description"`
	Done        bool   `json:"done"`
	Hidden      bool   `json:"hidden"`
}

// Event is a single progress notification.
// Every operation emits at least one event with Done=false and exactly one with Done=true.
type Event struct {
	Type string `json:"type"`
	Data Status `json:"data"`
}

// Working returns an in-progress status event.
func Working(description string) Event {
	return Event{Type: TypeStatus, Data: Status{Description: description}}
}

// Finished returns the terminal status event of an operation.
func Finished(description string) Event {
	return Event{Type: TypeStatus, Data: Status{Description: description, Done: true}}
}
