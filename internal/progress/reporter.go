package progress

import (
	"context"
	"log/slog"
)

// Reporter receives progress events. Report is called synchronously at the
// suspension points of an operation; implementations must not block forever.
type Reporter interface {
	Report(ctx context.Context, ev Event)
}

// ReporterFunc adapts a plain function to the Reporter interface.
type ReporterFunc func(ctx context.Context, ev Event)

// Report calls f(ctx, ev).
func (f ReporterFunc) Report(ctx context.Context, ev Event) {
	f(ctx, ev)
}

// Nop discards every event.
type Nop struct{}

// Report does nothing.
func (Nop) Report(context.Context, Event) {}

// OrNop returns r, or a Nop reporter when r is nil.
func OrNop(r Reporter) Reporter {
	if r == nil {
		return Nop{}
	}
	return r
}

// ChannelReporter forwards events to a channel. A send gives up when ctx is done.
type ChannelReporter struct {
	ch chan<- Event
}

// NewChannelReporter creates a reporter that writes to ch.
func NewChannelReporter(ch chan<- Event) *ChannelReporter {
	return &ChannelReporter{ch: ch}
}

// Report sends ev on the channel.
func (r *ChannelReporter) Report(ctx context.Context, ev Event) {
	select {
	case r.ch <- ev:
	case <-ctx.Done():
	}
}

// LogReporter writes events to a structured logger at debug level.
type LogReporter struct {
	logger *slog.Logger
}

// NewLogReporter creates a reporter backed by logger.
func NewLogReporter(logger *slog.Logger) *LogReporter {
	return &LogReporter{logger: logger}
}

// Report logs ev.
func (r *LogReporter) Report(ctx context.Context, ev Event) {
	r.logger.DebugContext(ctx, ev.Data.Description, "type", ev.Type, "done", ev.Data.Done)
}

// Multi fans out every event to all reporters in order.
type Multi []Reporter

// Report forwards ev to each reporter.
func (m Multi) Report(ctx context.Context, ev Event) {
	for _, r := range m {
		if r != nil {
			r.Report(ctx, ev)
		}
	}
}
