package progress

import "context"

type reporterKey struct{}

// WithReporter returns a copy of ctx that carries r. Hosts use it to route the
// events of a single call to a call-specific sink.
func WithReporter(ctx context.Context, r Reporter) context.Context {
	return context.WithValue(ctx, reporterKey{}, r)
}

// FromContext returns the reporter carried by ctx, or fallback when there is none.
// The result is never nil.
func FromContext(ctx context.Context, fallback Reporter) Reporter {
	if r, ok := ctx.Value(reporterKey{}).(Reporter); ok && r != nil {
		return r
	}
	return OrNop(fallback)
}
