package llm

import (
	"context"

	"google.golang.org/grpc/metadata"
)

// Trace identifies one LLM invocation for observability. Callers attach it
// to the request context; providers forward it with the outbound request so
// invocations can be correlated in provider-side logs.
type Trace struct {
	ID     string
	Name   string
	UserID string
}

type traceContextKey struct{}

// WithTrace returns a context carrying the trace identity for one call.
func WithTrace(ctx context.Context, t Trace) context.Context {
	return context.WithValue(ctx, traceContextKey{}, t)
}

// TraceFromContext returns the trace identity attached to ctx, if any.
func TraceFromContext(ctx context.Context) (Trace, bool) {
	t, ok := ctx.Value(traceContextKey{}).(Trace)
	return t, ok
}

// traceOutgoing propagates the trace identity as gRPC request metadata.
func traceOutgoing(ctx context.Context) context.Context {
	t, ok := TraceFromContext(ctx)
	if !ok {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx,
		"x-trace-id", t.ID,
		"x-trace-name", t.Name,
		"x-trace-user", t.UserID,
	)
}
