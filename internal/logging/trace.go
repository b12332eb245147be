package logging

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type traceIDKey struct{}

// TraceIDField is the log field carrying the invocation's trace ID.
const TraceIDField = "trace_id"

// GenerateTraceID returns a new ULID string.
func GenerateTraceID() string {
	return ulid.Make().String()
}

// ContextWithTraceID stores traceID in ctx.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID stored in ctx, or "".
func TraceIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GetOrGenerateTraceID returns the trace ID in ctx, generating one when absent.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	return GenerateTraceID()
}
