// Package correlation carries a per-request correlation ID from the browser
// through the relay to the upstream API and into audit events.
package correlation

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// HeaderName is the HTTP header for correlation ID, used both inbound and
// on calls to the upstream.
const HeaderName = "X-Correlation-ID"

type contextKey struct{}

// FromContext extracts correlation ID from context.
// Returns empty string if not present.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(contextKey{}).(string); ok {
		return id
	}
	return ""
}

// WithID returns a new context with correlation ID.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// NewID generates a new correlation ID (UUID v4).
func NewID() string {
	return uuid.New().String()
}

// Inject copies the correlation ID of the request context onto an outbound
// request. It is a no-op when the context has none.
func Inject(req *http.Request) {
	if id := FromContext(req.Context()); id != "" {
		req.Header.Set(HeaderName, id)
	}
}
