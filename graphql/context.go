package graphql

import (
	"context"
	"net/http"
)

// Context keys for resolver injection (avoids circular imports).
type contextKey string

const CtxKeyRequestID contextKey = "requestID"

// HeaderRequestID is read when the echo RequestID middleware did not run.
const HeaderRequestID = "X-Request-Id"

// RequestIDFromContext returns the request id for the current request, or "".
func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyRequestID).(string); ok {
		return v
	}
	return ""
}

// WithRequestID attaches the request id to ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CtxKeyRequestID, id)
}

// GetRequestID extracts the request id. Priority: 1) response header set by
// the RequestID middleware, 2) the incoming request header.
func GetRequestID(w http.ResponseWriter, r *http.Request) string {
	if w != nil {
		if id := w.Header().Get(HeaderRequestID); id != "" {
			return id
		}
	}
	return r.Header.Get(HeaderRequestID)
}
