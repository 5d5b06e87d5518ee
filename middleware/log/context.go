package logger

import (
	"context"

	"github.com/google/uuid"
)

// WithRequestID adds a request ID to the context. If no request ID is
// provided, a new UUID is generated.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID extracts the request ID from the context. Returns an empty
// string if none is set.
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// NewRequestID generates a new request ID using UUID v4.
func NewRequestID() string {
	return uuid.New().String()
}
