package commons

import (
	"context"

	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

type rqIDKey struct{}

func RequestIDFromContext(ctx context.Context) string {
	rqID, ok := ctx.Value(rqIDKey{}).(string)
	if !ok {
		return ""
	}
	return rqID
}

// ContextWithRequestID stores rqID in ctx, generating a new one when rqID is empty.
func ContextWithRequestID(ctx context.Context, rqID string) context.Context {
	if rqID == "" {
		rqID = uuid.NewString()
	}
	return context.WithValue(ctx, rqIDKey{}, rqID)
}
