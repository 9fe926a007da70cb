package log

import "context"

type requestIDKey struct{}

// SetRequestIDToContext stores the request id emitted with every log line.
func SetRequestIDToContext(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetRequestIDFromContext returns the request id or an empty string.
func GetRequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
