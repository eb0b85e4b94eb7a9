package instrument

import "context"

type correlationIDKey struct{}

// SetCorrelationID returns a copy of ctx carrying the correlation ID used to
// stitch together logs, traces and broker messages of one request.
func SetCorrelationID(ctx context.Context, cID string) context.Context {
	if cID == "" {
		return ctx
	}

	return context.WithValue(ctx, correlationIDKey{}, cID)
}

// GetCorrelationID returns the correlation ID stored in ctx, or an empty string.
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	cID, _ := ctx.Value(correlationIDKey{}).(string)
	return cID
}

type clientIPKey struct{}

// SetClientIP returns a copy of ctx carrying the caller address.
func SetClientIP(ctx context.Context, ip string) context.Context {
	if ip == "" {
		return ctx
	}

	return context.WithValue(ctx, clientIPKey{}, ip)
}

// GetClientIP returns the caller address stored in ctx, or an empty string.
func GetClientIP(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	ip, _ := ctx.Value(clientIPKey{}).(string)
	return ip
}
