// Package requestcontext carries request-scoped values through a
// context.Context without depending on net/http.
//
// Middleware stores the values; handlers and the classifier service read
// them, so domain code can log a request ID or stamp a response with the
// request time without importing transport code:
//
//	id := requestcontext.RequestID(ctx)
//	at := requestcontext.Now(ctx)
//
// Tests inject fixed values the same way middleware does:
//
//	ctx = requestcontext.WithTime(ctx, fixed)
package requestcontext

import (
	"context"
	"time"
)

type key int

// Context keys, exported for tests that build contexts with context.WithValue.
const (
	ContextKeyClientIP key = iota
	ContextKeyUserAgent
	ContextKeyRequestID
	ContextKeyRequestTime
)

func lookup[T any](ctx context.Context, k key) (T, bool) {
	v, ok := ctx.Value(k).(T)
	return v, ok
}

// ClientIP returns the caller's address, or "" outside a request.
func ClientIP(ctx context.Context) string {
	ip, _ := lookup[string](ctx, ContextKeyClientIP)
	return ip
}

// UserAgent returns the caller's User-Agent header, or "".
func UserAgent(ctx context.Context) string {
	ua, _ := lookup[string](ctx, ContextKeyUserAgent)
	return ua
}

// WithClientMetadata stores the caller's address and User-Agent.
func WithClientMetadata(ctx context.Context, clientIP, userAgent string) context.Context {
	return context.WithValue(context.WithValue(ctx, ContextKeyClientIP, clientIP), ContextKeyUserAgent, userAgent)
}

// RequestID returns the correlation ID assigned by the request ID middleware.
func RequestID(ctx context.Context) string {
	id, _ := lookup[string](ctx, ContextKeyRequestID)
	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// Now returns the time the request was received. Outside a request (CLI,
// unit tests without middleware) it is the wall clock.
func Now(ctx context.Context) time.Time {
	if t, ok := lookup[time.Time](ctx, ContextKeyRequestTime); ok {
		return t
	}
	return time.Now()
}

func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyRequestTime, t)
}
