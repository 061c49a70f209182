package trace

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

type ctxKey string

const ctxKeyTrace ctxKey = "trace_info"

// Header names carried on inbound responses and outbound requests.
const (
	HeaderRequestID = "X-Request-Id"
	HeaderSpanID    = "X-Span-Id"
)

// Info carries tracing state for one inbound request.
// spanSeq grows by one for every outbound call made while serving it.
type Info struct {
	RequestID string
	spanSeq   int64
}

// MaxIDLength bounds request IDs accepted from clients.
const MaxIDLength = 64

// GenerateID returns a new random request ID.
func GenerateID() string {
	return uuid.NewString()
}

// AcceptID returns the client-supplied ID when it is short and made only of
// letters, digits, '.', '_' or '-'. Anything else is replaced by GenerateID
// so headers and log lines never echo arbitrary client input.
func AcceptID(raw string) string {
	if raw == "" || len(raw) > MaxIDLength {
		return GenerateID()
	}
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '.', c == '_', c == '-':
		default:
			return GenerateID()
		}
	}
	return raw
}

// WithRequestAndSpan stores requestID and the starting span (normally 0) in ctx.
func WithRequestAndSpan(ctx context.Context, requestID string, initialSpan int64) context.Context {
	info := &Info{RequestID: requestID, spanSeq: initialSpan}
	return context.WithValue(ctx, ctxKeyTrace, info)
}

func infoFromContext(ctx context.Context) *Info {
	if ctx == nil {
		return nil
	}
	v, _ := ctx.Value(ctxKeyTrace).(*Info)
	return v
}

// RequestIDFromContext returns the request ID stored in ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	info := infoFromContext(ctx)
	if info == nil {
		return ""
	}
	return info.RequestID
}

// CurrentSpanID returns the current span sequence without advancing it.
func CurrentSpanID(ctx context.Context) string {
	info := infoFromContext(ctx)
	if info == nil {
		return "0"
	}
	val := atomic.LoadInt64(&info.spanSeq)
	if val <= 0 {
		return "0"
	}
	return strconv.FormatInt(val, 10)
}

// NextSpanID advances the span sequence and returns (requestID, spanID).
// Outside a traced request a fresh request ID with span "1" is returned.
func NextSpanID(ctx context.Context) (string, string) {
	info := infoFromContext(ctx)
	if info == nil {
		return GenerateID(), "1"
	}
	val := atomic.AddInt64(&info.spanSeq, 1)
	if val <= 0 {
		val = 1
	}
	return info.RequestID, strconv.FormatInt(val, 10)
}
