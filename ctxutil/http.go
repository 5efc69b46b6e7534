package ctxutil

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// TraceMiddleware adopts the caller's trace id or mints one, stores it on
// the request context and echoes it in the response header.
func TraceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := WithGinContext(c.Request.Context(), c)
		if traceID := c.GetHeader(TraceIDHeader); traceID != "" {
			ctx = SetTraceID(ctx, traceID)
		}
		ctx, traceID := EnsureTraceID(ctx)
		c.Request = c.Request.WithContext(ctx)
		c.Header(TraceIDHeader, traceID)
		c.Next()
	}
}

// InjectTraceID copies the trace id of ctx onto an outgoing request.
func InjectTraceID(ctx context.Context, req *http.Request) {
	if traceID := GetTraceID(ctx); traceID != "" {
		req.Header.Set(TraceIDHeader, traceID)
	}
}

// GetClientIP gets client IP from context.Context
func GetClientIP(ctx context.Context) string {
	if ginCtx, ok := GetGinContext(ctx); ok && ginCtx.Request != nil {
		return getClientIPFromRequest(ginCtx.Request)
	}
	return "unknown"
}

// getClientIPFromRequest extracts client IP from HTTP request
func getClientIPFromRequest(req *http.Request) string {
	if xff := req.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			if ip := strings.TrimSpace(ips[0]); ip != "" {
				return ip
			}
		}
	}

	if xri := req.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return req.RemoteAddr
	}
	return host
}
