// Package ctxutil provides context utilities for request-scoped values
// shared by the list server and the paging client.
//
// # Trace IDs
//
// Every request carries a trace id that ends up in log lines on both sides:
//
//	ctx, traceID := ctxutil.EnsureTraceID(ctx)
//	ctxutil.InjectTraceID(ctx, req) // sets X-Trace-Id on an outgoing request
//
// On the server, TraceMiddleware adopts the incoming X-Trace-Id header (or
// mints a new one) and echoes it back in the response.
//
// # Gin Integration
//
// Values set through SetValue are mirrored onto the embedded *gin.Context:
//
//	ctx = ctxutil.WithGinContext(ctx, c)
//	ctx = ctxutil.SetValue(ctx, "resource", "disks")
package ctxutil
