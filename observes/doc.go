// Package observes wires tracing and error reporting.
//
//	shutdown, err := observes.NewTracer(ctx, cfg.Observes.Tracer)
//	defer shutdown(context.Background())
//
//	ctx, span := observes.StartSpan(ctx, "client.Fetch", attribute.Int("page", 2))
//	defer func() { observes.EndSpan(span, err) }()
//
// Both the tracer and sentry stay disabled when their endpoint is empty.
package observes
