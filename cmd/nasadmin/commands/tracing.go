package commands

import (
	"context"

	"github.com/ncobase/nasadmin/config"
	"github.com/ncobase/nasadmin/logging/logger"
	"github.com/ncobase/nasadmin/observes"
)

// startTracing installs the OTLP tracer when an endpoint is configured and
// returns the function that flushes it.
func startTracing(ctx context.Context, opt *config.Tracer) func() {
	shutdown, err := observes.NewTracer(ctx, opt)
	if err != nil {
		logger.Warnf(ctx, "tracing disabled: %v", err)
	}
	return func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warnf(context.Background(), "tracer shutdown: %v", err)
		}
	}
}
