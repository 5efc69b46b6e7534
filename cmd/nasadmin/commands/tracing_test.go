package commands

import (
	"context"
	"testing"
	"time"

	"github.com/ncobase/nasadmin/config"
	"github.com/ncobase/nasadmin/observes"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestStartTracingInstallsProvider(t *testing.T) {
	t.Cleanup(func() { otel.SetTracerProvider(noop.NewTracerProvider()) })

	stop := startTracing(context.Background(), &config.Tracer{
		Endpoint:           "127.0.0.1:4317",
		ServiceName:        "nasadmin-test",
		SamplingRate:       1,
		MaxExportBatchSize: 16,
		BatchTimeout:       100 * time.Millisecond,
		ExportTimeout:      500 * time.Millisecond,
	})
	defer stop()

	assert.IsType(t, &sdktrace.TracerProvider{}, otel.GetTracerProvider())

	_, span := observes.StartSpan(context.Background(), "client.Fetch")
	defer span.End()
	assert.True(t, span.SpanContext().IsValid(), "spans are recorded, not no-op")
}

func TestStartTracingWithoutEndpoint(t *testing.T) {
	otel.SetTracerProvider(noop.NewTracerProvider())

	stop := startTracing(context.Background(), &config.Tracer{})
	stop()

	assert.IsType(t, noop.TracerProvider{}, otel.GetTracerProvider())
}
