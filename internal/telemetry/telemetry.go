// Package telemetry wires OpenTelemetry tracing over OTLP/HTTP.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "skulk"
	serviceVersion = "0.1.0"
)

// Setup installs a global tracer provider that batches spans to the
// OTLP/HTTP endpoint named by the standard OTEL_EXPORTER_OTLP_* env
// vars. The returned shutdown flushes pending spans; call it on exit.
func Setup(ctx context.Context) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res, err := serviceResource(ctx)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// serviceResource describes this process. Built from scratch rather
// than merged with resource.Default to sidestep schema URL conflicts
// between SDK versions.
func serviceResource(ctx context.Context) (*resource.Resource, error) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	return resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("telemetry.sdk.language", "go"),
			attribute.String("telemetry.sdk.name", "opentelemetry"),
			attribute.String("host.name", hostname),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
}

// Tracer returns the named component tracer from the global provider.
// Before Setup runs this yields the default no-op provider, so callers
// can instrument unconditionally.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer("skulk/" + name)
}

// NoopTracer returns a tracer that records nothing, for when telemetry
// is explicitly disabled.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer("skulk/noop")
}
