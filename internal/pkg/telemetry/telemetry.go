// Package telemetry initializes OpenTelemetry metrics and tracing with OTLP
// exporters over gRPC. It registers global providers, so instrumented packages
// only talk to the otel API, and returns a ShutdownFunc that flushes and stops
// both pipelines.
//
// Exporter endpoints follow the standard OTEL_EXPORTER_OTLP_* environment
// variables unless WithEndpoint is given.
package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

// config holds exporter settings.
type config struct {
	endpoint       string // host:port of the collector, empty uses the OTEL env defaults
	insecure       bool   // disable TLS towards the collector
	serviceVersion string
}

// Option configures Init.
type Option func(*config)

// WithEndpoint sets the collector address (host:port) for both exporters.
func WithEndpoint(endpoint string) Option {
	return func(c *config) {
		c.endpoint = endpoint
	}
}

// WithInsecure disables TLS towards the collector.
func WithInsecure() Option {
	return func(c *config) {
		c.insecure = true
	}
}

// WithServiceVersion tags the resource with the running build version.
func WithServiceVersion(v string) Option {
	return func(c *config) {
		c.serviceVersion = v
	}
}

// initMeterProvider sets up an OTLP gRPC MeterProvider using a periodic reader
// and registers it as the global MeterProvider.
func initMeterProvider(ctx context.Context, res *sdkresource.Resource, cfg config) (*sdkmetric.MeterProvider, error) {
	var opts []otlpmetricgrpc.Option
	if cfg.endpoint != "" {
		opts = append(opts, otlpmetricgrpc.WithEndpoint(cfg.endpoint))
	}
	if cfg.insecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exporter, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)
	return mp, nil
}

// initTracerProvider sets up an OTLP gRPC TracerProvider using a batched
// exporter and registers it as the global TracerProvider.
func initTracerProvider(ctx context.Context, res *sdkresource.Resource, cfg config) (*sdktrace.TracerProvider, error) {
	var opts []otlptracegrpc.Option
	if cfg.endpoint != "" {
		opts = append(opts, otlptracegrpc.WithEndpoint(cfg.endpoint))
	}
	if cfg.insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}

	exporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	return tp, nil
}

// newResource merges the default system resource with the service identity.
func newResource(serviceName, serviceVersion string) (*sdkresource.Resource, error) {
	attrs := sdkresource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(serviceName),
	)
	if serviceVersion != "" {
		attrs = sdkresource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		)
	}

	return sdkresource.Merge(sdkresource.Default(), attrs)
}

// ShutdownFunc flushes and stops all telemetry providers.
type ShutdownFunc func(ctx context.Context) error

// NopShutdown is returned by callers that skip telemetry entirely.
func NopShutdown(context.Context) error { return nil }

// Init configures OpenTelemetry metrics and traces for serviceName and returns
// the function that must be called on shutdown to flush pending data.
func Init(ctx context.Context, serviceName string, opts ...Option) (ShutdownFunc, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	res, err := newResource(serviceName, cfg.serviceVersion)
	if err != nil {
		return nil, err
	}

	mp, err := initMeterProvider(ctx, res, cfg)
	if err != nil {
		return nil, err
	}

	tp, err := initTracerProvider(ctx, res, cfg)
	if err != nil {
		return nil, errors.Join(err, mp.Shutdown(ctx))
	}

	return func(ctx context.Context) error {
		return errors.Join(
			mp.Shutdown(ctx),
			tp.Shutdown(ctx),
		)
	}, nil
}
