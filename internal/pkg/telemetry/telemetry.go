// Package telemetry wires OpenTelemetry logs, metrics and traces for the
// bridge process using OTLP exporters over gRPC. Exporter endpoints follow the
// standard OTEL_EXPORTER_OTLP_* environment variables.
//
// When Init is never called, the global providers stay no-op and every
// instrument created by other packages silently discards its data.
package telemetry

import (
	"context"
	"errors"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	otellog "go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

// loggerProvider holds the provider registered by Init so the logger package
// can attach its OTEL bridge core.
var loggerProvider atomic.Pointer[sdklog.LoggerProvider]

// LoggerProvider returns the LoggerProvider registered by Init, or nil when
// telemetry has not been initialized.
func LoggerProvider() otellog.LoggerProvider {
	if lp := loggerProvider.Load(); lp != nil {
		return lp
	}
	return nil
}

// initLoggerProvider sets up an OTLP gRPC LoggerProvider with a batching
// processor and stores it for LoggerProvider.
func initLoggerProvider(ctx context.Context, res *sdkresource.Resource) (*sdklog.LoggerProvider, error) {
	exporter, err := otlploggrpc.New(ctx)
	if err != nil {
		return nil, err
	}

	lp := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
		sdklog.WithResource(res),
	)

	loggerProvider.Store(lp)
	return lp, nil
}

// initMeterProvider sets up an OTLP gRPC MeterProvider using a periodic reader
// and registers it as the global MeterProvider.
func initMeterProvider(ctx context.Context, res *sdkresource.Resource) (*sdkmetric.MeterProvider, error) {
	exporter, err := otlpmetricgrpc.New(ctx)
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
func initTracerProvider(ctx context.Context, res *sdkresource.Resource) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx)
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

// newResource merges the default system resource with the service name.
func newResource(serviceName string) (*sdkresource.Resource, error) {
	return sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

// ShutdownFunc flushes and stops every provider created by Init.
type ShutdownFunc func(ctx context.Context) error

// Init configures OpenTelemetry logs, metrics and traces for serviceName.
//
// Providers created before a failure are shut down before the error is
// returned, so a failed Init leaves the globals untouched apart from the
// providers that were already registered.
func Init(ctx context.Context, serviceName string) (ShutdownFunc, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, err
	}

	lp, err := initLoggerProvider(ctx, res)
	if err != nil {
		return nil, err
	}

	mp, err := initMeterProvider(ctx, res)
	if err != nil {
		loggerProvider.Store(nil)
		return nil, errors.Join(err, lp.Shutdown(ctx))
	}

	tp, err := initTracerProvider(ctx, res)
	if err != nil {
		loggerProvider.Store(nil)
		return nil, errors.Join(err, lp.Shutdown(ctx), mp.Shutdown(ctx))
	}

	return func(ctx context.Context) error {
		defer loggerProvider.Store(nil)

		return errors.Join(
			tp.Shutdown(ctx),
			mp.Shutdown(ctx),
			lp.Shutdown(ctx),
		)
	}, nil
}
