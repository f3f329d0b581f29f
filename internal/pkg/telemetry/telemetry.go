// Package telemetry wires OpenTelemetry logs, metrics and traces to OTLP
// gRPC exporters. Exporters read their endpoint from the standard
// OTEL_EXPORTER_OTLP_* variables.
package telemetry

import (
	"context"
	"errors"
	"fmt"
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

var loggerProvider atomic.Pointer[sdklog.LoggerProvider]

// LoggerProvider returns the provider registered by Init, or nil before it.
// The logger package bridges zap records through it.
func LoggerProvider() otellog.LoggerProvider {
	lp := loggerProvider.Load()
	if lp == nil {
		return nil
	}

	return lp
}

// ShutdownFunc flushes and stops every provider started by Init.
type ShutdownFunc func(ctx context.Context) error

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// shutdownAll stops providers in reverse start order.
func shutdownAll(providers []shutdowner) ShutdownFunc {
	return func(ctx context.Context) error {
		var errs []error
		for i := len(providers) - 1; i >= 0; i-- {
			errs = append(errs, providers[i].Shutdown(ctx))
		}
		return errors.Join(errs...)
	}
}

func newResource(serviceName string) (*sdkresource.Resource, error) {
	return sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

func initMeterProvider(ctx context.Context, res *sdkresource.Resource) (*sdkmetric.MeterProvider, error) {
	exporter, err := otlpmetricgrpc.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)
	return mp, nil
}

func initTracerProvider(ctx context.Context, res *sdkresource.Resource) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("trace exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	return tp, nil
}

func initLoggerProvider(ctx context.Context, res *sdkresource.Resource) (*sdklog.LoggerProvider, error) {
	exporter, err := otlploggrpc.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("log exporter: %w", err)
	}

	lp := sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
		sdklog.WithResource(res),
	)

	loggerProvider.Store(lp)
	return lp, nil
}

// Init registers the global meter and tracer providers and the logger
// provider for serviceName. It must run before logger.Init for pass logs to
// reach the collector. If a provider fails to start, the ones already
// started are shut down before returning.
func Init(ctx context.Context, serviceName string) (ShutdownFunc, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, err
	}

	var started []shutdowner
	fail := func(err error) (ShutdownFunc, error) {
		return nil, errors.Join(err, shutdownAll(started)(ctx))
	}

	mp, err := initMeterProvider(ctx, res)
	if err != nil {
		return fail(err)
	}
	started = append(started, mp)

	tp, err := initTracerProvider(ctx, res)
	if err != nil {
		return fail(err)
	}
	started = append(started, tp)

	lp, err := initLoggerProvider(ctx, res)
	if err != nil {
		return fail(err)
	}
	started = append(started, lp)

	return shutdownAll(started), nil
}
