package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/metinatakli/cinema-ticket-service/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

const metricsInterval = 15 * time.Second

// Purchase outcomes besides these are the rejection reasons of domain.InvalidPurchaseError.
const (
	outcomeSuccess          = "success"
	outcomeValidationFailed = "validation_failed"
	outcomeError            = "error"
)

// initTelemetry installs the global OTLP providers and returns a function that
// flushes and stops them. Without a collector URL the no-op globals stay in place.
func initTelemetry(cfg Config, logger *slog.Logger) (func(context.Context), error) {
	if cfg.OtelCollectorUrl == "" {
		logger.Info("OpenTelemetry collector URL not set, skipping initialization")

		return func(context.Context) {}, nil
	}

	ctx := context.Background()

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(version),
			semconv.DeploymentEnvironment(cfg.Env),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create otel resource: %w", err)
	}

	tracerProvider, err := newTracerProvider(ctx, res, cfg.OtelCollectorUrl)
	if err != nil {
		return nil, err
	}

	meterProvider, err := newMeterProvider(ctx, res, cfg.OtelCollectorUrl)
	if err != nil {
		return nil, errors.Join(err, tracerProvider.Shutdown(ctx))
	}

	loggerProvider, err := newLoggerProvider(ctx, res, cfg.OtelCollectorUrl)
	if err != nil {
		return nil, errors.Join(err, tracerProvider.Shutdown(ctx), meterProvider.Shutdown(ctx))
	}

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	otel.SetMeterProvider(meterProvider)
	global.SetLoggerProvider(loggerProvider)

	return func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		err := errors.Join(
			tracerProvider.Shutdown(ctx),
			meterProvider.Shutdown(ctx),
			loggerProvider.Shutdown(ctx),
		)
		if err != nil {
			logger.Error("failed to shutdown telemetry providers", "error", err)
		}
	}, nil
}

func newTracerProvider(ctx context.Context, res *resource.Resource, endpoint string) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithInsecure(), otlptracegrpc.WithEndpoint(endpoint))
	if err != nil {
		return nil, fmt.Errorf("create otel trace exporter: %w", err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter),
	), nil
}

func newMeterProvider(ctx context.Context, res *resource.Resource, endpoint string) (*sdkmetric.MeterProvider, error) {
	exporter, err := otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithInsecure(), otlpmetricgrpc.WithEndpoint(endpoint))
	if err != nil {
		return nil, fmt.Errorf("create otel metric exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(metricsInterval))),
	), nil
}

func newLoggerProvider(ctx context.Context, res *resource.Resource, endpoint string) (*sdklog.LoggerProvider, error) {
	exporter, err := otlploggrpc.New(ctx, otlploggrpc.WithInsecure(), otlploggrpc.WithEndpoint(endpoint))
	if err != nil {
		return nil, fmt.Errorf("create otel log exporter: %w", err)
	}

	return sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
	), nil
}

// purchaseMetrics records purchase outcomes and what successful purchases sold.
type purchaseMetrics struct {
	attempts metric.Int64Counter
	tickets  metric.Int64Counter
	revenue  metric.Int64Counter
}

func newPurchaseMetrics(provider metric.MeterProvider) (*purchaseMetrics, error) {
	meter := provider.Meter(serviceName)

	attempts, err := meter.Int64Counter(
		"tickets.purchases",
		metric.WithDescription("Ticket purchase attempts by outcome"),
	)
	if err != nil {
		return nil, err
	}

	tickets, err := meter.Int64Counter(
		"tickets.sold",
		metric.WithDescription("Tickets sold by category"),
	)
	if err != nil {
		return nil, err
	}

	revenue, err := meter.Int64Counter(
		"tickets.revenue",
		metric.WithDescription("Amount charged for sold tickets"),
		metric.WithUnit("{GBP}"),
	)
	if err != nil {
		return nil, err
	}

	return &purchaseMetrics{attempts: attempts, tickets: tickets, revenue: revenue}, nil
}

func (m *purchaseMetrics) recordOutcome(ctx context.Context, outcome string) {
	m.attempts.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func (m *purchaseMetrics) recordSale(ctx context.Context, purchase domain.Purchase) {
	m.recordOutcome(ctx, outcomeSuccess)

	for _, category := range domain.Categories() {
		n := purchase.Counts.Get(category)
		if n == 0 {
			continue
		}

		m.tickets.Add(ctx, int64(n), metric.WithAttributes(attribute.String("category", category.String())))
	}

	m.revenue.Add(ctx, purchase.TotalPrice)
}
