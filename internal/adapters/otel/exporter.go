package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	serviceName    = "pacetrack"
	serviceVersion = "0.1.0"
)

// Exporter exports editor metrics to an OTEL Collector.
type Exporter struct {
	provider       *sdkmetric.MeterProvider
	meter          metric.Meter
	buildsTotal    metric.Int64Counter
	armsHist       metric.Int64Histogram
	segmentsHist   metric.Int64Histogram
	fallbacksTotal metric.Int64Counter
	savesTotal     metric.Int64Counter
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	buildsTotal, err := meter.Int64Counter(
		"pacetrack.schematic.builds",
		metric.WithDescription("Total schematic timeline builds"),
		metric.WithUnit("{build}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating builds counter: %w", err)
	}

	armsHist, err := meter.Int64Histogram(
		"pacetrack.schematic.arms",
		metric.WithDescription("Arms rendered per schematic build"),
		metric.WithUnit("{arm}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating arms histogram: %w", err)
	}

	segmentsHist, err := meter.Int64Histogram(
		"pacetrack.schematic.segments",
		metric.WithDescription("Segments rendered per schematic build"),
		metric.WithUnit("{segment}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating segments histogram: %w", err)
	}

	fallbacksTotal, err := meter.Int64Counter(
		"pacetrack.fallbacks",
		metric.WithDescription("Total schematic fallbacks by reason"),
		metric.WithUnit("{fallback}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating fallbacks counter: %w", err)
	}

	savesTotal, err := meter.Int64Counter(
		"pacetrack.document.saves",
		metric.WithDescription("Total campaign document saves by format"),
		metric.WithUnit("{save}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating saves counter: %w", err)
	}

	return &Exporter{
		provider:       provider,
		meter:          meter,
		buildsTotal:    buildsTotal,
		armsHist:       armsHist,
		segmentsHist:   segmentsHist,
		fallbacksTotal: fallbacksTotal,
		savesTotal:     savesTotal,
	}, nil
}

// RecordSchematicBuild counts one timeline build over the given arms and segments.
func (e *Exporter) RecordSchematicBuild(ctx context.Context, armCount, segmentCount int) {
	e.buildsTotal.Add(ctx, 1)
	e.armsHist.Record(ctx, int64(armCount))
	e.segmentsHist.Record(ctx, int64(segmentCount))
}

// RecordFallback counts one schematic fallback, tagged with its reason.
func (e *Exporter) RecordFallback(ctx context.Context, reason string) {
	e.fallbacksTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

// RecordDocumentSave counts one document save, tagged with its encoding.
func (e *Exporter) RecordDocumentSave(ctx context.Context, format string) {
	e.savesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("format", format)))
}

// Shutdown flushes any pending metrics and releases the exporter.
func (e *Exporter) Shutdown(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
