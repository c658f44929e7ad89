package otel

import "context"

// NoOpExporter is a metrics exporter that does nothing.
type NoOpExporter struct{}

// NewNoOpExporter creates a new no-op exporter for graceful degradation.
func NewNoOpExporter() *NoOpExporter {
	return &NoOpExporter{}
}

func (e *NoOpExporter) RecordSchematicBuild(ctx context.Context, armCount, segmentCount int) {}

func (e *NoOpExporter) RecordFallback(ctx context.Context, reason string) {}

func (e *NoOpExporter) RecordDocumentSave(ctx context.Context, format string) {}

func (e *NoOpExporter) Shutdown(ctx context.Context) error {
	return nil
}
