package ports

import "context"

// MetricsExporter exports editor activity to an external observability system.
type MetricsExporter interface {
	// RecordSchematicBuild counts one timeline build over the given arms and segments.
	RecordSchematicBuild(ctx context.Context, armCount, segmentCount int)
	// RecordFallback counts one schematic fallback, tagged with its reason.
	RecordFallback(ctx context.Context, reason string)
	// RecordDocumentSave counts one document save, tagged with its encoding.
	RecordDocumentSave(ctx context.Context, format string)
	// Shutdown flushes any pending metrics and releases the exporter.
	Shutdown(ctx context.Context) error
}
