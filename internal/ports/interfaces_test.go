package ports_test

import (
	"testing"

	"github.com/emiliopalmerini/pacetrack/internal/adapters/otel"
	"github.com/emiliopalmerini/pacetrack/internal/adapters/storage"
	"github.com/emiliopalmerini/pacetrack/internal/docfile"
	"github.com/emiliopalmerini/pacetrack/internal/ports"
)

// Compile-time interface conformance checks.
// These verify that concrete adapters properly implement their port interfaces.

func TestDocumentStoreConformance(t *testing.T) {
	var _ ports.DocumentStore = (*docfile.Store)(nil)
}

func TestAttachmentStorageConformance(t *testing.T) {
	var _ ports.AttachmentStorage = (*storage.AttachmentStore)(nil)
}

func TestMetricsExporterConformance(t *testing.T) {
	var _ ports.MetricsExporter = (*otel.Exporter)(nil)
}

func TestNoOpMetricsExporterConformance(t *testing.T) {
	var _ ports.MetricsExporter = (*otel.NoOpExporter)(nil)
}
