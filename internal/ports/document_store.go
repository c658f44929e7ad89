package ports

import (
	"context"

	"github.com/emiliopalmerini/pacetrack/internal/campaign"
)

// DocumentStore loads and saves campaign documents on disk. The encoding
// is chosen from the file extension, so a store can round-trip both the
// JSON and the YAML renditions of a document.
type DocumentStore interface {
	// Load reads and decodes the document at path.
	Load(ctx context.Context, path string) (*campaign.Document, error)
	// Save encodes doc and writes it to path, replacing any previous file.
	Save(ctx context.Context, path string, doc *campaign.Document) error
}
