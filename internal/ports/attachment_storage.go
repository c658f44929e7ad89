package ports

import (
	"context"
	"io"

	"github.com/emiliopalmerini/pacetrack/internal/campaign"
)

type AttachmentStorage interface {
	Stage(ctx context.Context, kind string, filename string, r io.Reader) (campaign.StagedFile, error)
	Open(ctx context.Context, uri string) (io.ReadCloser, error)
	Remove(ctx context.Context, uri string) error
}
