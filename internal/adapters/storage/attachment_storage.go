// Package storage keeps staged files on the local filesystem, one
// directory per attachment kind under the configured data directory.
package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/emiliopalmerini/pacetrack/internal/campaign"
)

type AttachmentStore struct {
	baseDir string
}

func NewAttachmentStore(baseDir string) (*AttachmentStore, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create attachment directory: %w", err)
	}
	return &AttachmentStore{baseDir: baseDir}, nil
}

// Stage copies r into <baseDir>/<kind>/<basename> and returns the staged
// file record, hashing the content while it is written.
func (s *AttachmentStore) Stage(ctx context.Context, kind string, filename string, r io.Reader) (campaign.StagedFile, error) {
	base := filepath.Base(filename)
	if base == "" || base == "." || base == ".." || base == string(filepath.Separator) {
		return campaign.StagedFile{}, fmt.Errorf("invalid attachment filename %q", filename)
	}

	destDir := filepath.Join(s.baseDir, kind)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return campaign.StagedFile{}, fmt.Errorf("failed to create %s directory: %w", kind, err)
	}
	destPath := filepath.Join(destDir, base)

	dest, err := os.Create(destPath)
	if err != nil {
		return campaign.StagedFile{}, fmt.Errorf("failed to create staged file: %w", err)
	}
	defer func() { _ = dest.Close() }()

	hasher := sha256.New()
	size, err := io.Copy(io.MultiWriter(dest, hasher), r)
	if err != nil {
		return campaign.StagedFile{}, fmt.Errorf("failed to stage attachment: %w", err)
	}
	if err := dest.Close(); err != nil {
		return campaign.StagedFile{}, fmt.Errorf("failed to close staged file: %w", err)
	}

	abs, err := filepath.Abs(destPath)
	if err != nil {
		return campaign.StagedFile{}, fmt.Errorf("failed to resolve staged path: %w", err)
	}

	return campaign.StagedFile{
		URI:       "file://" + abs,
		SHA256:    hex.EncodeToString(hasher.Sum(nil)),
		SizeBytes: size,
	}, nil
}

func (s *AttachmentStore) Open(ctx context.Context, uri string) (io.ReadCloser, error) {
	file, err := os.Open(pathFromURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to open staged file: %w", err)
	}
	return file, nil
}

func (s *AttachmentStore) Remove(ctx context.Context, uri string) error {
	if err := os.Remove(pathFromURI(uri)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove staged file: %w", err)
	}
	return nil
}

func pathFromURI(uri string) string {
	return strings.TrimPrefix(uri, "file://")
}
