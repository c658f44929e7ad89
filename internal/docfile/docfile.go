// Package docfile encodes campaign documents as JSON or YAML and persists
// them on disk. The two renditions carry the same field names, so a
// document can be converted between them without loss.
package docfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/emiliopalmerini/pacetrack/internal/campaign"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// FormatForPath returns the encoding implied by the file extension, or ""
// when the extension implies neither.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return ""
	}
}

// Decode reads one document from r in the given format.
func Decode(r io.Reader, format string) (*campaign.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return decode(data, format)
}

// Encode writes doc to w in the given format. JSON is indented with two
// spaces, matching what the web export serves.
func Encode(w io.Writer, doc *campaign.Document, format string) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode document as JSON: %w", err)
		}
		data = append(data, '\n')
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("failed to write document: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode document as YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to flush YAML encoder: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown document format %q", format)
	}
}

func decode(data []byte, format string) (*campaign.Document, error) {
	var doc campaign.Document
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode document as JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode document as YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown document format %q", format)
	}
	normalize(&doc)
	return &doc, nil
}

// normalize re-establishes the invariant that every collection is non-nil,
// which the editor handlers rely on when inserting.
func normalize(doc *campaign.Document) {
	c := &doc.Campaign
	if c.Arms == nil {
		c.Arms = map[string]*campaign.Arm{}
	}
	if c.Segments == nil {
		c.Segments = []campaign.Segment{}
	}
	if c.SelectionCircuits == nil {
		c.SelectionCircuits = map[string]*campaign.SelectionCircuit{}
	}
	if c.Analyses == nil {
		c.Analyses = []campaign.Analysis{}
	}
	if c.Attachments == nil {
		c.Attachments = []campaign.Attachment{}
	}
	if c.Ontologies == nil {
		c.Ontologies = map[string][]string{}
	}
	if c.StartingProtein.Features == nil {
		c.StartingProtein.Features = []string{}
	}
	if c.HostSystem.Resistances == nil {
		c.HostSystem.Resistances = []string{}
	}
}

// Store reads and writes documents, picking the encoding from the file
// extension. Unknown extensions load by sniffing and save as JSON.
type Store struct{}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Load(ctx context.Context, path string) (*campaign.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document file: %w", err)
	}

	format := FormatForPath(path)
	if format != "" {
		return decode(data, format)
	}

	doc, jsonErr := decode(data, FormatJSON)
	if jsonErr == nil {
		return doc, nil
	}
	doc, yamlErr := decode(data, FormatYAML)
	if yamlErr == nil {
		return doc, nil
	}
	return nil, fmt.Errorf("failed to decode %s as JSON (%v) or YAML: %w", filepath.Base(path), jsonErr, yamlErr)
}

func (s *Store) Save(ctx context.Context, path string, doc *campaign.Document) error {
	format := FormatForPath(path)
	if format == "" {
		format = FormatJSON
	}

	var buf bytes.Buffer
	if err := Encode(&buf, doc, format); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write document file: %w", err)
	}
	return nil
}
