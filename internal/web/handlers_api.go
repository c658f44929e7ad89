package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/pacetrack/internal/campaign"
	"github.com/emiliopalmerini/pacetrack/internal/docfile"
	"github.com/emiliopalmerini/pacetrack/internal/schematic"
)

func (s *Server) handleAPIImport(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(64 << 20); err != nil {
		redirectErr(w, r, "/campaign", "could not read form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("document")
	if err != nil {
		redirectErr(w, r, "/campaign", "choose a document to import")
		return
	}
	defer func() { _ = file.Close() }()

	var doc *campaign.Document
	if format := docfile.FormatForPath(header.Filename); format != "" {
		doc, err = docfile.Decode(file, format)
	} else {
		var data []byte
		data, err = io.ReadAll(file)
		if err == nil {
			doc, err = docfile.Decode(bytes.NewReader(data), docfile.FormatJSON)
			if err != nil {
				doc, err = docfile.Decode(bytes.NewReader(data), docfile.FormatYAML)
			}
		}
	}
	if err != nil {
		redirectErr(w, r, "/campaign", fmt.Sprintf("could not import %s: %v", header.Filename, err))
		return
	}

	s.mu.Lock()
	s.doc = doc
	arms, segments := len(doc.Campaign.Arms), len(doc.Campaign.Segments)
	s.mu.Unlock()

	s.logger.Info("imported document",
		zap.String("filename", header.Filename),
		zap.Int("arms", arms),
		zap.Int("segments", segments))
	redirectOK(w, r, "/campaign", fmt.Sprintf("Imported %s", header.Filename))
}

func (s *Server) handleAPIExportCampaign(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = docfile.FormatJSON
	}
	if format != docfile.FormatJSON && format != docfile.FormatYAML {
		http.Error(w, fmt.Sprintf("unknown format %q", format), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	contentType := "application/json"
	filename := "campaign.json"
	if format == docfile.FormatYAML {
		contentType = "application/x-yaml"
		filename = "campaign.yaml"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	if err := docfile.Encode(w, s.doc, format); err != nil {
		s.logger.Error("failed to export document", zap.Error(err))
		return
	}
	s.metrics.RecordDocumentSave(r.Context(), format)
}

func (s *Server) handleAPISchematicSVG(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &s.doc.Campaign
	scene, events := schematic.Build(c, time.Now().UTC())
	if scene == nil {
		http.Error(w, "nothing to render: the campaign needs at least one arm and one segment", http.StatusNotFound)
		return
	}

	s.metrics.RecordSchematicBuild(r.Context(), len(c.Arms), len(c.Segments))
	for _, ev := range events {
		s.metrics.RecordFallback(r.Context(), ev.Reason)
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	if _, err := w.Write(schematic.RenderSVG(scene)); err != nil {
		s.logger.Error("failed to write schematic SVG", zap.Error(err))
	}
}

func (s *Server) handleAPISchematicJSON(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &s.doc.Campaign
	scene, events := schematic.Build(c, time.Now().UTC())
	if events == nil {
		events = []schematic.FallbackEvent{}
	}
	if scene != nil {
		s.metrics.RecordSchematicBuild(r.Context(), len(c.Arms), len(c.Segments))
		for _, ev := range events {
			s.metrics.RecordFallback(r.Context(), ev.Reason)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	body := struct {
		Scene     *schematic.Scene          `json:"scene"`
		Fallbacks []schematic.FallbackEvent `json:"fallbacks"`
	}{Scene: scene, Fallbacks: events}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode schematic JSON", zap.Error(err))
	}
}
