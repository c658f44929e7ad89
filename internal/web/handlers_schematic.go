package web

import (
	"html/template"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/pacetrack/internal/schematic"
	"github.com/emiliopalmerini/pacetrack/internal/validate"
	"github.com/emiliopalmerini/pacetrack/internal/web/templates"
)

func (s *Server) handleSchematic(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &s.doc.Campaign
	data := templates.SchematicPage{
		Page:         page(r, "Schematic", "schematic"),
		ArmCount:     len(c.Arms),
		SegmentCount: len(c.Segments),
		CircuitCount: len(c.SelectionCircuits),
	}

	tl := schematic.BuildTimeline(c, time.Now().UTC())
	if tl != nil {
		data.MaxHours = tl.MaxEnd
		data.Fallbacks = tl.Events
		if scene := schematic.BuildScene(tl); scene != nil {
			data.HasScene = true
			data.SVG = template.HTML(schematic.RenderSVG(scene))
			s.metrics.RecordSchematicBuild(r.Context(), len(c.Arms), len(c.Segments))
		}
		for _, ev := range tl.Events {
			s.metrics.RecordFallback(r.Context(), ev.Reason)
			s.logger.Warn("schematic fallback",
				zap.String("segment_id", ev.SegmentID),
				zap.String("field", ev.Field),
				zap.String("reason", ev.Reason))
		}
	}

	s.render(w, "schematic", data)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.render(w, "validate", templates.ValidatePage{
		Page:   page(r, "Validation", "validate"),
		Issues: validate.Document(s.doc),
	})
}
