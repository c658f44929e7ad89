package web

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/emiliopalmerini/pacetrack/internal/campaign"
	"github.com/emiliopalmerini/pacetrack/internal/web/templates"
)

func (s *Server) handleSegments(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &s.doc.Campaign
	s.render(w, "segments", templates.SegmentsPage{
		Page:       page(r, "Segments", "segments"),
		Segments:   c.Segments,
		ArmIDs:     c.SortedArmIDs(),
		CircuitIDs: c.SortedCircuitIDs(),
		Modes:      campaign.Modes(),
	})
}

func (s *Server) handleSegmentAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectErr(w, r, "/segments", "could not read form: "+err.Error())
		return
	}

	id := strings.TrimSpace(r.FormValue("segment_id"))
	if id == "" {
		id = "seg-" + uuid.New().String()[:8]
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := &s.doc.Campaign
	for _, seg := range c.Segments {
		if seg.SegmentID == id {
			redirectErr(w, r, "/segments", fmt.Sprintf("segment %q already exists", id))
			return
		}
	}

	arms := []string{}
	for _, armID := range r.Form["applied_to_arms"] {
		if armID = strings.TrimSpace(armID); armID != "" {
			arms = append(arms, armID)
		}
	}

	start := strings.TrimSpace(r.FormValue("start_time"))
	if start == "" {
		start = nowISO()
	}
	var end *string
	if v := strings.TrimSpace(r.FormValue("end_time")); v != "" {
		end = &v
	}

	c.Segments = append(c.Segments, campaign.Segment{
		SegmentID:     id,
		Mode:          r.FormValue("mode"),
		AppliedToArms: arms,
		StartTime:     start,
		EndTime:       end,
		SelectionDesign: campaign.SelectionDesign{
			SelectionCircuitID: r.FormValue("selection_circuit_id"),
			SteppingStones:     splitCSV(r.FormValue("stepping_stones")),
		},
	})

	s.logger.Info("added segment",
		zap.String("segment_id", id),
		zap.String("mode", r.FormValue("mode")),
		zap.Int("arms", len(arms)))
	redirectOK(w, r, "/segments", fmt.Sprintf("Added segment %s", id))
}
