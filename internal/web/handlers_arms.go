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

func (s *Server) sortedArms() []*campaign.Arm {
	c := &s.doc.Campaign
	arms := make([]*campaign.Arm, 0, len(c.Arms))
	for _, id := range c.SortedArmIDs() {
		arms = append(arms, c.Arms[id])
	}
	return arms
}

func (s *Server) handleArms(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.render(w, "arms", templates.ArmsPage{
		Page: page(r, "Arms", "arms"),
		Arms: s.sortedArms(),
	})
}

func (s *Server) handleArmAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectErr(w, r, "/arms", "could not read form: "+err.Error())
		return
	}

	id := strings.TrimSpace(r.FormValue("arm_id"))
	if id == "" {
		id = "arm-" + uuid.New().String()[:8]
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := &s.doc.Campaign
	if _, exists := c.Arms[id]; exists {
		redirectErr(w, r, "/arms", fmt.Sprintf("arm %q already exists", id))
		return
	}

	c.Arms[id] = &campaign.Arm{
		ArmID:       id,
		Label:       strings.TrimSpace(r.FormValue("label")),
		Description: strings.TrimSpace(r.FormValue("description")),
		Status:      campaign.StatusActive,
		Timepoints:  []campaign.Timepoint{},
	}

	s.logger.Info("added arm", zap.String("arm_id", id))
	redirectOK(w, r, "/arms", fmt.Sprintf("Added arm %s", id))
}

func (s *Server) handleTimepointAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectErr(w, r, "/arms", "could not read form: "+err.Error())
		return
	}

	armID := r.FormValue("arm_id")
	t := formInt(r, "t")

	s.mu.Lock()
	defer s.mu.Unlock()

	arm, ok := s.doc.Campaign.Arms[armID]
	if !ok {
		redirectErr(w, r, "/arms", fmt.Sprintf("unknown arm %q", armID))
		return
	}
	for _, tp := range arm.Timepoints {
		if tp.T == t {
			redirectErr(w, r, "/arms", fmt.Sprintf("arm %s already has a timepoint at t=%d", armID, t))
			return
		}
	}

	timestamp := strings.TrimSpace(r.FormValue("timestamp"))
	if timestamp == "" {
		timestamp = nowISO()
	}

	arm.Timepoints = append(arm.Timepoints, campaign.Timepoint{
		T:            t,
		Timestamp:    timestamp,
		GlobalEvents: splitCSV(r.FormValue("global_events")),
		Lagoons:      map[string]*campaign.Lagoon{},
	})

	s.logger.Info("added timepoint", zap.String("arm_id", armID), zap.Int("t", t))
	redirectOK(w, r, "/arms", fmt.Sprintf("Added timepoint t=%d to %s", t, armID))
}
