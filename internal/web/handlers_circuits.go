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

func (s *Server) handleCircuits(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &s.doc.Campaign
	circuits := make([]*campaign.SelectionCircuit, 0, len(c.SelectionCircuits))
	for _, id := range c.SortedCircuitIDs() {
		circuits = append(circuits, c.SelectionCircuits[id])
	}

	s.render(w, "circuits", templates.CircuitsPage{
		Page:      page(r, "Circuits", "circuits"),
		Circuits:  circuits,
		Types:     campaign.CircuitTypes(),
		Reporters: campaign.ReporterGenes(),
	})
}

func (s *Server) handleCircuitAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectErr(w, r, "/circuits", "could not read form: "+err.Error())
		return
	}

	id := strings.TrimSpace(r.FormValue("id"))
	if id == "" {
		id = "sel-" + uuid.New().String()[:8]
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := &s.doc.Campaign
	if _, exists := c.SelectionCircuits[id]; exists {
		redirectErr(w, r, "/circuits", fmt.Sprintf("circuit %q already exists", id))
		return
	}

	c.SelectionCircuits[id] = &campaign.SelectionCircuit{
		ID:                id,
		Type:              r.FormValue("type"),
		APDetails:         strings.TrimSpace(r.FormValue("ap_details")),
		CPDetails:         strings.TrimSpace(r.FormValue("cp_details")),
		ReporterGene:      r.FormValue("reporter_gene"),
		NegativeSelection: strings.TrimSpace(r.FormValue("negative_selection")),
		SteppingStones:    splitCSV(r.FormValue("stepping_stones")),
		Version:           strings.TrimSpace(r.FormValue("version")),
	}

	s.logger.Info("added selection circuit", zap.String("circuit_id", id))
	redirectOK(w, r, "/circuits", fmt.Sprintf("Added circuit %s", id))
}
