package web

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/emiliopalmerini/pacetrack/internal/campaign"
	"github.com/emiliopalmerini/pacetrack/internal/docfile"
	"github.com/emiliopalmerini/pacetrack/internal/validate"
	"github.com/emiliopalmerini/pacetrack/internal/web/templates"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/campaign", http.StatusFound)
}

// page builds the layout data shared by every tab, picking up the flash
// params of the preceding redirect.
func page(r *http.Request, title, active string) templates.Page {
	return templates.Page{
		Title:  title,
		Active: active,
		Flash:  r.URL.Query().Get("msg"),
		Error:  r.URL.Query().Get("err"),
	}
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Render(w, name, data); err != nil {
		s.logger.Error("failed to render page", zap.String("page", name), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// redirectOK and redirectErr implement the post/redirect/get flow: every
// form submission lands back on its page with a flash banner.
func redirectOK(w http.ResponseWriter, r *http.Request, path, msg string) {
	http.Redirect(w, r, path+"?msg="+url.QueryEscape(msg), http.StatusSeeOther)
}

func redirectErr(w http.ResponseWriter, r *http.Request, path, msg string) {
	http.Redirect(w, r, path+"?err="+url.QueryEscape(msg), http.StatusSeeOther)
}

// splitCSV splits a comma separated form value, dropping empty entries.
func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// splitLines splits a textarea value into trimmed non-empty lines.
func splitLines(s string) []string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func formFloat(r *http.Request, name string) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(r.FormValue(name)), 64)
	return v
}

// formFloatPtr returns nil for a blank field, so optional numbers stay
// absent instead of becoming zero.
func formFloatPtr(r *http.Request, name string) *float64 {
	raw := strings.TrimSpace(r.FormValue(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func formInt(r *http.Request, name string) int {
	v, _ := strconv.Atoi(strings.TrimSpace(r.FormValue(name)))
	return v
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func (s *Server) handleCampaign(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.render(w, "campaign", templates.CampaignPage{
		Page:       page(r, "Campaign", "campaign"),
		C:          &s.doc.Campaign,
		ArmCount:   len(s.doc.Campaign.Arms),
		IssueCount: len(validate.Document(s.doc)),
	})
}

func (s *Server) handleCampaignSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectErr(w, r, "/campaign", "could not read form: "+err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := &s.doc.Campaign
	c.CampaignID = strings.TrimSpace(r.FormValue("campaign_id"))
	c.Title = strings.TrimSpace(r.FormValue("title"))
	c.CreatedBy = strings.TrimSpace(r.FormValue("created_by"))
	c.Notes = r.FormValue("notes")

	c.StartingProtein.Name = strings.TrimSpace(r.FormValue("protein_name"))
	c.StartingProtein.DNASeq = strings.TrimSpace(r.FormValue("dna_seq"))
	c.StartingProtein.AASeq = strings.TrimSpace(r.FormValue("aa_seq"))
	c.StartingProtein.VectorContext = strings.TrimSpace(r.FormValue("vector_context"))
	c.StartingProtein.Features = splitCSV(r.FormValue("features"))

	c.HostSystem.Strain = strings.TrimSpace(r.FormValue("strain"))
	c.HostSystem.Genotype = strings.TrimSpace(r.FormValue("genotype"))
	c.HostSystem.FPrimeStatus = strings.TrimSpace(r.FormValue("f_prime_status"))
	c.HostSystem.Resistances = splitCSV(r.FormValue("resistances"))
	c.HostSystem.Plasmids.AP = strings.TrimSpace(r.FormValue("plasmid_ap"))
	c.HostSystem.Plasmids.CP = strings.TrimSpace(r.FormValue("plasmid_cp"))
	c.HostSystem.Plasmids.MP = strings.TrimSpace(r.FormValue("plasmid_mp"))
	c.HostSystem.Plasmids.DP = strings.TrimSpace(r.FormValue("plasmid_dp"))

	s.logger.Info("saved campaign metadata", zap.String("campaign_id", c.CampaignID))
	redirectOK(w, r, "/campaign", "Campaign saved")
}

func (s *Server) handleSampleLoad(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = campaign.NewSample(time.Now())
	s.logger.Info("loaded sample campaign",
		zap.Int("arms", len(s.doc.Campaign.Arms)),
		zap.Int("segments", len(s.doc.Campaign.Segments)))
	redirectOK(w, r, "/campaign", "Sample campaign loaded")
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = campaign.NewEmpty(time.Now())
	s.logger.Info("reset document")
	redirectOK(w, r, "/campaign", "Document reset")
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	if s.docPath == "" {
		redirectErr(w, r, "/campaign", "no document file attached to this session, use the export links instead")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Save(r.Context(), s.docPath, s.doc); err != nil {
		s.logger.Error("failed to save document", zap.String("path", s.docPath), zap.Error(err))
		redirectErr(w, r, "/campaign", "could not save: "+err.Error())
		return
	}

	format := docfile.FormatForPath(s.docPath)
	if format == "" {
		format = docfile.FormatJSON
	}
	s.metrics.RecordDocumentSave(r.Context(), format)
	s.logger.Info("saved document", zap.String("path", s.docPath))
	redirectOK(w, r, "/campaign", "Saved to "+s.docPath)
}
