package web

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/emiliopalmerini/pacetrack/internal/campaign"
	"github.com/emiliopalmerini/pacetrack/internal/web/templates"
)

func (s *Server) handleAnalyses(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.render(w, "analyses", templates.AnalysesPage{
		Page:     page(r, "Analyses", "analyses"),
		Analyses: s.doc.Campaign.Analyses,
	})
}

// stageUploads copies every file submitted under the given field into the
// attachment store and returns the staged records in submission order.
func (s *Server) stageUploads(r *http.Request, kind, field string) ([]campaign.StagedFile, error) {
	staged := []campaign.StagedFile{}
	if r.MultipartForm == nil {
		return staged, nil
	}
	for _, header := range r.MultipartForm.File[field] {
		file, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open upload %s: %w", header.Filename, err)
		}
		sf, err := s.files.Stage(r.Context(), kind, header.Filename, file)
		_ = file.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to stage %s: %w", header.Filename, err)
		}
		staged = append(staged, sf)
	}
	return staged, nil
}

func (s *Server) handleAnalysisAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(64 << 20); err != nil {
		redirectErr(w, r, "/analyses", "could not read form: "+err.Error())
		return
	}

	id := strings.TrimSpace(r.FormValue("analysis_id"))
	if id == "" {
		id = "an-" + uuid.New().String()[:8]
	}

	params := map[string]string{}
	for _, line := range splitLines(r.FormValue("params")) {
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			redirectErr(w, r, "/analyses", fmt.Sprintf("param %q is not key=value", line))
			return
		}
		params[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	var outputs campaign.AnalysisOutputs
	buckets := []struct {
		field string
		dest  *[]campaign.StagedFile
	}{
		{"alignments", &outputs.Alignments},
		{"variant_tables", &outputs.VariantTables},
		{"consensus_sequences", &outputs.ConsensusSequences},
		{"selection_scores", &outputs.SelectionScores},
	}
	for _, b := range buckets {
		staged, err := s.stageUploads(r, "attached_outputs", b.field)
		if err != nil {
			redirectErr(w, r, "/analyses", err.Error())
			return
		}
		*b.dest = staged
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := &s.doc.Campaign
	for _, a := range c.Analyses {
		if a.AnalysisID == id {
			redirectErr(w, r, "/analyses", fmt.Sprintf("analysis %q already exists", id))
			return
		}
	}

	c.Analyses = append(c.Analyses, campaign.Analysis{
		AnalysisID: id,
		PipelineID: strings.TrimSpace(r.FormValue("pipeline_id")),
		CodeHash:   strings.TrimSpace(r.FormValue("code_hash")),
		Env:        strings.TrimSpace(r.FormValue("env")),
		RefSeqID:   strings.TrimSpace(r.FormValue("ref_seq_id")),
		Params:     params,
		Inputs:     splitCSV(r.FormValue("inputs")),
		Outputs:    outputs,
		Provenance: campaign.Provenance{
			Who:  strings.TrimSpace(r.FormValue("who")),
			When: nowISO(),
		},
		Notes: strings.TrimSpace(r.FormValue("notes")),
	})

	s.logger.Info("added analysis", zap.String("analysis_id", id), zap.String("pipeline_id", r.FormValue("pipeline_id")))
	redirectOK(w, r, "/analyses", fmt.Sprintf("Added analysis %s", id))
}

func (s *Server) handleAttachments(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.render(w, "attachments", templates.AttachmentsPage{
		Page:        page(r, "Attachments", "attachments"),
		Attachments: s.doc.Campaign.Attachments,
	})
}

func (s *Server) handleAttachmentAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(64 << 20); err != nil {
		redirectErr(w, r, "/attachments", "could not read form: "+err.Error())
		return
	}

	staged, err := s.stageUploads(r, "attachments", "file")
	if err != nil {
		redirectErr(w, r, "/attachments", err.Error())
		return
	}
	if len(staged) == 0 {
		redirectErr(w, r, "/attachments", "choose at least one file to attach")
		return
	}
	description := strings.TrimSpace(r.FormValue("description"))

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sf := range staged {
		s.doc.Campaign.Attachments = append(s.doc.Campaign.Attachments, campaign.Attachment{
			URI:         sf.URI,
			SHA256:      sf.SHA256,
			SizeBytes:   sf.SizeBytes,
			Description: description,
		})
	}

	s.logger.Info("added attachments", zap.Int("count", len(staged)))
	redirectOK(w, r, "/attachments", fmt.Sprintf("Attached %d file(s)", len(staged)))
}

func (s *Server) handleOntologies(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &s.doc.Campaign
	keys := make([]string, 0, len(c.Ontologies))
	for k := range c.Ontologies {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]templates.OntologyRow, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, templates.OntologyRow{Key: k, Terms: c.Ontologies[k]})
	}

	s.render(w, "ontologies", templates.OntologiesPage{
		Page: page(r, "Ontologies", "ontologies"),
		Rows: rows,
	})
}

func (s *Server) handleOntologySet(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectErr(w, r, "/ontologies", "could not read form: "+err.Error())
		return
	}

	key := strings.TrimSpace(r.FormValue("key"))
	if key == "" {
		redirectErr(w, r, "/ontologies", "ontology key must not be empty")
		return
	}
	terms := splitLines(r.FormValue("terms"))

	s.mu.Lock()
	defer s.mu.Unlock()

	c := &s.doc.Campaign
	if len(terms) == 0 {
		delete(c.Ontologies, key)
		redirectOK(w, r, "/ontologies", fmt.Sprintf("Cleared %s", key))
		return
	}
	c.Ontologies[key] = terms

	s.logger.Info("set ontology terms", zap.String("key", key), zap.Int("terms", len(terms)))
	redirectOK(w, r, "/ontologies", fmt.Sprintf("Set %d term(s) for %s", len(terms), key))
}
