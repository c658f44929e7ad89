package web

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/emiliopalmerini/pacetrack/internal/campaign"
	"github.com/emiliopalmerini/pacetrack/internal/web/templates"
)

func (s *Server) handleLagoons(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &s.doc.Campaign
	var rows []templates.LagoonRow
	for _, armID := range c.SortedArmIDs() {
		arm := c.Arms[armID]
		for i := range arm.Timepoints {
			tp := &arm.Timepoints[i]
			ids := make([]string, 0, len(tp.Lagoons))
			for id := range tp.Lagoons {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			for _, id := range ids {
				rows = append(rows, templates.LagoonRow{ArmID: armID, T: tp.T, Lagoon: tp.Lagoons[id]})
			}
		}
	}

	s.render(w, "lagoons", templates.LagoonsPage{
		Page:        page(r, "Lagoons", "lagoons"),
		Rows:        rows,
		Arms:        s.sortedArms(),
		Modes:       campaign.Modes(),
		Methods:     campaign.TiterMethods(),
		SampleTypes: campaign.SampleTypes(),
	})
}

// findTimepoint returns the arm's timepoint at t, or nil.
func findTimepoint(arm *campaign.Arm, t int) *campaign.Timepoint {
	for i := range arm.Timepoints {
		if arm.Timepoints[i].T == t {
			return &arm.Timepoints[i]
		}
	}
	return nil
}

func findLagoon(c *campaign.Campaign, armID string, t int, lagoonID string) (*campaign.Lagoon, error) {
	arm, ok := c.Arms[armID]
	if !ok {
		return nil, fmt.Errorf("unknown arm %q", armID)
	}
	tp := findTimepoint(arm, t)
	if tp == nil {
		return nil, fmt.Errorf("arm %s has no timepoint at t=%d", armID, t)
	}
	lagoon, ok := tp.Lagoons[lagoonID]
	if !ok || lagoon == nil {
		return nil, fmt.Errorf("unknown lagoon %q at t=%d", lagoonID, t)
	}
	return lagoon, nil
}

func findSample(lagoon *campaign.Lagoon, sampleID string) (*campaign.Sample, error) {
	for i := range lagoon.Samples {
		if lagoon.Samples[i].SampleID == sampleID {
			return &lagoon.Samples[i], nil
		}
	}
	return nil, fmt.Errorf("unknown sample %q", sampleID)
}

func findLibrary(sample *campaign.Sample, libraryID string) (*campaign.LibraryPrep, error) {
	for i := range sample.LibraryPreps {
		if sample.LibraryPreps[i].LibraryID == libraryID {
			return &sample.LibraryPreps[i], nil
		}
	}
	return nil, fmt.Errorf("unknown library %q", libraryID)
}

// parseAntibiotics reads "name:ug_per_ml" pairs from a comma separated value.
func parseAntibiotics(s string) []campaign.Antibiotic {
	out := []campaign.Antibiotic{}
	for _, part := range splitCSV(s) {
		name, conc, _ := strings.Cut(part, ":")
		v, _ := strconv.ParseFloat(strings.TrimSpace(conc), 64)
		out = append(out, campaign.Antibiotic{
			Name:                 strings.TrimSpace(name),
			ConcentrationUgPerML: v,
		})
	}
	return out
}

// parseInducers reads "name:mM" pairs from a comma separated value.
func parseInducers(s string) []campaign.Inducer {
	out := []campaign.Inducer{}
	for _, part := range splitCSV(s) {
		name, conc, _ := strings.Cut(part, ":")
		v, _ := strconv.ParseFloat(strings.TrimSpace(conc), 64)
		out = append(out, campaign.Inducer{
			Name:            strings.TrimSpace(name),
			ConcentrationMM: v,
		})
	}
	return out
}

func (s *Server) handleLagoonAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectErr(w, r, "/lagoons", "could not read form: "+err.Error())
		return
	}

	armID := r.FormValue("arm_id")
	t := formInt(r, "t")
	id := strings.TrimSpace(r.FormValue("lagoon_id"))
	if id == "" {
		id = "lg-" + uuid.New().String()[:8]
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	arm, ok := s.doc.Campaign.Arms[armID]
	if !ok {
		redirectErr(w, r, "/lagoons", fmt.Sprintf("unknown arm %q", armID))
		return
	}
	tp := findTimepoint(arm, t)
	if tp == nil {
		redirectErr(w, r, "/lagoons", fmt.Sprintf("arm %s has no timepoint at t=%d, add it first", armID, t))
		return
	}
	if _, exists := tp.Lagoons[id]; exists {
		redirectErr(w, r, "/lagoons", fmt.Sprintf("lagoon %q already exists at t=%d", id, t))
		return
	}

	tp.Lagoons[id] = &campaign.Lagoon{
		LagoonID:       id,
		ConditionLabel: strings.TrimSpace(r.FormValue("condition_label")),
		MutagenesisOn:  r.FormValue("mutagenesis_on") == "true",
		Conditions: campaign.Conditions{
			Mode:            r.FormValue("mode"),
			VolumeML:        formFloat(r, "volume_ml"),
			TempC:           formFloat(r, "temp_c"),
			Media:           strings.TrimSpace(r.FormValue("media")),
			Antibiotics:     parseAntibiotics(r.FormValue("antibiotics")),
			Inducers:        parseInducers(r.FormValue("inducers")),
			DilutionRate:    formFloatPtr(r, "dilution_rate"),
			PassageFraction: formFloatPtr(r, "passage_fraction"),
		},
		Measurements: campaign.Measurements{
			PhageTiter: campaign.Titer{
				Value:  formFloat(r, "titer_value"),
				Method: r.FormValue("titer_method"),
			},
		},
		Samples: []campaign.Sample{},
	}

	s.logger.Info("added lagoon",
		zap.String("arm_id", armID),
		zap.Int("t", t),
		zap.String("lagoon_id", id))
	redirectOK(w, r, "/lagoons", fmt.Sprintf("Added lagoon %s", id))
}

func (s *Server) handleSampleAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectErr(w, r, "/lagoons", "could not read form: "+err.Error())
		return
	}

	id := strings.TrimSpace(r.FormValue("sample_id"))
	if id == "" {
		id = "smp-" + uuid.New().String()[:8]
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lagoon, err := findLagoon(&s.doc.Campaign, r.FormValue("arm_id"), formInt(r, "t"), r.FormValue("lagoon_id"))
	if err != nil {
		redirectErr(w, r, "/lagoons", err.Error())
		return
	}
	if _, err := findSample(lagoon, id); err == nil {
		redirectErr(w, r, "/lagoons", fmt.Sprintf("sample %q already exists", id))
		return
	}

	lagoon.Samples = append(lagoon.Samples, campaign.Sample{
		SampleID:     id,
		SampleType:   r.FormValue("sample_type"),
		LibraryPreps: []campaign.LibraryPrep{},
	})

	s.logger.Info("added sample", zap.String("lagoon_id", lagoon.LagoonID), zap.String("sample_id", id))
	redirectOK(w, r, "/lagoons", fmt.Sprintf("Added sample %s", id))
}

func (s *Server) handleLibraryAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectErr(w, r, "/lagoons", "could not read form: "+err.Error())
		return
	}

	id := strings.TrimSpace(r.FormValue("library_id"))
	if id == "" {
		id = "lib-" + uuid.New().String()[:8]
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lagoon, err := findLagoon(&s.doc.Campaign, r.FormValue("arm_id"), formInt(r, "t"), r.FormValue("lagoon_id"))
	if err != nil {
		redirectErr(w, r, "/lagoons", err.Error())
		return
	}
	sample, err := findSample(lagoon, r.FormValue("sample_id"))
	if err != nil {
		redirectErr(w, r, "/lagoons", err.Error())
		return
	}
	if _, err := findLibrary(sample, id); err == nil {
		redirectErr(w, r, "/lagoons", fmt.Sprintf("library %q already exists", id))
		return
	}

	sample.LibraryPreps = append(sample.LibraryPreps, campaign.LibraryPrep{
		LibraryID:       id,
		Protocol:        strings.TrimSpace(r.FormValue("protocol")),
		AmpliconTargets: strings.TrimSpace(r.FormValue("amplicon_targets")),
		SequencingRuns:  []campaign.SequencingRun{},
	})

	s.logger.Info("added library prep", zap.String("sample_id", sample.SampleID), zap.String("library_id", id))
	redirectOK(w, r, "/lagoons", fmt.Sprintf("Added library %s", id))
}

func (s *Server) handleRunAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(64 << 20); err != nil {
		redirectErr(w, r, "/lagoons", "could not read form: "+err.Error())
		return
	}

	id := strings.TrimSpace(r.FormValue("run_id"))
	if id == "" {
		id = "run-" + uuid.New().String()[:8]
	}

	// Stage reads before taking the document lock, uploads can be slow.
	var fastq []campaign.FastqFile
	if r.MultipartForm != nil {
		for i, header := range r.MultipartForm.File["fastq"] {
			file, err := header.Open()
			if err != nil {
				redirectErr(w, r, "/lagoons", "could not open upload: "+err.Error())
				return
			}
			staged, err := s.files.Stage(r.Context(), "attached_fastqs", header.Filename, file)
			_ = file.Close()
			if err != nil {
				redirectErr(w, r, "/lagoons", "could not stage fastq: "+err.Error())
				return
			}
			fastq = append(fastq, campaign.FastqFile{
				Read:      fmt.Sprintf("R%d", i+1),
				URI:       staged.URI,
				SHA256:    staged.SHA256,
				SizeBytes: staged.SizeBytes,
			})
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lagoon, err := findLagoon(&s.doc.Campaign, r.FormValue("arm_id"), formInt(r, "t"), r.FormValue("lagoon_id"))
	if err != nil {
		redirectErr(w, r, "/lagoons", err.Error())
		return
	}
	sample, err := findSample(lagoon, r.FormValue("sample_id"))
	if err != nil {
		redirectErr(w, r, "/lagoons", err.Error())
		return
	}
	library, err := findLibrary(sample, r.FormValue("library_id"))
	if err != nil {
		redirectErr(w, r, "/lagoons", err.Error())
		return
	}

	if fastq == nil {
		fastq = []campaign.FastqFile{}
	}
	library.SequencingRuns = append(library.SequencingRuns, campaign.SequencingRun{
		RunID:    id,
		Platform: strings.TrimSpace(r.FormValue("platform")),
		Fastq:    fastq,
	})

	s.logger.Info("added sequencing run",
		zap.String("library_id", library.LibraryID),
		zap.String("run_id", id),
		zap.Int("fastq_files", len(fastq)))
	redirectOK(w, r, "/lagoons", fmt.Sprintf("Added run %s with %d fastq file(s)", id, len(fastq)))
}
