// Package validate performs the semantic checks the typed schema cannot
// express: id agreement, reference resolution, enum membership and staged
// file digests. Findings are advisory; nothing here mutates the document.
package validate

import (
	"fmt"
	"regexp"
	"sort"
	"time"

	"github.com/emiliopalmerini/pacetrack/internal/campaign"
	"github.com/emiliopalmerini/pacetrack/internal/schematic"
)

// Issue is one validation finding, addressed by a JSONPath style path.
type Issue struct {
	Path    string
	Message string
}

func (i Issue) String() string { return i.Path + ": " + i.Message }

var sha256Re = regexp.MustCompile(`^[0-9a-f]{64}$`)

// parse results only matter for their source tag here, so any fixed
// reference instant does.
var validateRef = time.Unix(0, 0).UTC()

// Document checks doc and returns its findings sorted by path then
// message. An empty result means the document is valid.
func Document(doc *campaign.Document) []Issue {
	v := &validator{}

	if doc.SchemaVersion == "" {
		v.add("$.schema_version", "schema_version is empty")
	}

	c := &doc.Campaign
	v.checkArms(c)
	v.checkCircuits(c)
	v.checkSegments(c)
	v.checkAnalyses(c)
	v.checkAttachments(c)
	v.checkOntologies(c)

	sort.Slice(v.issues, func(i, j int) bool {
		if v.issues[i].Path != v.issues[j].Path {
			return v.issues[i].Path < v.issues[j].Path
		}
		return v.issues[i].Message < v.issues[j].Message
	})
	return v.issues
}

type validator struct {
	issues []Issue
}

func (v *validator) add(path, format string, args ...any) {
	v.issues = append(v.issues, Issue{Path: path, Message: fmt.Sprintf(format, args...)})
}

func (v *validator) checkArms(c *campaign.Campaign) {
	for _, key := range c.SortedArmIDs() {
		arm := c.Arms[key]
		path := fmt.Sprintf("$.campaign.arms.%s", key)
		if arm == nil {
			v.add(path, "arm entry is null")
			continue
		}
		if arm.ArmID != key {
			v.add(path+".arm_id", "arm_id %q does not match its key %q", arm.ArmID, key)
		}
		for i, tp := range arm.Timepoints {
			tpPath := fmt.Sprintf("%s.timepoints[%d]", path, i)
			if tp.T < 0 {
				v.add(tpPath+".t", "t must not be negative, got %d", tp.T)
			}
			v.checkLagoons(tpPath, tp.Lagoons)
		}
	}
}

func (v *validator) checkLagoons(tpPath string, lagoons map[string]*campaign.Lagoon) {
	keys := make([]string, 0, len(lagoons))
	for k := range lagoons {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		lagoon := lagoons[key]
		path := fmt.Sprintf("%s.lagoons.%s", tpPath, key)
		if lagoon == nil {
			v.add(path, "lagoon entry is null")
			continue
		}
		if lagoon.LagoonID != key {
			v.add(path+".lagoon_id", "lagoon_id %q does not match its key %q", lagoon.LagoonID, key)
		}

		cond := lagoon.Conditions
		switch cond.Mode {
		case campaign.ModePACE:
			if cond.DilutionRate == nil {
				v.add(path+".conditions", "PACE lagoons need dilution_rate_vol_per_hr")
			}
		case campaign.ModePANCE:
			if cond.PassageFraction == nil {
				v.add(path+".conditions", "PANCE lagoons need passage_fraction")
			}
		default:
			v.add(path+".conditions.mode", "mode must be PACE or PANCE, got %q", cond.Mode)
		}

		if m := lagoon.Measurements.PhageTiter.Method; m != "" && !contains(campaign.TiterMethods(), m) {
			v.add(path+".measurements.phage_titer_pfu_per_ml.method", "unknown titer method %q", m)
		}

		for si, sample := range lagoon.Samples {
			sPath := fmt.Sprintf("%s.samples[%d]", path, si)
			if sample.SampleID == "" {
				v.add(sPath+".sample_id", "sample_id is empty")
			}
			if sample.SampleType != "" && !contains(campaign.SampleTypes(), sample.SampleType) {
				v.add(sPath+".sample_type", "unknown sample type %q", sample.SampleType)
			}
			for li, lib := range sample.LibraryPreps {
				for ri, run := range lib.SequencingRuns {
					for fi, fq := range run.Fastq {
						fqPath := fmt.Sprintf("%s.library_preps[%d].sequencing_runs[%d].fastq[%d]", sPath, li, ri, fi)
						v.checkStagedFile(fqPath, fq.URI, fq.SHA256, fq.SizeBytes)
					}
				}
			}
		}
	}
}

func (v *validator) checkCircuits(c *campaign.Campaign) {
	for _, key := range c.SortedCircuitIDs() {
		circuit := c.SelectionCircuits[key]
		path := fmt.Sprintf("$.campaign.selection_circuits.%s", key)
		if circuit == nil {
			v.add(path, "circuit entry is null")
			continue
		}
		if circuit.ID != key {
			v.add(path+".id", "id %q does not match its key %q", circuit.ID, key)
		}
		if circuit.Type != "" && !contains(campaign.CircuitTypes(), circuit.Type) {
			v.add(path+".type", "unknown circuit type %q", circuit.Type)
		}
		if circuit.ReporterGene != "" && !contains(campaign.ReporterGenes(), circuit.ReporterGene) {
			v.add(path+".reporter_gene", "unknown reporter gene %q", circuit.ReporterGene)
		}
	}
}

func (v *validator) checkSegments(c *campaign.Campaign) {
	seen := map[string]bool{}
	for i, seg := range c.Segments {
		path := fmt.Sprintf("$.campaign.segments[%d]", i)

		if seg.SegmentID == "" {
			v.add(path+".segment_id", "segment_id is empty")
		} else if seen[seg.SegmentID] {
			v.add(path+".segment_id", "duplicate segment_id %q", seg.SegmentID)
		} else {
			seen[seg.SegmentID] = true
		}

		if !contains(campaign.Modes(), seg.Mode) {
			v.add(path+".mode", "mode must be PACE or PANCE, got %q", seg.Mode)
		}

		for j, armID := range seg.AppliedToArms {
			if _, ok := c.Arms[armID]; !ok {
				v.add(fmt.Sprintf("%s.applied_to_arms[%d]", path, j), "unknown arm %q", armID)
			}
		}

		circuitID := seg.SelectionDesign.SelectionCircuitID
		if circuitID == "" {
			v.add(path+".selection_design.selection_circuit_id", "selection_circuit_id is empty")
		} else if _, ok := c.SelectionCircuits[circuitID]; !ok {
			v.add(path+".selection_design.selection_circuit_id", "unknown selection circuit %q", circuitID)
		}

		v.checkTime(path+".start_time", seg.StartTime)
		if seg.EndTime != nil {
			v.checkTime(path+".end_time", *seg.EndTime)
		}
	}
}

// checkTime accepts everything the schematic's time parser resolves to a
// value: timestamps and bare numbers. Empty is allowed, it renders as 0.
func (v *validator) checkTime(path, value string) {
	if value == "" {
		return
	}
	if r := schematic.ParseHours(value, validateRef); r.Source == schematic.SourceZeroFallback {
		v.add(path, "%q is neither an ISO 8601 timestamp nor a bare number", value)
	}
}

func (v *validator) checkAnalyses(c *campaign.Campaign) {
	for i, an := range c.Analyses {
		path := fmt.Sprintf("$.campaign.analyses[%d]", i)
		if an.AnalysisID == "" {
			v.add(path+".analysis_id", "analysis_id is empty")
		}
		if len(an.Inputs) == 0 {
			v.add(path+".inputs", "analyses need at least one input")
		}
		outputs := map[string][]campaign.StagedFile{
			"alignments":          an.Outputs.Alignments,
			"variant_tables":      an.Outputs.VariantTables,
			"consensus_sequences": an.Outputs.ConsensusSequences,
			"selection_scores":    an.Outputs.SelectionScores,
		}
		for name, files := range outputs {
			for j, f := range files {
				v.checkStagedFile(fmt.Sprintf("%s.outputs.%s[%d]", path, name, j), f.URI, f.SHA256, f.SizeBytes)
			}
		}
	}
}

func (v *validator) checkAttachments(c *campaign.Campaign) {
	for i, att := range c.Attachments {
		path := fmt.Sprintf("$.campaign.attachments[%d]", i)
		v.checkStagedFile(path, att.URI, att.SHA256, att.SizeBytes)
	}
}

func (v *validator) checkStagedFile(path, uri, sha string, size int64) {
	if uri == "" {
		v.add(path+".uri", "uri is empty")
	}
	if !sha256Re.MatchString(sha) {
		v.add(path+".sha256", "%q is not a hex sha256 digest", sha)
	}
	if size < 0 {
		v.add(path+".size_bytes", "size_bytes must not be negative, got %d", size)
	}
}

func (v *validator) checkOntologies(c *campaign.Campaign) {
	for key := range c.Ontologies {
		if key == "" {
			v.add("$.campaign.ontologies", "ontology key is empty")
		}
	}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
