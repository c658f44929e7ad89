package validate

import (
	"strings"
	"testing"
	"time"

	"github.com/emiliopalmerini/pacetrack/internal/campaign"
)

var testNow = time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)

func TestDocument_EmptyDocumentIsValid(t *testing.T) {
	doc := campaign.NewEmpty(testNow)

	issues := Document(doc)

	assertEqual(t, "issue count", 0, len(issues))
}

func TestDocument_SampleDocumentIsValid(t *testing.T) {
	doc := campaign.NewSample(testNow)

	issues := Document(doc)

	for _, issue := range issues {
		t.Errorf("unexpected issue: %s", issue)
	}
}

func TestDocument_MissingSchemaVersion(t *testing.T) {
	doc := campaign.NewEmpty(testNow)
	doc.SchemaVersion = ""

	issues := Document(doc)

	assertHasIssue(t, issues, "$.schema_version", "schema_version is empty")
}

func TestDocument_ArmKeyMismatch(t *testing.T) {
	doc := campaign.NewEmpty(testNow)
	doc.Campaign.Arms["arm-a"] = &campaign.Arm{ArmID: "arm-b", Status: campaign.StatusActive}

	issues := Document(doc)

	assertHasIssue(t, issues, "$.campaign.arms.arm-a.arm_id", `arm_id "arm-b" does not match its key "arm-a"`)
}

func TestDocument_NegativeTimepoint(t *testing.T) {
	doc := campaign.NewEmpty(testNow)
	doc.Campaign.Arms["arm-a"] = &campaign.Arm{
		ArmID:      "arm-a",
		Timepoints: []campaign.Timepoint{{T: -4}},
	}

	issues := Document(doc)

	assertHasIssue(t, issues, "$.campaign.arms.arm-a.timepoints[0].t", "t must not be negative, got -4")
}

func TestDocument_LagoonChecks(t *testing.T) {
	rate := 1.5
	tests := []struct {
		name     string
		lagoon   *campaign.Lagoon
		wantPath string
		wantMsg  string
	}{
		{
			name:     "key mismatch",
			lagoon:   &campaign.Lagoon{LagoonID: "lg-2", Conditions: campaign.Conditions{Mode: campaign.ModePACE, DilutionRate: &rate}},
			wantPath: "$.campaign.arms.arm-a.timepoints[0].lagoons.lg-1.lagoon_id",
			wantMsg:  `lagoon_id "lg-2" does not match its key "lg-1"`,
		},
		{
			name:     "pace without dilution rate",
			lagoon:   &campaign.Lagoon{LagoonID: "lg-1", Conditions: campaign.Conditions{Mode: campaign.ModePACE}},
			wantPath: "$.campaign.arms.arm-a.timepoints[0].lagoons.lg-1.conditions",
			wantMsg:  "PACE lagoons need dilution_rate_vol_per_hr",
		},
		{
			name:     "pance without passage fraction",
			lagoon:   &campaign.Lagoon{LagoonID: "lg-1", Conditions: campaign.Conditions{Mode: campaign.ModePANCE}},
			wantPath: "$.campaign.arms.arm-a.timepoints[0].lagoons.lg-1.conditions",
			wantMsg:  "PANCE lagoons need passage_fraction",
		},
		{
			name:     "unknown mode",
			lagoon:   &campaign.Lagoon{LagoonID: "lg-1", Conditions: campaign.Conditions{Mode: "continuous"}},
			wantPath: "$.campaign.arms.arm-a.timepoints[0].lagoons.lg-1.conditions.mode",
			wantMsg:  `mode must be PACE or PANCE, got "continuous"`,
		},
		{
			name: "unknown titer method",
			lagoon: &campaign.Lagoon{
				LagoonID:     "lg-1",
				Conditions:   campaign.Conditions{Mode: campaign.ModePACE, DilutionRate: &rate},
				Measurements: campaign.Measurements{PhageTiter: campaign.Titer{Value: 1e9, Method: "guesswork"}},
			},
			wantPath: "$.campaign.arms.arm-a.timepoints[0].lagoons.lg-1.measurements.phage_titer_pfu_per_ml.method",
			wantMsg:  `unknown titer method "guesswork"`,
		},
		{
			name: "unknown sample type",
			lagoon: &campaign.Lagoon{
				LagoonID:   "lg-1",
				Conditions: campaign.Conditions{Mode: campaign.ModePACE, DilutionRate: &rate},
				Samples:    []campaign.Sample{{SampleID: "s1", SampleType: "glitter"}},
			},
			wantPath: "$.campaign.arms.arm-a.timepoints[0].lagoons.lg-1.samples[0].sample_type",
			wantMsg:  `unknown sample type "glitter"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := campaign.NewEmpty(testNow)
			doc.Campaign.Arms["arm-a"] = &campaign.Arm{
				ArmID: "arm-a",
				Timepoints: []campaign.Timepoint{{
					T:       0,
					Lagoons: map[string]*campaign.Lagoon{"lg-1": tt.lagoon},
				}},
			}

			issues := Document(doc)

			assertHasIssue(t, issues, tt.wantPath, tt.wantMsg)
		})
	}
}

func TestDocument_SegmentChecks(t *testing.T) {
	end := "not-a-time"
	doc := campaign.NewEmpty(testNow)
	doc.Campaign.Segments = []campaign.Segment{
		{
			SegmentID:     "seg-1",
			Mode:          "turbo",
			AppliedToArms: []string{"arm-missing"},
			StartTime:     "whenever",
			EndTime:       &end,
			SelectionDesign: campaign.SelectionDesign{
				SelectionCircuitID: "sel-missing",
			},
		},
		{
			SegmentID: "seg-1",
			Mode:      campaign.ModePACE,
			StartTime: "0",
			SelectionDesign: campaign.SelectionDesign{
				SelectionCircuitID: "",
			},
		},
	}

	issues := Document(doc)

	assertHasIssue(t, issues, "$.campaign.segments[0].mode", `mode must be PACE or PANCE, got "turbo"`)
	assertHasIssue(t, issues, "$.campaign.segments[0].applied_to_arms[0]", `unknown arm "arm-missing"`)
	assertHasIssue(t, issues, "$.campaign.segments[0].selection_design.selection_circuit_id", `unknown selection circuit "sel-missing"`)
	assertHasIssue(t, issues, "$.campaign.segments[0].start_time", `"whenever" is neither an ISO 8601 timestamp nor a bare number`)
	assertHasIssue(t, issues, "$.campaign.segments[0].end_time", `"not-a-time" is neither an ISO 8601 timestamp nor a bare number`)
	assertHasIssue(t, issues, "$.campaign.segments[1].segment_id", `duplicate segment_id "seg-1"`)
	assertHasIssue(t, issues, "$.campaign.segments[1].selection_design.selection_circuit_id", "selection_circuit_id is empty")
}

func TestDocument_NumericSegmentTimesAreAccepted(t *testing.T) {
	end := "-12.5"
	doc := campaign.NewEmpty(testNow)
	doc.Campaign.Arms["arm-a"] = &campaign.Arm{ArmID: "arm-a"}
	doc.Campaign.SelectionCircuits["sel-1"] = &campaign.SelectionCircuit{ID: "sel-1", Type: "RNAP_promoter"}
	doc.Campaign.Segments = []campaign.Segment{{
		SegmentID:       "seg-1",
		Mode:            campaign.ModePACE,
		AppliedToArms:   []string{"arm-a"},
		StartTime:       "48",
		EndTime:         &end,
		SelectionDesign: campaign.SelectionDesign{SelectionCircuitID: "sel-1"},
	}}

	issues := Document(doc)

	assertEqual(t, "issue count", 0, len(issues))
}

func TestDocument_CircuitChecks(t *testing.T) {
	doc := campaign.NewEmpty(testNow)
	doc.Campaign.SelectionCircuits["sel-1"] = &campaign.SelectionCircuit{
		ID:           "sel-other",
		Type:         "three_hybrid",
		ReporterGene: "gX",
	}

	issues := Document(doc)

	assertHasIssue(t, issues, "$.campaign.selection_circuits.sel-1.id", `id "sel-other" does not match its key "sel-1"`)
	assertHasIssue(t, issues, "$.campaign.selection_circuits.sel-1.type", `unknown circuit type "three_hybrid"`)
	assertHasIssue(t, issues, "$.campaign.selection_circuits.sel-1.reporter_gene", `unknown reporter gene "gX"`)
}

func TestDocument_AttachmentDigests(t *testing.T) {
	doc := campaign.NewEmpty(testNow)
	doc.Campaign.Attachments = []campaign.Attachment{{
		URI:       "",
		SHA256:    "not-a-digest",
		SizeBytes: -1,
	}}

	issues := Document(doc)

	assertHasIssue(t, issues, "$.campaign.attachments[0].uri", "uri is empty")
	assertHasIssue(t, issues, "$.campaign.attachments[0].sha256", `"not-a-digest" is not a hex sha256 digest`)
	assertHasIssue(t, issues, "$.campaign.attachments[0].size_bytes", "size_bytes must not be negative, got -1")
}

func TestDocument_AnalysisChecks(t *testing.T) {
	doc := campaign.NewEmpty(testNow)
	doc.Campaign.Analyses = []campaign.Analysis{{
		AnalysisID: "",
		Outputs: campaign.AnalysisOutputs{
			VariantTables: []campaign.StagedFile{{URI: "file:///tmp/v.tsv", SHA256: "nope", SizeBytes: 10}},
		},
	}}

	issues := Document(doc)

	assertHasIssue(t, issues, "$.campaign.analyses[0].analysis_id", "analysis_id is empty")
	assertHasIssue(t, issues, "$.campaign.analyses[0].inputs", "analyses need at least one input")
	assertHasIssue(t, issues, "$.campaign.analyses[0].outputs.variant_tables[0].sha256", `"nope" is not a hex sha256 digest`)
}

func TestDocument_IssuesAreSortedByPath(t *testing.T) {
	doc := campaign.NewEmpty(testNow)
	doc.SchemaVersion = ""
	doc.Campaign.Arms["arm-z"] = &campaign.Arm{ArmID: "wrong"}
	doc.Campaign.Attachments = []campaign.Attachment{{URI: "file:///x", SHA256: "bad", SizeBytes: 1}}

	issues := Document(doc)

	for i := 1; i < len(issues); i++ {
		if issues[i-1].Path > issues[i].Path {
			t.Errorf("issues out of order: %q before %q", issues[i-1].Path, issues[i].Path)
		}
	}
	if len(issues) == 0 || issues[len(issues)-1].Path != "$.schema_version" {
		t.Errorf("expected $.schema_version to sort last, got %v", issues)
	}
}

func assertHasIssue(t *testing.T, issues []Issue, path, message string) {
	t.Helper()
	for _, issue := range issues {
		if issue.Path == path && issue.Message == message {
			return
		}
	}
	var got strings.Builder
	for _, issue := range issues {
		got.WriteString("\n  ")
		got.WriteString(issue.String())
	}
	t.Errorf("missing issue %s: %s\ngot:%s", path, message, got.String())
}

func assertEqual[T comparable](t *testing.T, name string, expected, actual T) {
	t.Helper()
	if expected != actual {
		t.Errorf("expected %s %v, got %v", name, expected, actual)
	}
}
