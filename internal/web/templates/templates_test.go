package templates

import (
	"bytes"
	"html/template"
	"strings"
	"testing"
	"time"

	"github.com/emiliopalmerini/pacetrack/internal/campaign"
	"github.com/emiliopalmerini/pacetrack/internal/schematic"
	"github.com/emiliopalmerini/pacetrack/internal/validate"
)

var testNow = time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)

func samplePages() map[string]any {
	doc := campaign.NewSample(testNow)
	c := &doc.Campaign

	arms := make([]*campaign.Arm, 0, len(c.Arms))
	for _, id := range c.SortedArmIDs() {
		arms = append(arms, c.Arms[id])
	}
	circuits := make([]*campaign.SelectionCircuit, 0, len(c.SelectionCircuits))
	for _, id := range c.SortedCircuitIDs() {
		circuits = append(circuits, c.SelectionCircuits[id])
	}

	return map[string]any{
		"campaign": CampaignPage{
			Page:     Page{Title: "Campaign", Active: "campaign", Flash: "saved"},
			C:        c,
			ArmCount: len(c.Arms),
		},
		"circuits": CircuitsPage{
			Page:      Page{Title: "Circuits", Active: "circuits"},
			Circuits:  circuits,
			Types:     campaign.CircuitTypes(),
			Reporters: campaign.ReporterGenes(),
		},
		"arms": ArmsPage{
			Page: Page{Title: "Arms", Active: "arms"},
			Arms: arms,
		},
		"lagoons": LagoonsPage{
			Page:        Page{Title: "Lagoons", Active: "lagoons"},
			Arms:        arms,
			Modes:       campaign.Modes(),
			Methods:     campaign.TiterMethods(),
			SampleTypes: campaign.SampleTypes(),
		},
		"segments": SegmentsPage{
			Page:       Page{Title: "Segments", Active: "segments"},
			Segments:   c.Segments,
			ArmIDs:     c.SortedArmIDs(),
			CircuitIDs: c.SortedCircuitIDs(),
			Modes:      campaign.Modes(),
		},
		"analyses": AnalysesPage{
			Page: Page{Title: "Analyses", Active: "analyses"},
		},
		"attachments": AttachmentsPage{
			Page: Page{Title: "Attachments", Active: "attachments"},
			Attachments: []campaign.Attachment{
				{URI: "file:///data/attachments/protocol.pdf", SHA256: strings.Repeat("ab", 32), SizeBytes: 2048, Description: "lagoon SOP"},
			},
		},
		"ontologies": OntologiesPage{
			Page: Page{Title: "Ontologies", Active: "ontologies"},
			Rows: []OntologyRow{{Key: "selection_pressure", Terms: []string{"theophylline", "arabinose"}}},
		},
		"schematic": SchematicPage{
			Page:         Page{Title: "Schematic", Active: "schematic"},
			SVG:          template.HTML(`<svg width="10" height="10"></svg>`),
			HasScene:     true,
			ArmCount:     2,
			SegmentCount: 6,
			CircuitCount: 2,
			MaxHours:     144,
			Fallbacks:    []schematic.FallbackEvent{{SegmentID: "seg-x", Field: "end_time", Reason: "default_duration"}},
		},
		"validate": ValidatePage{
			Page:   Page{Title: "Validate", Active: "validate"},
			Issues: []validate.Issue{{Path: "$.campaign.segments[0].mode", Message: `mode must be PACE or PANCE, got "turbo"`}},
		},
	}
}

func TestRender_AllPages(t *testing.T) {
	for name, data := range samplePages() {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Render(&buf, name, data); err != nil {
				t.Fatalf("render failed: %v", err)
			}
			out := buf.String()
			if !strings.Contains(out, "<!DOCTYPE html>") {
				t.Error("expected full page output")
			}
			if !strings.Contains(out, `class="active"`) {
				t.Error("expected the active nav tab to be marked")
			}
		})
	}
}

func TestRender_CampaignPageShowsFormValuesAndFlash(t *testing.T) {
	var buf bytes.Buffer
	data := samplePages()["campaign"]

	if err := Render(&buf, "campaign", data); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		`value="sample-campaign"`,
		"Sample PACE Campaign",
		"S2060",
		`class="flash ok"`,
		"Load sample campaign",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected page to contain %q", want)
		}
	}
}

func TestRender_SchematicEmptyState(t *testing.T) {
	var buf bytes.Buffer
	data := SchematicPage{
		Page:     Page{Title: "Schematic", Active: "schematic"},
		HasScene: false,
	}

	if err := Render(&buf, "schematic", data); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.Contains(buf.String(), "Nothing to draw yet") {
		t.Error("expected the empty state message")
	}
	if strings.Contains(buf.String(), "<svg") {
		t.Error("expected no svg in the empty state")
	}
}

func TestRender_SchematicInlinesSVGUnescaped(t *testing.T) {
	var buf bytes.Buffer
	data := samplePages()["schematic"]

	if err := Render(&buf, "schematic", data); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if !strings.Contains(buf.String(), `<svg width="10"`) {
		t.Error("expected the svg markup to pass through unescaped")
	}
	if !strings.Contains(buf.String(), "spans 144h") {
		t.Error("expected the summary line to show the campaign span")
	}
}

func TestRender_UnknownPage(t *testing.T) {
	var buf bytes.Buffer

	err := Render(&buf, "nonexistent", nil)

	if err == nil {
		t.Fatal("expected an error for an unknown page")
	}
}

func TestRender_SegmentsTableListsSample(t *testing.T) {
	var buf bytes.Buffer
	data := samplePages()["segments"]

	if err := Render(&buf, "segments", data); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "seg-01-t3-init") {
		t.Error("expected the first sample segment to be listed")
	}
	if !strings.Contains(out, "T7/T3") {
		t.Error("expected stepping stones to be listed")
	}
}
