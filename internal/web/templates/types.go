package templates

import (
	"html/template"

	"github.com/emiliopalmerini/pacetrack/internal/campaign"
	"github.com/emiliopalmerini/pacetrack/internal/schematic"
	"github.com/emiliopalmerini/pacetrack/internal/validate"
)

// Page carries what the layout needs on every render: the nav state and
// the flash banner from the previous redirect.
type Page struct {
	Title  string
	Active string
	Flash  string
	Error  string
}

type CampaignPage struct {
	Page
	C          *campaign.Campaign
	ArmCount   int
	IssueCount int
}

type CircuitsPage struct {
	Page
	Circuits  []*campaign.SelectionCircuit
	Types     []string
	Reporters []string
}

type ArmsPage struct {
	Page
	Arms []*campaign.Arm
}

// LagoonRow flattens the arm/timepoint nesting for the lagoons table.
type LagoonRow struct {
	ArmID  string
	T      int
	Lagoon *campaign.Lagoon
}

type LagoonsPage struct {
	Page
	Rows        []LagoonRow
	Arms        []*campaign.Arm
	Modes       []string
	Methods     []string
	SampleTypes []string
}

type SegmentsPage struct {
	Page
	Segments   []campaign.Segment
	ArmIDs     []string
	CircuitIDs []string
	Modes      []string
}

type AnalysesPage struct {
	Page
	Analyses []campaign.Analysis
}

type AttachmentsPage struct {
	Page
	Attachments []campaign.Attachment
}

type OntologyRow struct {
	Key   string
	Terms []string
}

type OntologiesPage struct {
	Page
	Rows []OntologyRow
}

type SchematicPage struct {
	Page
	SVG          template.HTML
	HasScene     bool
	ArmCount     int
	SegmentCount int
	CircuitCount int
	MaxHours     float64
	Fallbacks    []schematic.FallbackEvent
}

type ValidatePage struct {
	Page
	Issues []validate.Issue
}
