package campaign

import "time"

// NewEmpty returns a blank document with every collection initialized, so
// callers never have to nil-check maps before inserting.
func NewEmpty(now time.Time) *Document {
	return &Document{
		SchemaVersion: SchemaVersion,
		Campaign: Campaign{
			CreatedAt: now.UTC().Format(time.RFC3339),
			StartingProtein: StartingProtein{
				Features: []string{},
			},
			HostSystem: HostSystem{
				Resistances: []string{},
			},
			Arms:              map[string]*Arm{},
			Segments:          []Segment{},
			SelectionCircuits: map[string]*SelectionCircuit{},
			Analyses:          []Analysis{},
			Attachments:       []Attachment{},
			Ontologies:        map[string][]string{},
		},
	}
}

// NewSample returns the two-pathway demo campaign: a T3 arm and an SP6 arm,
// each with three PACE segments stepping through its promoter progression
// over 144 hours from now.
func NewSample(now time.Time) *Document {
	base := now.UTC()
	iso := func(h int) string {
		return base.Add(time.Duration(h) * time.Hour).Format(time.RFC3339)
	}

	doc := NewEmpty(now)
	c := &doc.Campaign
	c.CampaignID = "sample-campaign"
	c.Title = "Sample PACE Campaign - T3 and SP6 Pathways"
	c.CreatedBy = "demo-user"
	c.Notes = "Sample campaign demonstrating T3 and SP6 pathway visualization"
	c.StartingProtein = StartingProtein{
		Name:          "Sample_Protein_v0",
		DNASeq:        "ATG...TAA",
		AASeq:         "M...*",
		Features:      []string{},
		VectorContext: "pBAD-MCS",
	}
	c.HostSystem = HostSystem{
		Strain:       "S2060",
		Genotype:     "ΔendA ΔrecA F+",
		FPrimeStatus: "F' lacIq",
		Plasmids:     Plasmids{AP: "ap-pt7-v3", CP: "cp-T7RNAP", MP: "MP6", DP: "DP6"},
		Resistances:  []string{"ampicillin", "chloramphenicol"},
	}

	c.Arms["arm-t3"] = &Arm{
		ArmID:       "arm-t3",
		Label:       "T3 Pathway",
		Description: "T3 promoter evolution pathway",
		Status:      StatusActive,
		Timepoints:  []Timepoint{},
	}
	c.Arms["arm-sp6"] = &Arm{
		ArmID:       "arm-sp6",
		Label:       "SP6 Pathway",
		Description: "SP6 promoter evolution pathway",
		Status:      StatusActive,
		Timepoints:  []Timepoint{},
	}

	c.SelectionCircuits["sel-t3-pathway"] = &SelectionCircuit{
		ID:                "sel-t3-pathway",
		Type:              "RNAP_promoter",
		APDetails:         "pBAD variant; pIII under T7/T3 promoter",
		CPDetails:         "T7 RNAP expressed via arabinose",
		ReporterGene:      "gIII",
		NegativeSelection: "gIII-neg",
		SteppingStones:    []string{"T7/T3", "T3", "T3/final", "final"},
		Version:           "1.0",
	}
	c.SelectionCircuits["sel-sp6-pathway"] = &SelectionCircuit{
		ID:                "sel-sp6-pathway",
		Type:              "RNAP_promoter",
		APDetails:         "pBAD variant; pIII under T7/SP6 promoter",
		CPDetails:         "T7 RNAP expressed via arabinose",
		ReporterGene:      "gIII",
		NegativeSelection: "gIII-neg",
		SteppingStones:    []string{"T7/SP6", "SP6", "SP6/final", "final"},
		Version:           "1.0",
	}

	sampleSegment := func(id, arm string, startH, endH int, circuit string, stones []string) Segment {
		end := iso(endH)
		return Segment{
			SegmentID:     id,
			Mode:          ModePACE,
			AppliedToArms: []string{arm},
			StartTime:     iso(startH),
			EndTime:       &end,
			SelectionDesign: SelectionDesign{
				SelectionCircuitID: circuit,
				SteppingStones:     stones,
			},
		}
	}
	c.Segments = []Segment{
		sampleSegment("seg-01-t3-init", "arm-t3", 0, 48, "sel-t3-pathway", []string{"T7/T3"}),
		sampleSegment("seg-02-t3-evolve", "arm-t3", 48, 96, "sel-t3-pathway", []string{"T3"}),
		sampleSegment("seg-03-t3-final", "arm-t3", 96, 144, "sel-t3-pathway", []string{"T3/final", "final"}),
		sampleSegment("seg-01-sp6-init", "arm-sp6", 0, 48, "sel-sp6-pathway", []string{"T7/SP6"}),
		sampleSegment("seg-02-sp6-evolve", "arm-sp6", 48, 96, "sel-sp6-pathway", []string{"SP6"}),
		sampleSegment("seg-03-sp6-final", "arm-sp6", 96, 144, "sel-sp6-pathway", []string{"SP6/final", "final"}),
	}

	return doc
}
