package campaign

// SelectionCircuit describes one genetic selection scheme a segment can
// reference: which promoter drives the reporter, how counter-selection is
// wired, and the stepping-stone progression toward the final target.
type SelectionCircuit struct {
	ID                string   `json:"id" yaml:"id"`
	Type              string   `json:"type" yaml:"type"`
	APDetails         string   `json:"ap_details" yaml:"ap_details"`
	CPDetails         string   `json:"cp_details" yaml:"cp_details"`
	ReporterGene      string   `json:"reporter_gene" yaml:"reporter_gene"`
	NegativeSelection string   `json:"negative_selection" yaml:"negative_selection"`
	SteppingStones    []string `json:"stepping_stones" yaml:"stepping_stones"`
	Version           string   `json:"version" yaml:"version"`
}

// CircuitTypes lists the accepted selection-circuit types.
func CircuitTypes() []string {
	return []string{
		"RNAP_promoter",
		"one_hybrid",
		"two_hybrid",
		"protease_split",
		"base_editing",
		"gVI",
		"other",
	}
}

// ReporterGenes lists the accepted reporter genes.
func ReporterGenes() []string {
	return []string{"gIII", "gVI", "other"}
}
