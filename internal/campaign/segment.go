package campaign

// Experiment modes a segment or lagoon can run in.
const (
	ModePACE  = "PACE"
	ModePANCE = "PANCE"
)

// Segment is a time-bounded phase of the campaign applied to one or more
// arms. EndTime is optional; the schematic substitutes a default duration
// when it is absent or not after the start.
type Segment struct {
	SegmentID       string          `json:"segment_id" yaml:"segment_id"`
	Mode            string          `json:"mode" yaml:"mode"`
	AppliedToArms   []string        `json:"applied_to_arms" yaml:"applied_to_arms"`
	StartTime       string          `json:"start_time" yaml:"start_time"`
	EndTime         *string         `json:"end_time,omitempty" yaml:"end_time,omitempty"`
	SelectionDesign SelectionDesign `json:"selection_design" yaml:"selection_design"`
}

// SelectionDesign points a segment at a selection circuit. Its stepping
// stones may differ from the circuit's own progression.
type SelectionDesign struct {
	SelectionCircuitID string   `json:"selection_circuit_id" yaml:"selection_circuit_id"`
	SteppingStones     []string `json:"stepping_stones" yaml:"stepping_stones"`
}

// Modes lists the accepted experiment modes.
func Modes() []string {
	return []string{ModePACE, ModePANCE}
}
