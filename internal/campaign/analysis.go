package campaign

// Analysis records one downstream computational analysis run over
// sequencing libraries, with staged output files for provenance.
type Analysis struct {
	AnalysisID string            `json:"analysis_id" yaml:"analysis_id"`
	PipelineID string            `json:"pipeline_id" yaml:"pipeline_id"`
	CodeHash   string            `json:"code_hash" yaml:"code_hash"`
	Env        string            `json:"env" yaml:"env"`
	RefSeqID   string            `json:"ref_seq_id" yaml:"ref_seq_id"`
	Params     map[string]string `json:"params" yaml:"params"`
	Inputs     []string          `json:"inputs" yaml:"inputs"`
	Outputs    AnalysisOutputs   `json:"outputs" yaml:"outputs"`
	Provenance Provenance        `json:"provenance" yaml:"provenance"`
	Notes      string            `json:"notes" yaml:"notes"`
}

type AnalysisOutputs struct {
	Alignments         []StagedFile `json:"alignments" yaml:"alignments"`
	VariantTables      []StagedFile `json:"variant_tables" yaml:"variant_tables"`
	ConsensusSequences []StagedFile `json:"consensus_sequences" yaml:"consensus_sequences"`
	SelectionScores    []StagedFile `json:"selection_scores" yaml:"selection_scores"`
}

type Provenance struct {
	Who  string `json:"who" yaml:"who"`
	When string `json:"when" yaml:"when"`
}

// StagedFile is a file copied into the managed data directory, addressed
// by a file:// URI and pinned by digest and size.
type StagedFile struct {
	URI       string `json:"uri" yaml:"uri"`
	SHA256    string `json:"sha256" yaml:"sha256"`
	SizeBytes int64  `json:"size_bytes" yaml:"size_bytes"`
}

// Attachment is a staged file kept at the campaign level (SOPs, plasmid
// maps, figures).
type Attachment struct {
	URI         string `json:"uri" yaml:"uri"`
	SHA256      string `json:"sha256" yaml:"sha256"`
	SizeBytes   int64  `json:"size_bytes" yaml:"size_bytes"`
	Description string `json:"description" yaml:"description"`
}
