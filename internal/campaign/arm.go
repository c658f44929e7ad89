package campaign

// StatusActive is the status assigned to newly created arms.
const StatusActive = "active"

// Arm is one parallel experimental branch of the campaign.
type Arm struct {
	ArmID       string      `json:"arm_id" yaml:"arm_id"`
	Label       string      `json:"label" yaml:"label"`
	Description string      `json:"description" yaml:"description"`
	Status      string      `json:"status" yaml:"status"`
	Timepoints  []Timepoint `json:"timepoints" yaml:"timepoints"`
}

// Timepoint is one sampling point within an arm, holding the lagoons
// that were running at that time.
type Timepoint struct {
	T            int                `json:"t" yaml:"t"`
	Timestamp    string             `json:"timestamp" yaml:"timestamp"`
	GlobalEvents []string           `json:"global_events" yaml:"global_events"`
	Lagoons      map[string]*Lagoon `json:"lagoons" yaml:"lagoons"`
}

type Lagoon struct {
	LagoonID       string       `json:"lagoon_id" yaml:"lagoon_id"`
	ConditionLabel string       `json:"condition_label" yaml:"condition_label"`
	MutagenesisOn  bool         `json:"mutagenesis_on" yaml:"mutagenesis_on"`
	Conditions     Conditions   `json:"conditions" yaml:"conditions"`
	Measurements   Measurements `json:"measurements" yaml:"measurements"`
	Samples        []Sample     `json:"samples" yaml:"samples"`
}

// Conditions describes the culture conditions of a lagoon. Exactly one of
// DilutionRate (PACE) or PassageFraction (PANCE) is set, matching the mode.
type Conditions struct {
	Mode            string       `json:"mode" yaml:"mode"`
	VolumeML        float64      `json:"volume_ml" yaml:"volume_ml"`
	TempC           float64      `json:"temp_c" yaml:"temp_c"`
	Media           string       `json:"media" yaml:"media"`
	Antibiotics     []Antibiotic `json:"antibiotics" yaml:"antibiotics"`
	Inducers        []Inducer    `json:"inducers" yaml:"inducers"`
	DilutionRate    *float64     `json:"dilution_rate_vol_per_hr,omitempty" yaml:"dilution_rate_vol_per_hr,omitempty"`
	PassageFraction *float64     `json:"passage_fraction,omitempty" yaml:"passage_fraction,omitempty"`
}

type Antibiotic struct {
	Name                 string  `json:"name" yaml:"name"`
	ConcentrationUgPerML float64 `json:"concentration_ug_per_ml" yaml:"concentration_ug_per_ml"`
}

type Inducer struct {
	Name            string  `json:"name" yaml:"name"`
	ConcentrationMM float64 `json:"concentration_mM" yaml:"concentration_mM"`
}

type Measurements struct {
	PhageTiter Titer `json:"phage_titer_pfu_per_ml" yaml:"phage_titer_pfu_per_ml"`
}

type Titer struct {
	Value  float64 `json:"value" yaml:"value"`
	Method string  `json:"method" yaml:"method"`
}

// Sample is material drawn from a lagoon for downstream sequencing.
type Sample struct {
	SampleID     string        `json:"sample_id" yaml:"sample_id"`
	SampleType   string        `json:"sample_type" yaml:"sample_type"`
	LibraryPreps []LibraryPrep `json:"library_preps" yaml:"library_preps"`
}

type LibraryPrep struct {
	LibraryID       string          `json:"library_id" yaml:"library_id"`
	Protocol        string          `json:"protocol" yaml:"protocol"`
	AmpliconTargets string          `json:"amplicon_targets" yaml:"amplicon_targets"`
	SequencingRuns  []SequencingRun `json:"sequencing_runs" yaml:"sequencing_runs"`
}

type SequencingRun struct {
	RunID    string      `json:"run_id" yaml:"run_id"`
	Platform string      `json:"platform" yaml:"platform"`
	Fastq    []FastqFile `json:"fastq" yaml:"fastq"`
}

// FastqFile is one staged read file of a sequencing run.
type FastqFile struct {
	Read      string `json:"read" yaml:"read"`
	URI       string `json:"uri" yaml:"uri"`
	SHA256    string `json:"sha256" yaml:"sha256"`
	SizeBytes int64  `json:"size_bytes" yaml:"size_bytes"`
}

// TiterMethods lists the accepted phage-titer measurement methods.
func TiterMethods() []string {
	return []string{"plaque", "qPCR", "spectro", "other"}
}

// SampleTypes lists the accepted sample material types.
func SampleTypes() []string {
	return []string{"phage_supernatant", "cells", "DNA", "RNA"}
}
