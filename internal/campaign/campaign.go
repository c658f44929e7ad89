// Package campaign defines the typed schema of a PACE/PANCE campaign
// document and the constructors for empty and demo documents.
package campaign

import "sort"

// SchemaVersion is written into every document the constructors produce.
const SchemaVersion = "0.1.0"

// Document is the root of a campaign record as stored on disk.
type Document struct {
	SchemaVersion string   `json:"schema_version" yaml:"schema_version"`
	Campaign      Campaign `json:"campaign" yaml:"campaign"`
}

// Campaign holds the experiment plan: metadata, host description and the
// arm/segment/circuit collections the schematic is built from.
type Campaign struct {
	CampaignID        string                       `json:"campaign_id" yaml:"campaign_id"`
	Title             string                       `json:"title" yaml:"title"`
	CreatedAt         string                       `json:"created_at" yaml:"created_at"`
	CreatedBy         string                       `json:"created_by" yaml:"created_by"`
	StartingProtein   StartingProtein              `json:"starting_protein" yaml:"starting_protein"`
	HostSystem        HostSystem                   `json:"host_system" yaml:"host_system"`
	Arms              map[string]*Arm              `json:"arms" yaml:"arms"`
	Segments          []Segment                    `json:"segments" yaml:"segments"`
	SelectionCircuits map[string]*SelectionCircuit `json:"selection_circuits" yaml:"selection_circuits"`
	Analyses          []Analysis                   `json:"analyses" yaml:"analyses"`
	Attachments       []Attachment                 `json:"attachments" yaml:"attachments"`
	Ontologies        map[string][]string          `json:"ontologies" yaml:"ontologies"`
	Notes             string                       `json:"notes" yaml:"notes"`
}

type StartingProtein struct {
	Name          string   `json:"name" yaml:"name"`
	DNASeq        string   `json:"dna_seq" yaml:"dna_seq"`
	AASeq         string   `json:"aa_seq" yaml:"aa_seq"`
	Features      []string `json:"features" yaml:"features"`
	VectorContext string   `json:"vector_context" yaml:"vector_context"`
}

type HostSystem struct {
	Strain       string   `json:"strain" yaml:"strain"`
	Genotype     string   `json:"genotype" yaml:"genotype"`
	FPrimeStatus string   `json:"F_prime_status" yaml:"F_prime_status"`
	Plasmids     Plasmids `json:"plasmids" yaml:"plasmids"`
	Resistances  []string `json:"resistances" yaml:"resistances"`
}

// Plasmids names the four canonical PACE plasmids carried by the host.
type Plasmids struct {
	AP string `json:"AP" yaml:"AP"`
	CP string `json:"CP" yaml:"CP"`
	MP string `json:"MP" yaml:"MP"`
	DP string `json:"DP" yaml:"DP"`
}

// SortedArmIDs returns the arm ids in lexicographic order.
func (c *Campaign) SortedArmIDs() []string {
	return sortedKeys(c.Arms)
}

// SortedCircuitIDs returns the selection-circuit ids in lexicographic order.
func (c *Campaign) SortedCircuitIDs() []string {
	return sortedKeys(c.SelectionCircuits)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
