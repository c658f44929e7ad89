package schematic

import "strings"

// PromoterLabel is the closed set of promoter categories a segment can be
// colored by. T3Final, SP6Final and Final are never produced by Classify;
// they exist for the color map and the legend.
type PromoterLabel int

const (
	PromoterT7T3 PromoterLabel = iota
	PromoterT3
	PromoterT3Final
	PromoterT7SP6
	PromoterSP6
	PromoterSP6Final
	PromoterFinal
	PromoterDefault
)

var promoterInfo = [...]struct {
	name  string
	color string
}{
	{"T7/T3", "#ff6b6b"},
	{"T3", "#ff7f0e"},
	{"T3/final", "#9acd32"},
	{"T7/SP6", "#4ecdc4"},
	{"SP6", "#2ca02c"},
	{"SP6/final", "#20b2aa"},
	{"final", "#32cd32"},
	{"default", "#9467bd"},
}

func (p PromoterLabel) String() string { return promoterInfo[p].name }

// Color returns the fixed render color for the label.
func (p PromoterLabel) Color() string { return promoterInfo[p].color }

// IsSP6Pathway reports whether the label belongs to the SP6 progression.
// Arms containing one get the blue background band.
func (p PromoterLabel) IsSP6Pathway() bool {
	return p == PromoterT7SP6 || p == PromoterSP6 || p == PromoterSP6Final
}

// PromoterLabels returns every label in declaration order, the order the
// legend lists them in.
func PromoterLabels() []PromoterLabel {
	labels := make([]PromoterLabel, len(promoterInfo))
	for i := range promoterInfo {
		labels[i] = PromoterLabel(i)
	}
	return labels
}

// Classify assigns a promoter label from a segment's stepping stones and
// the referenced circuit's declared type and id strings. First match wins:
// the first stepping stone decides when present, then the circuit type/id
// substrings. A circuit matching only "T7" lands on the T3 pathway; that
// ambiguity is part of the contract.
func Classify(stones []string, circuitType, circuitID string) PromoterLabel {
	if len(stones) > 0 {
		if strings.Contains(stones[0], "T3") {
			return PromoterT7T3
		}
		if strings.Contains(stones[0], "SP6") {
			return PromoterT7SP6
		}
	}
	if strings.Contains(circuitType, "T3") || strings.Contains(circuitID, "T3") {
		return PromoterT3
	}
	if strings.Contains(circuitType, "SP6") || strings.Contains(circuitID, "SP6") {
		return PromoterSP6
	}
	if strings.Contains(circuitType, "T7") || strings.Contains(circuitID, "T7") {
		return PromoterT7T3
	}
	return PromoterDefault
}
