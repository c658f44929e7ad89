package schematic

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		stones      []string
		circuitType string
		circuitID   string
		want        PromoterLabel
	}{
		{"first stone contains T3", []string{"T3/final"}, "", "", PromoterT7T3},
		{"first stone T7/T3", []string{"T7/T3"}, "", "", PromoterT7T3},
		{"first stone contains SP6", []string{"SP6/final"}, "", "", PromoterT7SP6},
		{"first stone T7/SP6", []string{"T7/SP6"}, "", "", PromoterT7SP6},
		{"only the first stone counts", []string{"xyz", "T3"}, "", "", PromoterDefault},
		{"stones win over circuit", []string{"T3"}, "SP6_promoter", "", PromoterT7T3},
		{"circuit type contains T3", nil, "T3_RNAP", "", PromoterT3},
		{"circuit id contains T3", nil, "", "sel-T3-pathway", PromoterT3},
		{"matching is case sensitive", nil, "", "sel-t3-pathway", PromoterDefault},
		{"circuit type contains SP6", nil, "SP6_promoter", "", PromoterSP6},
		{"circuit id contains SP6", nil, "", "circ-SP6", PromoterSP6},
		{"bare T7 lands on the T3 pathway", nil, "T7RNAP", "", PromoterT7T3},
		{"T7 in id", nil, "", "sel-T7-v2", PromoterT7T3},
		{"two_hybrid is default", nil, "two_hybrid", "", PromoterDefault},
		{"nothing set", nil, "", "", PromoterDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.stones, tt.circuitType, tt.circuitID)
			if got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestPromoterLabel_Colors(t *testing.T) {
	tests := []struct {
		label PromoterLabel
		name  string
		color string
	}{
		{PromoterT7T3, "T7/T3", "#ff6b6b"},
		{PromoterT3, "T3", "#ff7f0e"},
		{PromoterT3Final, "T3/final", "#9acd32"},
		{PromoterT7SP6, "T7/SP6", "#4ecdc4"},
		{PromoterSP6, "SP6", "#2ca02c"},
		{PromoterSP6Final, "SP6/final", "#20b2aa"},
		{PromoterFinal, "final", "#32cd32"},
		{PromoterDefault, "default", "#9467bd"},
	}

	for _, tt := range tests {
		if tt.label.String() != tt.name {
			t.Errorf("label %d: expected name %s, got %s", tt.label, tt.name, tt.label.String())
		}
		if tt.label.Color() != tt.color {
			t.Errorf("label %s: expected color %s, got %s", tt.name, tt.color, tt.label.Color())
		}
	}
}

func TestPromoterLabel_IsSP6Pathway(t *testing.T) {
	sp6 := []PromoterLabel{PromoterT7SP6, PromoterSP6, PromoterSP6Final}
	for _, label := range sp6 {
		if !label.IsSP6Pathway() {
			t.Errorf("%s should be on the SP6 pathway", label)
		}
	}
	other := []PromoterLabel{PromoterT7T3, PromoterT3, PromoterT3Final, PromoterFinal, PromoterDefault}
	for _, label := range other {
		if label.IsSP6Pathway() {
			t.Errorf("%s should not be on the SP6 pathway", label)
		}
	}
}

func TestPromoterLabels_Order(t *testing.T) {
	labels := PromoterLabels()
	if len(labels) != 8 {
		t.Fatalf("expected 8 labels, got %d", len(labels))
	}
	if labels[0] != PromoterT7T3 {
		t.Errorf("expected T7/T3 first, got %s", labels[0])
	}
	if labels[7] != PromoterDefault {
		t.Errorf("expected default last, got %s", labels[7])
	}
}
