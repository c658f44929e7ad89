package schematic

import (
	"math"
	"testing"
	"time"
)

func TestParseHours(t *testing.T) {
	ref := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		input      string
		wantHours  float64
		wantSource HoursSource
	}{
		{"empty string", "", 0, SourceZeroFallback},
		{"zulu timestamp after ref", "2025-01-02T00:00:00Z", 24, SourceParsed},
		{"explicit offset after ref", "2025-01-01T06:00:00+00:00", 6, SourceParsed},
		{"non-utc offset", "2025-01-01T06:00:00+02:00", 4, SourceParsed},
		{"fractional hours", "2025-01-01T00:30:00Z", 0.5, SourceParsed},
		{"before ref clamps to zero", "2024-12-31T00:00:00Z", 0, SourceClampedBefore},
		{"bare integer", "42", 42, SourceNumericFallback},
		{"bare float", "4.5", 4.5, SourceNumericFallback},
		{"negative number not clamped", "-5", -5, SourceNumericFallback},
		{"double minus", "--5", 0, SourceZeroFallback},
		{"two dots", "1.2.3", 0, SourceZeroFallback},
		{"date only", "2025-01-01", 0, SourceZeroFallback},
		{"datetime without offset", "2025-01-03T00:00:00", 0, SourceZeroFallback},
		{"garbage", "next tuesday", 0, SourceZeroFallback},
		{"dots and minus only", ".-", 0, SourceZeroFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseHours(tt.input, ref)
			if math.Abs(got.Hours-tt.wantHours) > 1e-9 {
				t.Errorf("hours: expected %v, got %v", tt.wantHours, got.Hours)
			}
			if got.Source != tt.wantSource {
				t.Errorf("source: expected %v, got %v", tt.wantSource, got.Source)
			}
		})
	}
}

func TestParseHours_NumericIgnoresReference(t *testing.T) {
	refA := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	refB := time.Date(1999, 6, 1, 0, 0, 0, 0, time.UTC)

	a := ParseHours("42", refA)
	b := ParseHours("42", refB)
	if a.Hours != 42 || b.Hours != 42 {
		t.Errorf("expected 42 for both references, got %v and %v", a.Hours, b.Hours)
	}
}

func TestParseHours_OffsetIsRelative(t *testing.T) {
	ref := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	got := ParseHours("2025-03-13T08:00:00Z", ref)
	if math.Abs(got.Hours-72) > 1e-9 {
		t.Errorf("expected 72 hours, got %v", got.Hours)
	}
	if got.Source != SourceParsed {
		t.Errorf("expected clean parse, got source %v", got.Source)
	}
}
