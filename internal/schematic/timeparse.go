// Package schematic turns a campaign document into a renderable timeline
// scene: it parses segment times, classifies promoters for color-coding,
// lays out segments per arm and computes the scene geometry.
package schematic

import (
	"strconv"
	"strings"
	"time"
)

// HoursSource tags which branch of ParseHours produced a value, so the
// boundary can log and count fallbacks without the core raising errors.
type HoursSource int

const (
	// SourceParsed is a clean timestamp parse at or after the reference.
	SourceParsed HoursSource = iota
	// SourceClampedBefore is a timestamp before the reference, clamped to 0.
	SourceClampedBefore
	// SourceNumericFallback is the bare-number branch. Unlike the
	// timestamp branch its value is not clamped; negative numbers pass
	// through.
	SourceNumericFallback
	// SourceZeroFallback is empty or unparseable input, valued 0.
	SourceZeroFallback
)

// HoursResult is an hour offset plus the branch that produced it.
type HoursResult struct {
	Hours  float64
	Source HoursSource
}

// ParseHours converts a loosely formatted timestamp into an hour offset
// relative to ref. A trailing "Z" is normalized to "+00:00" before the
// RFC 3339 parse. Offsets before ref clamp to 0 in the timestamp branch
// but not in the numeric branch; both behaviors are deliberate.
func ParseHours(s string, ref time.Time) HoursResult {
	if s == "" {
		return HoursResult{Source: SourceZeroFallback}
	}

	norm := s
	if strings.HasSuffix(norm, "Z") {
		norm = strings.TrimSuffix(norm, "Z") + "+00:00"
	}
	if t, err := time.Parse(time.RFC3339, norm); err == nil {
		hours := t.Sub(ref).Hours()
		if hours < 0 {
			return HoursResult{Hours: 0, Source: SourceClampedBefore}
		}
		return HoursResult{Hours: hours, Source: SourceParsed}
	}

	if isBareNumber(s) {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return HoursResult{Hours: v, Source: SourceNumericFallback}
		}
	}
	return HoursResult{Source: SourceZeroFallback}
}

// isBareNumber reports whether s consists solely of digits, dots and minus
// signs, with at least one digit. It deliberately accepts strings a float
// parse will still reject, such as "1.2.3"; those fall through to zero.
func isBareNumber(s string) bool {
	stripped := strings.NewReplacer(".", "", "-", "").Replace(s)
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
