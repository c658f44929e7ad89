package schematic

import (
	"sort"
	"time"

	"github.com/emiliopalmerini/pacetrack/internal/campaign"
)

// DefaultDurationHours is substituted when a segment has no end time or an
// end at or before its start.
const DefaultDurationHours = 72

// SegmentLayout is one segment placed on one arm's row. A segment applied
// to several arms produces one layout per arm. Never persisted.
type SegmentLayout struct {
	ArmID          string
	SegmentID      string
	Promoter       PromoterLabel
	Mode           string
	StartHours     float64
	EndHours       float64
	Color          string
	SteppingStones []string
}

// Fallback reasons reported in FallbackEvents.
const (
	ReasonClampedBefore   = "clamped_before_reference"
	ReasonNumericFallback = "numeric_fallback"
	ReasonUnparseable     = "unparseable"
	ReasonDefaultDuration = "default_duration"
	ReasonInvertedEnd     = "inverted_interval"
	ReasonDefaultPromoter = "default_promoter"
)

// FallbackEvent records one fail-soft decision the builder made. Events
// feed boundary logging and metrics; they never affect geometry.
type FallbackEvent struct {
	SegmentID string `json:"segment_id"`
	Field     string `json:"field"`
	Reason    string `json:"reason"`
}

// Timeline is the per-arm layout the render step consumes.
type Timeline struct {
	Arms   map[string][]SegmentLayout
	ArmIDs []string // lexicographically sorted
	MaxEnd float64
	Events []FallbackEvent
}

// BuildTimeline fans every segment out to the arms it applies to, resolving
// times against ref and classifying promoters. It returns nil when the
// campaign has no arms or no segments; callers treat that as nothing to
// render. Arm buckets are created on first reference, including for arm ids
// no Arm entry exists for.
func BuildTimeline(c *campaign.Campaign, ref time.Time) *Timeline {
	if len(c.Arms) == 0 || len(c.Segments) == 0 {
		return nil
	}

	tl := &Timeline{Arms: map[string][]SegmentLayout{}}
	maxSet := false

	for _, seg := range c.Segments {
		design := seg.SelectionDesign
		circuitType := ""
		if circuit, ok := c.SelectionCircuits[design.SelectionCircuitID]; ok && circuit != nil {
			circuitType = circuit.Type
		}

		start := ParseHours(seg.StartTime, ref)
		tl.recordParse(seg.SegmentID, "start_time", seg.StartTime, start)

		var end HoursResult
		if seg.EndTime == nil || *seg.EndTime == "" {
			end = HoursResult{Hours: start.Hours + DefaultDurationHours}
			tl.record(seg.SegmentID, "end_time", ReasonDefaultDuration)
		} else {
			end = ParseHours(*seg.EndTime, ref)
			tl.recordParse(seg.SegmentID, "end_time", *seg.EndTime, end)
			if end.Hours <= start.Hours {
				end.Hours = start.Hours + DefaultDurationHours
				tl.record(seg.SegmentID, "end_time", ReasonInvertedEnd)
			}
		}

		label := Classify(design.SteppingStones, circuitType, design.SelectionCircuitID)
		if label == PromoterDefault {
			tl.record(seg.SegmentID, "promoter", ReasonDefaultPromoter)
		}

		mode := seg.Mode
		if mode == "" {
			mode = campaign.ModePACE
		}

		for _, armID := range seg.AppliedToArms {
			tl.Arms[armID] = append(tl.Arms[armID], SegmentLayout{
				ArmID:          armID,
				SegmentID:      seg.SegmentID,
				Promoter:       label,
				Mode:           mode,
				StartHours:     start.Hours,
				EndHours:       end.Hours,
				Color:          label.Color(),
				SteppingStones: design.SteppingStones,
			})
			if !maxSet || end.Hours > tl.MaxEnd {
				tl.MaxEnd = end.Hours
				maxSet = true
			}
		}
	}

	tl.ArmIDs = make([]string, 0, len(tl.Arms))
	for armID := range tl.Arms {
		tl.ArmIDs = append(tl.ArmIDs, armID)
	}
	sort.Strings(tl.ArmIDs)

	return tl
}

func (tl *Timeline) record(segmentID, field, reason string) {
	tl.Events = append(tl.Events, FallbackEvent{SegmentID: segmentID, Field: field, Reason: reason})
}

// recordParse maps a non-clean parse result to a fallback event. Empty
// input is a silently accepted zero, not a fallback.
func (tl *Timeline) recordParse(segmentID, field, input string, r HoursResult) {
	switch r.Source {
	case SourceClampedBefore:
		tl.record(segmentID, field, ReasonClampedBefore)
	case SourceNumericFallback:
		tl.record(segmentID, field, ReasonNumericFallback)
	case SourceZeroFallback:
		if input != "" {
			tl.record(segmentID, field, ReasonUnparseable)
		}
	}
}
