package schematic

import (
	"strings"
	"time"

	"github.com/emiliopalmerini/pacetrack/internal/campaign"
)

// Background band fills. The blue band marks arms whose segments reach the
// SP6 pathway; everything else gets the pink T3 band.
const (
	BandFillT3  = "rgba(255, 182, 193, 0.1)"
	BandFillSP6 = "rgba(173, 216, 230, 0.1)"
)

// Scene is the renderable description of the schematic: geometry and style
// only, ready for an SVG or JSON consumer. Coordinates are in data space
// (x in hours, y in row units, row 0 at the top) except legend entries,
// which use fractional paper coordinates.
type Scene struct {
	Title      string        `json:"title"`
	XAxisTitle string        `json:"x_axis_title"`
	YAxisTitle string        `json:"y_axis_title"`
	Rows       []Row         `json:"rows"`
	Bands      []Band        `json:"bands"`
	Rects      []Rect        `json:"rects"`
	Labels     []Label       `json:"labels"`
	Arrows     []Arrow       `json:"arrows"`
	Gridlines  []Gridline    `json:"gridlines"`
	Legend     []LegendEntry `json:"legend"`
	XRange     [2]float64    `json:"x_range"`
	YRange     [2]float64    `json:"y_range"`
	Height     int           `json:"height"`
}

// Row assigns an arm to a horizontal row, top to bottom.
type Row struct {
	ArmID string `json:"arm_id"`
	Index int    `json:"index"`
}

// Band is the pathway background behind one arm's segments.
type Band struct {
	ArmID string  `json:"arm_id"`
	X0    float64 `json:"x0"`
	Y0    float64 `json:"y0"`
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	Fill  string  `json:"fill"`
}

// Rect is one segment box.
type Rect struct {
	ArmID     string  `json:"arm_id"`
	SegmentID string  `json:"segment_id"`
	X0        float64 `json:"x0"`
	Y0        float64 `json:"y0"`
	X1        float64 `json:"x1"`
	Y1        float64 `json:"y1"`
	Fill      string  `json:"fill"`
}

// Label is the text block centered on a segment box: segment id, mode in
// parentheses, and the comma-joined stepping stones when present.
type Label struct {
	X     float64  `json:"x"`
	Y     float64  `json:"y"`
	Lines []string `json:"lines"`
}

// Arrow is the progression connector between consecutive segments in a
// row: head at the earlier segment's end, tail eight hours further.
type Arrow struct {
	HeadX float64 `json:"head_x"`
	TailX float64 `json:"tail_x"`
	Y     float64 `json:"y"`
}

// Gridline is a vertical 24-hour marker.
type Gridline struct {
	Hour int `json:"hour"`
}

// LegendEntry places one promoter label in paper coordinates.
type LegendEntry struct {
	Text  string  `json:"text"`
	Color string  `json:"color"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// BuildScene maps a timeline to its scene description. It returns nil for
// a nil or armless timeline; callers render an empty state instead of a
// degenerate chart. Pure geometry: no parsing or classification happens
// here.
func BuildScene(tl *Timeline) *Scene {
	if tl == nil || len(tl.Arms) == 0 {
		return nil
	}

	n := len(tl.ArmIDs)
	sc := &Scene{
		Title:      "PACE/PANCE Campaign Schematic",
		XAxisTitle: "Time (hours)",
		YAxisTitle: "Experimental Arms",
		XRange:     [2]float64{-30, tl.MaxEnd + 30},
		YRange:     [2]float64{-1, float64(n)},
		Height:     500 + n*120,
	}

	for row, armID := range tl.ArmIDs {
		y := float64(row)
		layouts := tl.Arms[armID]
		sc.Rows = append(sc.Rows, Row{ArmID: armID, Index: row})

		fill := BandFillT3
		for _, l := range layouts {
			if l.Promoter.IsSP6Pathway() {
				fill = BandFillSP6
				break
			}
		}
		minStart, maxEnd := layouts[0].StartHours, layouts[0].EndHours
		for _, l := range layouts[1:] {
			if l.StartHours < minStart {
				minStart = l.StartHours
			}
			if l.EndHours > maxEnd {
				maxEnd = l.EndHours
			}
		}
		sc.Bands = append(sc.Bands, Band{
			ArmID: armID,
			X0:    minStart - 10,
			Y0:    y - 0.4,
			X1:    maxEnd + 10,
			Y1:    y + 0.4,
			Fill:  fill,
		})

		for i, l := range layouts {
			sc.Rects = append(sc.Rects, Rect{
				ArmID:     armID,
				SegmentID: l.SegmentID,
				X0:        l.StartHours,
				Y0:        y - 0.3,
				X1:        l.EndHours,
				Y1:        y + 0.3,
				Fill:      l.Color,
			})

			lines := []string{l.SegmentID, "(" + l.Mode + ")"}
			if len(l.SteppingStones) > 0 {
				lines = append(lines, strings.Join(l.SteppingStones, ", "))
			}
			sc.Labels = append(sc.Labels, Label{
				X:     (l.StartHours + l.EndHours) / 2,
				Y:     y,
				Lines: lines,
			})

			if i < len(layouts)-1 {
				sc.Arrows = append(sc.Arrows, Arrow{HeadX: l.EndHours, TailX: l.EndHours + 8, Y: y})
			}
		}
	}

	for hour := 0; hour < int(tl.MaxEnd)+25; hour += 24 {
		sc.Gridlines = append(sc.Gridlines, Gridline{Hour: hour})
	}

	legendX, legendY := 0.02, 1.02
	for _, label := range PromoterLabels() {
		if label == PromoterDefault {
			continue
		}
		sc.Legend = append(sc.Legend, LegendEntry{
			Text:  label.String(),
			Color: label.Color(),
			X:     legendX,
			Y:     legendY,
		})
		legendY -= 0.04
		if legendY < 0.8 {
			legendX += 0.3
			legendY = 1.02
		}
	}

	return sc
}

// Build is the single entry point the editing surface calls: document in,
// scene plus fallback events out. A nil scene means nothing to render.
func Build(c *campaign.Campaign, ref time.Time) (*Scene, []FallbackEvent) {
	tl := BuildTimeline(c, ref)
	if tl == nil {
		return nil, nil
	}
	return BuildScene(tl), tl.Events
}
