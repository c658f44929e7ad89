package schematic

import (
	"math"
	"testing"

	"github.com/emiliopalmerini/pacetrack/internal/campaign"
)

func TestBuildScene_NilTimeline(t *testing.T) {
	if sc := BuildScene(nil); sc != nil {
		t.Errorf("expected nil scene for nil timeline, got %+v", sc)
	}
}

func TestBuild_EmptyCampaignIsNothingToRender(t *testing.T) {
	doc := testDoc()
	sc, events := Build(&doc.Campaign, testRef)
	if sc != nil {
		t.Error("expected no scene for an empty campaign")
	}
	if events != nil {
		t.Errorf("expected no events, got %+v", events)
	}
}

func TestBuildScene_RowsAreLexicographic(t *testing.T) {
	doc := testDoc()
	doc.Campaign.Arms["b"] = &campaign.Arm{ArmID: "b"}
	doc.Campaign.Arms["a"] = &campaign.Arm{ArmID: "a"}
	doc.Campaign.Segments = []campaign.Segment{
		{SegmentID: "seg-b", AppliedToArms: []string{"b"}, StartTime: "0", EndTime: strPtr("24")},
		{SegmentID: "seg-a", AppliedToArms: []string{"a"}, StartTime: "48", EndTime: strPtr("72")},
	}

	sc, _ := Build(&doc.Campaign, testRef)
	if sc == nil {
		t.Fatal("expected a scene")
	}
	assertEqual(t, "rows", 2, len(sc.Rows))
	assertEqual(t, "row 0 arm", "a", sc.Rows[0].ArmID)
	assertEqual(t, "row 0 index", 0, sc.Rows[0].Index)
	assertEqual(t, "row 1 arm", "b", sc.Rows[1].ArmID)
	assertEqual(t, "row 1 index", 1, sc.Rows[1].Index)
}

func TestBuildScene_SampleGeometry(t *testing.T) {
	doc := campaign.NewSample(testRef)
	sc, events := Build(&doc.Campaign, testRef)
	if sc == nil {
		t.Fatal("expected a scene for the sample campaign")
	}
	if len(events) != 0 {
		t.Errorf("expected a clean build, got events %+v", events)
	}

	assertEqual(t, "rows", 2, len(sc.Rows))
	assertEqual(t, "height", 500+2*120, sc.Height)
	if math.Abs(sc.XRange[0]-(-30)) > 1e-9 || math.Abs(sc.XRange[1]-174) > 1e-9 {
		t.Errorf("expected x range [-30,174], got %v", sc.XRange)
	}
	if math.Abs(sc.YRange[0]-(-1)) > 1e-9 || math.Abs(sc.YRange[1]-2) > 1e-9 {
		t.Errorf("expected y range [-1,2], got %v", sc.YRange)
	}

	assertEqual(t, "rects", 6, len(sc.Rects))
	assertEqual(t, "labels", 6, len(sc.Labels))
	assertEqual(t, "arrows", 4, len(sc.Arrows)) // 2 per arm of 3 segments

	// arm-sp6 sorts first and carries the blue band.
	assertEqual(t, "bands", 2, len(sc.Bands))
	assertEqual(t, "band 0 arm", "arm-sp6", sc.Bands[0].ArmID)
	assertEqual(t, "band 0 fill", BandFillSP6, sc.Bands[0].Fill)
	assertEqual(t, "band 1 fill", BandFillT3, sc.Bands[1].Fill)
	if math.Abs(sc.Bands[0].X0-(-10)) > 1e-9 || math.Abs(sc.Bands[0].X1-154) > 1e-9 {
		t.Errorf("expected band x [-10,154], got [%v,%v]", sc.Bands[0].X0, sc.Bands[0].X1)
	}
	if math.Abs(sc.Bands[0].Y0-(-0.4)) > 1e-9 || math.Abs(sc.Bands[0].Y1-0.4) > 1e-9 {
		t.Errorf("expected band y [-0.4,0.4], got [%v,%v]", sc.Bands[0].Y0, sc.Bands[0].Y1)
	}
}

func TestBuildScene_SegmentRectAndLabel(t *testing.T) {
	doc := campaign.NewSample(testRef)
	sc, _ := Build(&doc.Campaign, testRef)

	// Row 0 is arm-sp6, its first rect is seg-01-sp6-init at [0,48].
	r := sc.Rects[0]
	assertEqual(t, "segment id", "seg-01-sp6-init", r.SegmentID)
	assertEqual(t, "fill", "#4ecdc4", r.Fill)
	if math.Abs(r.X0-0) > 1e-9 || math.Abs(r.X1-48) > 1e-9 {
		t.Errorf("expected rect x [0,48], got [%v,%v]", r.X0, r.X1)
	}
	if math.Abs(r.Y0-(-0.3)) > 1e-9 || math.Abs(r.Y1-0.3) > 1e-9 {
		t.Errorf("expected rect y [-0.3,0.3], got [%v,%v]", r.Y0, r.Y1)
	}

	l := sc.Labels[0]
	if math.Abs(l.X-24) > 1e-9 { // (0+48)/2
		t.Errorf("expected label centered at 24, got %v", l.X)
	}
	assertEqual(t, "label lines", 3, len(l.Lines))
	assertEqual(t, "line 0", "seg-01-sp6-init", l.Lines[0])
	assertEqual(t, "line 1", "(PACE)", l.Lines[1])
	assertEqual(t, "line 2", "T7/SP6", l.Lines[2])

	a := sc.Arrows[0]
	if math.Abs(a.HeadX-48) > 1e-9 || math.Abs(a.TailX-56) > 1e-9 {
		t.Errorf("expected arrow head 48 tail 56, got %v and %v", a.HeadX, a.TailX)
	}
}

func TestBuildScene_Gridlines(t *testing.T) {
	doc := campaign.NewSample(testRef)
	sc, _ := Build(&doc.Campaign, testRef)

	// MaxEnd 144: hours run 0..168 because the bound is int(144)+25.
	assertEqual(t, "gridlines", 8, len(sc.Gridlines))
	assertEqual(t, "first", 0, sc.Gridlines[0].Hour)
	assertEqual(t, "second", 24, sc.Gridlines[1].Hour)
	assertEqual(t, "last", 168, sc.Gridlines[7].Hour)
}

func TestBuildScene_Legend(t *testing.T) {
	doc := campaign.NewSample(testRef)
	sc, _ := Build(&doc.Campaign, testRef)

	if len(sc.Legend) != 7 {
		t.Fatalf("expected 7 legend entries, got %d", len(sc.Legend))
	}
	assertEqual(t, "first text", "T7/T3", sc.Legend[0].Text)
	assertEqual(t, "first color", "#ff6b6b", sc.Legend[0].Color)
	if math.Abs(sc.Legend[0].X-0.02) > 1e-9 || math.Abs(sc.Legend[0].Y-1.02) > 1e-9 {
		t.Errorf("expected first entry at (0.02,1.02), got (%v,%v)", sc.Legend[0].X, sc.Legend[0].Y)
	}

	// Six entries fill the first column; the seventh starts the next one.
	sixth := sc.Legend[5]
	assertEqual(t, "sixth text", "SP6/final", sixth.Text)
	if math.Abs(sixth.X-0.02) > 1e-9 || math.Abs(sixth.Y-0.82) > 1e-6 {
		t.Errorf("expected sixth entry at (0.02,0.82), got (%v,%v)", sixth.X, sixth.Y)
	}
	seventh := sc.Legend[6]
	assertEqual(t, "seventh text", "final", seventh.Text)
	if math.Abs(seventh.X-0.32) > 1e-9 || math.Abs(seventh.Y-1.02) > 1e-9 {
		t.Errorf("expected seventh entry at (0.32,1.02), got (%v,%v)", seventh.X, seventh.Y)
	}

	for _, entry := range sc.Legend {
		if entry.Text == "default" {
			t.Error("legend must not contain the default label")
		}
	}
}
