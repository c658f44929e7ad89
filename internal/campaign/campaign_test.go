package campaign

import (
	"testing"
	"time"
)

func TestNewEmpty_CollectionsInitialized(t *testing.T) {
	now := time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)
	doc := NewEmpty(now)

	assertEqual(t, "SchemaVersion", SchemaVersion, doc.SchemaVersion)
	assertEqual(t, "CreatedAt", "2025-08-15T12:00:00Z", doc.Campaign.CreatedAt)

	if doc.Campaign.Arms == nil {
		t.Error("Arms map should be initialized")
	}
	if doc.Campaign.SelectionCircuits == nil {
		t.Error("SelectionCircuits map should be initialized")
	}
	if doc.Campaign.Ontologies == nil {
		t.Error("Ontologies map should be initialized")
	}
	if doc.Campaign.Segments == nil {
		t.Error("Segments slice should be initialized")
	}
}

func TestNewSample_Shape(t *testing.T) {
	now := time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)
	doc := NewSample(now)
	c := doc.Campaign

	assertEqual(t, "CampaignID", "sample-campaign", c.CampaignID)
	assertEqual(t, "arms", 2, len(c.Arms))
	assertEqual(t, "circuits", 2, len(c.SelectionCircuits))
	assertEqual(t, "segments", 6, len(c.Segments))
	assertEqual(t, "strain", "S2060", c.HostSystem.Strain)

	t3 := c.Arms["arm-t3"]
	if t3 == nil {
		t.Fatal("arm-t3 missing")
	}
	assertEqual(t, "t3 label", "T3 Pathway", t3.Label)
	assertEqual(t, "t3 status", StatusActive, t3.Status)
}

func TestNewSample_SegmentTimes(t *testing.T) {
	now := time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)
	doc := NewSample(now)

	first := doc.Campaign.Segments[0]
	assertEqual(t, "first segment id", "seg-01-t3-init", first.SegmentID)
	assertEqual(t, "first start", "2025-08-15T12:00:00Z", first.StartTime)
	if first.EndTime == nil {
		t.Fatal("first segment should have an end time")
	}
	assertEqual(t, "first end", "2025-08-17T12:00:00Z", *first.EndTime) // +48h

	last := doc.Campaign.Segments[5]
	assertEqual(t, "last segment id", "seg-03-sp6-final", last.SegmentID)
	if last.EndTime == nil {
		t.Fatal("last segment should have an end time")
	}
	assertEqual(t, "last end", "2025-08-21T12:00:00Z", *last.EndTime) // +144h
	assertEqual(t, "last stones", 2, len(last.SelectionDesign.SteppingStones))
}

func TestSortedArmIDs(t *testing.T) {
	doc := NewEmpty(time.Now())
	doc.Campaign.Arms["arm-b"] = &Arm{ArmID: "arm-b"}
	doc.Campaign.Arms["arm-a"] = &Arm{ArmID: "arm-a"}
	doc.Campaign.Arms["arm-c"] = &Arm{ArmID: "arm-c"}

	ids := doc.Campaign.SortedArmIDs()
	assertEqual(t, "count", 3, len(ids))
	assertEqual(t, "ids[0]", "arm-a", ids[0])
	assertEqual(t, "ids[1]", "arm-b", ids[1])
	assertEqual(t, "ids[2]", "arm-c", ids[2])
}

func assertEqual[T comparable](t *testing.T, name string, expected, actual T) {
	t.Helper()
	if expected != actual {
		t.Errorf("%s: expected %v, got %v", name, expected, actual)
	}
}
