package counter

import (
	"testing"

	"github.com/luggagelab/go-regioncount/region"
)

// TestIDSequencer tests track IDs are remapped to sequential display
// IDs starting from 1
func TestIDSequencer(t *testing.T) {

	seq := NewIDSequencer()

	if id := seq.DisplayID(901); id != 1 {
		t.Errorf("expected display id 1, got %d", id)
	}

	if id := seq.DisplayID(455); id != 2 {
		t.Errorf("expected display id 2, got %d", id)
	}

	// repeat lookups are stable
	if id := seq.DisplayID(901); id != 1 {
		t.Errorf("expected stable display id 1, got %d", id)
	}

	seq.Reset()

	if id := seq.DisplayID(455); id != 1 {
		t.Errorf("expected display id 1 after reset, got %d", id)
	}
}

// TestAssignerSticky tests an object keeps its first region assignment
// even after moving into another region
func TestAssignerSticky(t *testing.T) {

	upper := testRegion(t, "upper")

	lower, err := region.NewRegion("lower", "lower", []region.Point{
		{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 1, Y: 3}, {X: 0, Y: 3},
	})

	if err != nil {
		t.Fatalf("error creating region: %v", err)
	}

	a := NewAssigner([]region.Region{upper, lower}, FootPoint)

	// outside both regions, no assignment yet
	if _, ok := a.Assign(obsAt(1, 5, 5, 0)); ok {
		t.Error("expected no assignment outside all regions")
	}

	// lands in the upper region
	regionID, ok := a.Assign(obsAt(1, 0.5, 0.5, 1))

	if !ok || regionID != "upper" {
		t.Fatalf("expected assignment to upper, got %q %v", regionID, ok)
	}

	// later drifts into the lower region, assignment does not change
	regionID, ok = a.Assign(obsAt(1, 0.5, 2.5, 2))

	if !ok || regionID != "upper" {
		t.Errorf("expected sticky assignment to upper, got %q %v", regionID, ok)
	}

	if regionID, ok := a.RegionOf(1); !ok || regionID != "upper" {
		t.Errorf("RegionOf(1) = %q %v, want upper", regionID, ok)
	}

	// second object goes straight to the lower region
	if regionID, ok := a.Assign(obsAt(2, 0.5, 2.5, 3)); !ok || regionID != "lower" {
		t.Errorf("expected assignment to lower, got %q %v", regionID, ok)
	}

	counts := a.Counts()

	if counts["upper"] != 1 || counts["lower"] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}

	if a.Total() != 2 {
		t.Errorf("expected total 2, got %d", a.Total())
	}

	a.Reset()

	if a.Total() != 0 {
		t.Errorf("expected total 0 after reset, got %d", a.Total())
	}
}

// TestAssignerRegionOrder tests overlapping regions resolve to the
// earlier configured region
func TestAssignerRegionOrder(t *testing.T) {

	first := testRegion(t, "first")
	second := testRegion(t, "second")

	a := NewAssigner([]region.Region{first, second}, FootPoint)

	if regionID, ok := a.Assign(obsAt(1, 0.5, 0.5, 0)); !ok || regionID != "first" {
		t.Errorf("expected assignment to first, got %q %v", regionID, ok)
	}
}
