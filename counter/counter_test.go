package counter

import (
	"testing"

	"github.com/luggagelab/go-regioncount/region"
	"github.com/luggagelab/go-regioncount/track"
)

// testRegion returns a region covering the unit square (0,0)-(1,1)
func testRegion(t *testing.T, id string) region.Region {
	t.Helper()

	reg, err := region.NewRegion(id, id, []region.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1},
	})

	if err != nil {
		t.Fatalf("error creating region: %v", err)
	}

	return reg
}

// obsAt returns an observation whose foot point lands at the given
// coordinates.  The box is a small square sitting on the point
func obsAt(trackID int64, x, y float32, frameIndex int) track.Observation {
	return track.NewObservation(trackID,
		track.NewRect(x-0.05, y-0.1, 0.1, 0.1), 28, 0.9, frameIndex)
}

// TestRegionStateEntryExit tests the basic outside to inside and inside
// to outside transitions of a single region
func TestRegionStateEntryExit(t *testing.T) {

	reg := testRegion(t, "r1")
	st := NewRegionState("r1")

	// frame sequence for a single object passing through the region,
	// each frame lists the foot point position and the expected state
	frames := []struct {
		frameIdx  int
		x, y      float32
		entries   int
		occupancy int
		events    int
	}{
		{0, -1, -1, 0, 0, 0},    // outside, nothing happens
		{1, 0.5, 0.5, 1, 1, 1},  // entry
		{2, 0.6, 0.5, 1, 1, 0},  // still inside, no new event
		{3, 2, 2, 1, 0, 1},      // exit, count not decremented
		{4, 3, 3, 1, 0, 0},      // still outside
	}

	for _, f := range frames {

		obs := []track.Observation{obsAt(1, f.x, f.y, f.frameIdx)}
		events := st.Update(reg, f.frameIdx, obs, CountOnce, FootPoint)

		if len(events) != f.events {
			t.Errorf("frame %d: expected %d events, got %d",
				f.frameIdx, f.events, len(events))
		}

		if st.TotalEntries != f.entries {
			t.Errorf("frame %d: expected %d entries, got %d",
				f.frameIdx, f.entries, st.TotalEntries)
		}

		if st.Occupancy() != f.occupancy {
			t.Errorf("frame %d: expected occupancy %d, got %d",
				f.frameIdx, f.occupancy, st.Occupancy())
		}
	}
}

// TestReentryPolicies tests the re-entry example from the counting
// contract.  Object A enters, leaves, and re-enters the unit square.
// Under the default CountOnce policy the entry total stays at 1, under
// CountReentries it becomes 2
func TestReentryPolicies(t *testing.T) {

	reg := testRegion(t, "r1")

	frames := []struct {
		frameIdx int
		x, y     float32
	}{
		{1, 0.5, 0.5}, // inside
		{2, 2, 2},     // outside
		{3, 0.5, 0.5}, // re-enters
	}

	tests := []struct {
		name        string
		policy      Policy
		wantEntries int
	}{
		{"count once", CountOnce, 1},
		{"count re-entries", CountReentries, 2},
	}

	for _, tc := range tests {

		st := NewRegionState("r1")

		for _, f := range frames {
			obs := []track.Observation{obsAt(1, f.x, f.y, f.frameIdx)}
			st.Update(reg, f.frameIdx, obs, tc.policy, FootPoint)
		}

		if st.TotalEntries != tc.wantEntries {
			t.Errorf("%s: expected %d entries, got %d",
				tc.name, tc.wantEntries, st.TotalEntries)
		}

		if st.Occupancy() != 1 {
			t.Errorf("%s: expected occupancy 1, got %d",
				tc.name, st.Occupancy())
		}
	}
}

// TestEntriesNeverDecrease tests the entry total is monotonically
// non-decreasing over an arbitrary movement sequence
func TestEntriesNeverDecrease(t *testing.T) {

	reg := testRegion(t, "r1")
	st := NewRegionState("r1")

	positions := []struct{ x, y float32 }{
		{0.5, 0.5}, {2, 2}, {0.2, 0.2}, {0.9, 0.9}, {5, 5}, {-1, -1},
		{0.5, 0.5}, {0.5, 2}, {0.1, 0.9},
	}

	last := 0

	for i, pos := range positions {
		obs := []track.Observation{obsAt(1, pos.x, pos.y, i)}
		st.Update(reg, i, obs, CountReentries, FootPoint)

		if st.TotalEntries < last {
			t.Fatalf("frame %d: entries decreased from %d to %d",
				i, last, st.TotalEntries)
		}

		last = st.TotalEntries
	}
}

// TestTwoObjectsCountIndependently tests two distinct track IDs inside
// the same region both increment the entry total
func TestTwoObjectsCountIndependently(t *testing.T) {

	reg := testRegion(t, "r1")
	st := NewRegionState("r1")

	obs := []track.Observation{
		obsAt(1, 0.3, 0.5, 0),
		obsAt(2, 0.7, 0.5, 0),
	}

	events := st.Update(reg, 0, obs, CountOnce, FootPoint)

	if st.TotalEntries != 2 {
		t.Errorf("expected 2 entries, got %d", st.TotalEntries)
	}

	inside := st.Inside()

	if len(inside) != 2 || inside[0] != 1 || inside[1] != 2 {
		t.Errorf("expected both objects inside, got %v", inside)
	}

	if len(events) != 2 {
		t.Fatalf("expected 2 entry events, got %d", len(events))
	}

	for _, ev := range events {
		if ev.Type != Entry || !ev.Counted {
			t.Errorf("expected counted entry event, got %+v", ev)
		}
	}
}

// TestOccludedObjectExits tests an object with no observation this
// frame is treated as not inside
func TestOccludedObjectExits(t *testing.T) {

	reg := testRegion(t, "r1")
	st := NewRegionState("r1")

	st.Update(reg, 0, []track.Observation{obsAt(1, 0.5, 0.5, 0)},
		CountOnce, FootPoint)

	// object disappears from the frame entirely
	events := st.Update(reg, 1, nil, CountOnce, FootPoint)

	if len(events) != 1 || events[0].Type != Exit {
		t.Fatalf("expected a single exit event, got %v", events)
	}

	if events[0].FrameIndex != 1 {
		t.Errorf("expected exit at frame 1, got %d", events[0].FrameIndex)
	}

	if st.Occupancy() != 0 {
		t.Errorf("expected empty region, got occupancy %d", st.Occupancy())
	}

	if st.TotalEntries != 1 {
		t.Errorf("expected entry total unchanged at 1, got %d", st.TotalEntries)
	}
}

// TestUncountedReentryEvent tests a re-entry under CountOnce still
// emits an entry event but flags it as not counted
func TestUncountedReentryEvent(t *testing.T) {

	reg := testRegion(t, "r1")
	st := NewRegionState("r1")

	st.Update(reg, 0, []track.Observation{obsAt(1, 0.5, 0.5, 0)},
		CountOnce, FootPoint)
	st.Update(reg, 1, []track.Observation{obsAt(1, 2, 2, 1)},
		CountOnce, FootPoint)

	events := st.Update(reg, 2, []track.Observation{obsAt(1, 0.5, 0.5, 2)},
		CountOnce, FootPoint)

	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	if events[0].Type != Entry || events[0].Counted {
		t.Errorf("expected uncounted entry event, got %+v", events[0])
	}

	if st.TotalEntries != 1 {
		t.Errorf("expected 1 entry, got %d", st.TotalEntries)
	}
}

// TestProbePointMembership tests probe point mode counts a box
// straddling the region whose foot point is outside it
func TestProbePointMembership(t *testing.T) {

	reg := testRegion(t, "r1")

	// box hangs over the region's right edge, foot point outside at
	// x=1.5 but the bottom-left corner probe at x=0.9 is inside
	obs := track.NewObservation(1, track.NewRectTlbr(0.9, 0.2, 2.1, 0.8),
		28, 0.9, 0)

	stFoot := NewRegionState("r1")
	stFoot.Update(reg, 0, []track.Observation{obs}, CountOnce, FootPoint)

	if stFoot.TotalEntries != 0 {
		t.Errorf("foot point mode: expected 0 entries, got %d",
			stFoot.TotalEntries)
	}

	stProbe := NewRegionState("r1")
	stProbe.Update(reg, 0, []track.Observation{obs}, CountOnce, ProbePoints)

	if stProbe.TotalEntries != 1 {
		t.Errorf("probe point mode: expected 1 entry, got %d",
			stProbe.TotalEntries)
	}
}

// TestCounterMultiRegion tests the counter advances independent region
// states and reports totals across them
func TestCounterMultiRegion(t *testing.T) {

	upper := testRegion(t, "upper")

	lower, err := region.NewRegion("lower", "lower", []region.Point{
		{X: 0, Y: 2}, {X: 1, Y: 2}, {X: 1, Y: 3}, {X: 0, Y: 3},
	})

	if err != nil {
		t.Fatalf("error creating region: %v", err)
	}

	c, err := NewCounter([]region.Region{upper, lower}, CountOnce, FootPoint)

	if err != nil {
		t.Fatalf("error creating counter: %v", err)
	}

	// object 1 in the upper region, object 2 in the lower region
	events := c.Update(0, []track.Observation{
		obsAt(1, 0.5, 0.5, 0),
		obsAt(2, 0.5, 2.5, 0),
	})

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	if c.State("upper").TotalEntries != 1 {
		t.Errorf("expected 1 entry in upper, got %d",
			c.State("upper").TotalEntries)
	}

	if c.State("lower").TotalEntries != 1 {
		t.Errorf("expected 1 entry in lower, got %d",
			c.State("lower").TotalEntries)
	}

	if c.TotalEntries() != 2 {
		t.Errorf("expected 2 total entries, got %d", c.TotalEntries())
	}

	states := c.States()

	if len(states) != 2 || states[0].RegionID != "upper" ||
		states[1].RegionID != "lower" {
		t.Errorf("states not in configuration order: %v", states)
	}

	c.Reset()

	if c.TotalEntries() != 0 || c.State("upper").Occupancy() != 0 {
		t.Error("expected counter cleared after reset")
	}
}

// TestCounterDuplicateRegion tests duplicate region IDs are rejected
func TestCounterDuplicateRegion(t *testing.T) {

	reg := testRegion(t, "r1")

	_, err := NewCounter([]region.Region{reg, reg}, CountOnce, FootPoint)

	if err == nil {
		t.Error("expected error for duplicate region id")
	}
}
