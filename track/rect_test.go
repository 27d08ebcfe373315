package track

import (
	"testing"

	"github.com/luggagelab/go-regioncount/region"
)

// TestFootPoint tests the foot point is the bottom center of the box
func TestFootPoint(t *testing.T) {

	rect := NewRect(100, 200, 50, 80)
	got := rect.FootPoint()
	want := region.Point{X: 125, Y: 280}

	if got != want {
		t.Errorf("FootPoint() = %v, want %v", got, want)
	}
}

// TestNewRectTlbr tests corner coordinate conversion to Tlwh format
func TestNewRectTlbr(t *testing.T) {

	rect := NewRectTlbr(100, 200, 150, 280)

	if rect.TLX() != 100 || rect.TLY() != 200 ||
		rect.BRX() != 150 || rect.BRY() != 280 {
		t.Errorf("unexpected corners: tlx=%v tly=%v brx=%v bry=%v",
			rect.TLX(), rect.TLY(), rect.BRX(), rect.BRY())
	}

	if rect.Width() != 50 || rect.Height() != 80 {
		t.Errorf("unexpected size: %vx%v", rect.Width(), rect.Height())
	}
}

// TestProbePoints tests the probe point set covers the expected corners
// and edge midpoints
func TestProbePoints(t *testing.T) {

	rect := NewRectTlbr(0, 0, 10, 20)
	points := rect.ProbePoints()

	want := []region.Point{
		{X: 10, Y: 0},
		{X: 0, Y: 20},
		{X: 10, Y: 20},
		{X: 5, Y: 20},
		{X: 0, Y: 10},
		{X: 10, Y: 10},
	}

	if len(points) != len(want) {
		t.Fatalf("expected %d probe points, got %d", len(want), len(points))
	}

	for i, pt := range points {
		if pt != want[i] {
			t.Errorf("probe point %d = %v, want %v", i, pt, want[i])
		}
	}
}

// TestTrailHistory tests the trail keeps a bounded foot point history
// per track
func TestTrailHistory(t *testing.T) {

	trail := NewTrail(3)

	// unknown track has no history
	if pts := trail.GetPoints(7); pts != nil {
		t.Errorf("expected no history, got %v", pts)
	}

	for i := 0; i < 5; i++ {
		trail.Add(NewObservation(7,
			NewRect(float32(i*10), 0, 10, 10), 0, 0.9, i))
	}

	pts := trail.GetPoints(7)

	if len(pts) != 3 {
		t.Fatalf("expected history capped at 3 points, got %d", len(pts))
	}

	// oldest two points dropped, first remaining is from frame 2
	if pts[0].X != 25 {
		t.Errorf("expected oldest point X=25, got %v", pts[0].X)
	}

	trail.Reset()

	if pts := trail.GetPoints(7); pts != nil {
		t.Errorf("expected no history after reset, got %v", pts)
	}
}
