package track

import (
	"github.com/luggagelab/go-regioncount/region"
)

// Tlwh (top left x, top left y, width, height) represents a 1x4 matrix
type Tlwh []float32

// Rect represents a bounding box with Tlwh (top left x, top left y,
// width, height) format
type Rect struct {
	Tlwh Tlwh
}

// NewRect creates a new Rect with given coordinates
func NewRect(x, y, width, height float32) Rect {
	return Rect{
		Tlwh: Tlwh{x, y, width, height},
	}
}

// NewRectTlbr creates a Rect from top-left and bottom-right corner
// coordinates
func NewRectTlbr(left, top, right, bottom float32) Rect {
	return NewRect(left, top, right-left, bottom-top)
}

// TLX returns the top-left x coordinate of the rectangle
func (r *Rect) TLX() float32 {
	return r.Tlwh[0]
}

// TLY returns the top-left y coordinate of the rectangle
func (r *Rect) TLY() float32 {
	return r.Tlwh[1]
}

// BRX returns the bottom-right x coordinate of the rectangle
func (r *Rect) BRX() float32 {
	return r.Tlwh[0] + r.Tlwh[2]
}

// BRY returns the bottom-right y coordinate of the rectangle
func (r *Rect) BRY() float32 {
	return r.Tlwh[1] + r.Tlwh[3]
}

// Width returns the width of the rectangle
func (r *Rect) Width() float32 {
	return r.Tlwh[2]
}

// Height returns the height of the rectangle
func (r *Rect) Height() float32 {
	return r.Tlwh[3]
}

// FootPoint returns the ground contact point of the bounding box, the
// bottom center pixel.  Region membership is tested against this point
// instead of the box centroid as the centroid of a tall object can sit
// well above the region the object stands in
func (r *Rect) FootPoint() region.Point {
	return region.Point{
		X: r.Tlwh[0] + r.Tlwh[2]/2,
		Y: r.Tlwh[1] + r.Tlwh[3],
	}
}

// Center returns the center point of the bounding box
func (r *Rect) Center() region.Point {
	return region.Point{
		X: r.Tlwh[0] + r.Tlwh[2]/2,
		Y: r.Tlwh[1] + r.Tlwh[3]/2,
	}
}

// ProbePoints returns the set of box points probed for region membership
// when running in probe point mode.  The points are the top-right,
// bottom-left, and bottom-right corners plus the bottom, left, and right
// edge midpoints.  Probing multiple points catches boxes that straddle a
// narrow region where the foot point alone falls outside
func (r *Rect) ProbePoints() []region.Point {

	x1 := r.TLX()
	y1 := r.TLY()
	x2 := r.BRX()
	y2 := r.BRY()

	return []region.Point{
		{X: x2, Y: y1},            // top-right corner
		{X: x1, Y: y2},            // bottom-left corner
		{X: x2, Y: y2},            // bottom-right corner
		{X: (x1 + x2) / 2, Y: y2}, // bottom midpoint
		{X: x1, Y: (y1 + y2) / 2}, // left midpoint
		{X: x2, Y: (y1 + y2) / 2}, // right midpoint
	}
}
