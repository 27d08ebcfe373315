package region

import (
	"fmt"
	"math"
)

// Point represents an x,y coordinate in the source image
type Point struct {
	X, Y float32
}

// Polygon represents a closed polygon defined by an ordered list of
// vertices in image coordinates.  The closing edge from the last vertex
// back to the first is implicit
type Polygon struct {
	vertices []Point
}

// NewPolygon creates a Polygon from the given vertices.  A polygon needs
// a minimum of three vertices and a non zero area, anything less is a
// configuration error and rejected before any frame processing starts
func NewPolygon(vertices []Point) (Polygon, error) {

	if len(vertices) < 3 {
		return Polygon{}, fmt.Errorf("polygon requires at least 3 vertices, got %d",
			len(vertices))
	}

	p := Polygon{
		vertices: append([]Point(nil), vertices...),
	}

	if p.Area() == 0 {
		return Polygon{}, fmt.Errorf("polygon has zero area, vertices are collinear")
	}

	return p, nil
}

// Vertices returns a copy of the polygon vertices
func (p *Polygon) Vertices() []Point {
	return append([]Point(nil), p.vertices...)
}

// Area calculates the polygon area using the shoelace formula
func (p *Polygon) Area() float32 {

	ptsNum := len(p.vertices)
	area := float32(0.0)

	for i := 0; i < ptsNum; i++ {
		j := (i + 1) % ptsNum
		area += p.vertices[i].X*p.vertices[j].Y - p.vertices[i].Y*p.vertices[j].X
	}

	return float32(math.Abs(float64(area / 2.0)))
}

// Contains checks if the given point lies inside the polygon using the
// ray casting algorithm.  Points outside the image bounds are simply
// outside the polygon, no error is raised
func (p *Polygon) Contains(pt Point) bool {

	inside := false
	ptsNum := len(p.vertices)

	for i, j := 0, ptsNum-1; i < ptsNum; j, i = i, i+1 {

		vi := p.vertices[i]
		vj := p.vertices[j]

		// check if the horizontal ray from pt crosses the edge vj->vi
		if (vi.Y > pt.Y) != (vj.Y > pt.Y) &&
			pt.X < (vj.X-vi.X)*(pt.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
	}

	return inside
}
