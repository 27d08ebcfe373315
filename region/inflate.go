package region

import (
	"fmt"

	clipper "github.com/ctessum/go.clipper"
)

// Inflate grows the polygon outwards by the given pixel margin and
// returns the enlarged polygon.  Operator drawn regions are often a
// tight fit around the physical area so a small margin adds tolerance
// for tracker jitter at the region boundary
func (p *Polygon) Inflate(margin float64) (Polygon, error) {

	if margin == 0 {
		return Polygon{vertices: p.Vertices()}, nil
	}

	// convert the polygon vertices to a Clipper Path
	var path clipper.Path

	for _, pt := range p.vertices {
		path = append(path, &clipper.IntPoint{
			X: clipper.CInt(pt.X),
			Y: clipper.CInt(pt.Y),
		})
	}

	// create a ClipperOffset object and add the path
	co := clipper.NewClipperOffset()
	co.AddPath(path, clipper.JtRound, clipper.EtClosedPolygon)

	// execute the offset operation
	solution := co.Execute(margin)

	if len(solution) == 0 {
		return Polygon{}, fmt.Errorf("polygon offset by %.1f produced no solution", margin)
	}

	// the offset of a single closed path yields a single path, take the
	// first solution and convert back to vertices
	var vertices []Point

	for _, pt := range solution[0] {
		vertices = append(vertices, Point{
			X: float32(pt.X),
			Y: float32(pt.Y),
		})
	}

	return NewPolygon(vertices)
}
