package region

import (
	"fmt"
)

// Region is an operator defined polygon over image coordinates
// representing an area of interest.  Regions are immutable after
// configuration load
type Region struct {
	// ID is a unique identifier for the region
	ID string
	// Name is a human readable label rendered on the overlay
	Name string
	// Poly is the region polygon
	Poly Polygon
}

// NewRegion creates a Region with the given id, display name, and
// polygon vertices
func NewRegion(id, name string, vertices []Point) (Region, error) {

	poly, err := NewPolygon(vertices)

	if err != nil {
		return Region{}, fmt.Errorf("region %s: %w", id, err)
	}

	return Region{
		ID:   id,
		Name: name,
		Poly: poly,
	}, nil
}
