package render

import (
	"fmt"
	"image"

	"github.com/luggagelab/go-regioncount/counter"
	"github.com/luggagelab/go-regioncount/region"
	"gocv.io/x/gocv"
)

// RegionStyle defines the parameters used for rendering region overlays
type RegionStyle struct {
	// FillOpacity is the weight of the translucent polygon fill blended
	// over the source image, 0 disables the fill
	FillOpacity float64
	// BorderThickness is the polygon outline thickness in pixels
	BorderThickness int
	// ShowCounts renders the region name and entry count next to the
	// polygon
	ShowCounts bool
	// LabelFont is the font used for the region label
	LabelFont Font
}

// DefaultRegionStyle returns default region overlay settings
func DefaultRegionStyle() RegionStyle {
	return RegionStyle{
		FillOpacity:     0.3,
		BorderThickness: 2,
		ShowCounts:      true,
		LabelFont:       DefaultFont(),
	}
}

// Regions draws the configured regions on the source image as outlined
// translucent polygons.  When states are provided the region name and
// entry count are labelled at the first polygon vertex.  Regions are
// colored by configuration order
func Regions(img *gocv.Mat, regions []region.Region,
	states []*counter.RegionState, style RegionStyle) {

	if len(regions) == 0 {
		return
	}

	// draw all polygon fills on a copy and blend it over the source
	// image in one pass so overlapping regions don't stack opacity
	if style.FillOpacity > 0 {

		overlay := img.Clone()
		defer overlay.Close()

		for i, reg := range regions {
			pts := polygonPoints(reg.Poly)
			gocv.FillPoly(&overlay, pts, RegionFill(i))
			pts.Close()
		}

		gocv.AddWeighted(overlay, style.FillOpacity, *img,
			1-style.FillOpacity, 0, img)
	}

	for i, reg := range regions {

		pts := polygonPoints(reg.Poly)
		gocv.Polylines(img, pts, true, RegionFill(i), style.BorderThickness)
		pts.Close()

		if !style.ShowCounts {
			continue
		}

		text := reg.Name

		if i < len(states) && states[i] != nil {
			text = fmt.Sprintf("%s: %d", reg.Name, states[i].TotalEntries)
		}

		vertices := reg.Poly.Vertices()
		labelPos := image.Pt(int(vertices[0].X), int(vertices[0].Y)-style.LabelFont.BottomPad)

		gocv.PutTextWithParams(img, text, labelPos,
			style.LabelFont.Face, style.LabelFont.Scale, style.LabelFont.Color,
			style.LabelFont.Thickness, style.LabelFont.LineType, false)
	}
}

// polygonPoints converts polygon vertices to a gocv points vector.  The
// caller must Close the returned vector
func polygonPoints(poly region.Polygon) gocv.PointsVector {

	vertices := poly.Vertices()
	points := make([]image.Point, 0, len(vertices))

	for _, v := range vertices {
		points = append(points, image.Pt(int(v.X), int(v.Y)))
	}

	return gocv.NewPointsVectorFromPoints([][]image.Point{points})
}
