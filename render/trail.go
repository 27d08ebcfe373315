package render

import (
	"image"
	"image/color"

	"github.com/luggagelab/go-regioncount/track"
	"gocv.io/x/gocv"
)

// TrailStyle defines the parameters used for rendering the trail style
type TrailStyle struct {
	// LineSame defines if the color of the trail line should be the
	// same color as that of the bounding box.  If set to false then use
	// the color specified at LineColor
	LineSame      bool
	LineColor     color.RGBA
	LineThickness int
	// CircleSame defines if the color of the foot point circle should
	// be the same color as that of the bounding box.  If set to false
	// then use the color specified at CircleColor
	CircleSame   bool
	CircleColor  color.RGBA
	CircleRadius int
}

// DefaultTrailStyle returns default trail style settings
func DefaultTrailStyle() TrailStyle {
	return TrailStyle{
		LineSame:      false,
		LineColor:     Yellow,
		LineThickness: 1,
		CircleSame:    true,
		CircleColor:   Red,
		CircleRadius:  3,
	}
}

// Trail draws the foot point trail lines of the tracked objects visible
// this frame on the source image
func Trail(img *gocv.Mat, observations []track.Observation,
	trail *track.Trail, style TrailStyle) {

	for _, obs := range observations {

		// Get the color for this object
		objClr := TrackColor(obs.TrackID)

		// determine style colors to use
		lineClr := objClr
		circleClr := objClr

		if !style.LineSame {
			lineClr = style.LineColor
		}

		if !style.CircleSame {
			circleClr = style.CircleColor
		}

		// draw trail line showing movement history
		points := trail.GetPoints(obs.TrackID)

		if len(points) > 2 {
			for i := 1; i < len(points); i++ {
				// draw line segment of trail
				gocv.Line(img,
					image.Pt(int(points[i-1].X), int(points[i-1].Y)),
					image.Pt(int(points[i].X), int(points[i].Y)),
					lineClr, style.LineThickness,
				)

				if i == len(points)-1 {
					// draw circle on the current foot point
					gocv.Circle(img, image.Pt(int(points[i].X), int(points[i].Y)),
						style.CircleRadius, circleClr, -1)
				}
			}
		}
	}
}
