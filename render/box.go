package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/luggagelab/go-regioncount/track"
	"gocv.io/x/gocv"
)

// boxLabel holds the pre-calculated rendering details of a box label
type boxLabel struct {
	rect    image.Rectangle
	clr     color.RGBA
	text    string
	textPos image.Point
}

// ObservationBoxes renders the bounding boxes around this frame's
// tracked observations.  Each box is labelled with the track's display
// ID above and its region tag below, "OUT" when the object has not been
// assigned a region yet
func ObservationBoxes(img *gocv.Mat, observations []track.Observation,
	tags map[int64]string, font Font, lineThickness int) {

	// keep a record of all box labels for later rendering
	boxLabels := make([]boxLabel, 0)

	for _, obs := range observations {

		boxLeft := int(obs.Rect.TLX())
		boxTop := int(obs.Rect.TLY())
		boxRight := int(obs.Rect.BRX())
		boxBottom := int(obs.Rect.BRY())

		// Get the color for this object
		useClr := TrackColor(obs.TrackID)

		// draw rectangle around detected object
		rect := image.Rect(boxLeft, boxTop, boxRight, boxBottom)
		gocv.Rectangle(img, rect, useClr, lineThickness)

		// create text for label
		text := fmt.Sprintf("ID:%d", obs.TrackID)
		textSize := gocv.GetTextSize(text, font.Face, font.Scale, font.Thickness)

		// Calculate the alignment of text label
		var centerX int

		switch font.Alignment {
		case Center:
			centerX = (boxLeft + boxRight) / 2

		case Right:
			centerX = boxRight - (textSize.X / 2) - font.RightPad + (lineThickness / 2)

		case Left:
			fallthrough
		default:
			centerX = boxLeft + (textSize.X / 2) + font.LeftPad - (lineThickness / 2)
		}

		// Adjust the label position so the text is centered horizontally
		labelPosition := image.Pt(centerX-textSize.X/2, boxTop-font.BottomPad)

		// create box for placing text on
		bRect := image.Rect(centerX-textSize.X/2-font.LeftPad,
			boxTop-textSize.Y-font.TopPad-font.BottomPad,
			centerX+textSize.X/2+font.RightPad, boxTop)

		// record label rendering details
		boxLabels = append(boxLabels, boxLabel{
			rect:    bRect,
			clr:     useClr,
			text:    text,
			textPos: labelPosition,
		})

		// region tag below the box
		tag, ok := tags[obs.TrackID]

		if !ok {
			tag = "OUT"
		}

		gocv.PutTextWithParams(img, tag,
			image.Pt(boxLeft, boxBottom+textSize.Y+font.TopPad),
			font.Face, font.Scale, useClr, font.Thickness,
			font.LineType, false)
	}

	// draw all precalculated box labels so they are the top most layer
	// on the image and don't get overlapped by region outlines
	for _, box := range boxLabels {
		// draw box text gets written on
		gocv.Rectangle(img, box.rect, box.clr, -1)

		// Draw the label over box
		gocv.PutTextWithParams(img, box.text, box.textPos,
			font.Face, font.Scale, font.Color, font.Thickness,
			font.LineType, false)
	}
}
