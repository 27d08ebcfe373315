package render

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// StatLine is one line of the statistics banner
type StatLine struct {
	// Text is the line content
	Text string
	// Color the line is drawn in
	Color color.RGBA
}

// Totals draws the statistics banner in the top left corner of the
// image, the total count on the first line followed by the per region
// lines
func Totals(img *gocv.Mat, total int, lines []StatLine, font Font) {

	gocv.PutTextWithParams(img, fmt.Sprintf("Total: %d", total),
		image.Pt(20, 40), font.Face, font.Scale*2, Yellow,
		font.Thickness+1, font.LineType, false)

	for i, line := range lines {
		gocv.PutTextWithParams(img, line.Text,
			image.Pt(20, 80+i*30), font.Face, font.Scale*1.6, line.Color,
			font.Thickness+1, font.LineType, false)
	}
}
