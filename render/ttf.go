package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"gocv.io/x/gocv"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// TextTTF draws text on the image using a TTF font face loaded with
// LoadFontFace, for glyphs the builtin Hershey fonts can't render.
// The text is rasterised to an RGBA image and blended over the frame
func TextTTF(img *gocv.Mat, text string, x, y int, face font.Face,
	clr color.RGBA) error {

	// create image with text writing
	rgba := image.NewRGBA(image.Rect(0, 0, img.Cols(), img.Rows()))
	draw.Draw(rgba, rgba.Bounds(), image.NewUniform(color.RGBA{0, 0, 0, 0}),
		image.Point{}, draw.Src)

	dr := &font.Drawer{
		Dst:  rgba,
		Src:  image.NewUniform(clr),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: fixed.Int26_6(y * 64),
		},
	}
	dr.DrawString(text)

	// Convert image.RGBA to gocv.Mat
	imgRGBA, err := gocv.NewMatFromBytes(rgba.Bounds().Dy(), rgba.Bounds().Dx(),
		gocv.MatTypeCV8UC4, rgba.Pix)

	if imgRGBA.Empty() || err != nil {
		return fmt.Errorf("error creating Mat from RGBA")
	}

	defer imgRGBA.Close()

	gocv.CvtColor(imgRGBA, &imgRGBA, gocv.ColorRGBAToBGR)
	gocv.AddWeighted(*img, 1.0, imgRGBA, 1.0, 0, img)

	return nil
}

// TotalsTTF draws the statistics banner in the top left corner of the
// image using a TTF font face loaded with LoadFontFace, for region
// names with glyphs the builtin Hershey fonts can't render
func TotalsTTF(img *gocv.Mat, total int, lines []StatLine,
	face font.Face) error {

	err := TextTTF(img, fmt.Sprintf("Total: %d", total), 20, 40, face, Yellow)

	if err != nil {
		return err
	}

	for i, line := range lines {
		err := TextTTF(img, line.Text, 20, 80+i*30, face, line.Color)

		if err != nil {
			return err
		}
	}

	return nil
}
