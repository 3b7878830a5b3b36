package watermark

import (
	"image"
	"math"
)

type Point struct {
	X float64
	Y float64
}

type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Pixels rounds the rectangle to the pixel grid.
func (r Rect) Pixels() image.Rectangle {
	return image.Rect(
		int(math.Round(r.X)),
		int(math.Round(r.Y)),
		int(math.Round(r.X+r.Width)),
		int(math.Round(r.Y+r.Height)),
	)
}

// Layout is the placement of a label inside an image, in pixels relative to
// the image origin.
type Layout struct {
	Profile    string
	TextWidth  float64
	TextHeight float64
	Background Rect
	Anchor     Point
}

// ComputeLayout places a measured text box in the bottom-right corner of a
// width x height image. The background is flush with the corner and extends
// one padding unit past the text on every side. Boxes larger than the image
// produce negative coordinates; they are not clamped.
func ComputeLayout(width, height int, textWidth, textHeight float64, profile SizeProfile) Layout {
	w, h := float64(width), float64(height)

	return Layout{
		Profile:    profile.Name,
		TextWidth:  textWidth,
		TextHeight: textHeight,
		Background: Rect{
			X:      w - textWidth - 2*profile.PaddingX,
			Y:      h - textHeight - 2*profile.PaddingY,
			Width:  textWidth + 2*profile.PaddingX,
			Height: textHeight + 2*profile.PaddingY,
		},
		Anchor: Point{
			X: w - textWidth - profile.PaddingX,
			Y: h - textHeight - profile.PaddingY,
		},
	}
}
