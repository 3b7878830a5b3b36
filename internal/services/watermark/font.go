package watermark

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Points map 1:1 to pixels at this resolution.
const fontDPI = 72

func loadFont(path string) (*opentype.Font, error) {
	data := goregular.TTF
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font %q: %w", path, err)
		}
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %q: %w", path, err)
	}
	return f, nil
}

// newFace returns a regular-style face. Faces are not safe for concurrent
// use, so each stamp gets its own.
func newFace(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     fontDPI,
		Hinting: font.HintingNone,
	})
}

// measure returns the advance width and line height of text, plus the ascent
// needed to turn a top-left anchor into a baseline.
func measure(face font.Face, text string) (width, height float64, ascent fixed.Int26_6) {
	advance := font.MeasureString(face, text)
	metrics := face.Metrics()
	return fromFixed(advance), fromFixed(metrics.Ascent + metrics.Descent), metrics.Ascent
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
