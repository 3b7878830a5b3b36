package processor

import (
	"image"
	"io"

	"github.com/chai2010/webp"
)

const DefaultQuality = 75

// WebPEncoder writes WebP output for the watermark placer.
type WebPEncoder struct {
	Quality  float32
	Lossless bool
}

func NewWebPEncoder(quality float32, lossless bool) WebPEncoder {
	if quality <= 0 {
		quality = DefaultQuality
	}
	return WebPEncoder{Quality: quality, Lossless: lossless}
}

func (e WebPEncoder) Encode(w io.Writer, img image.Image) error {
	return webp.Encode(w, img, &webp.Options{
		Lossless: e.Lossless,
		Quality:  e.Quality,
	})
}
