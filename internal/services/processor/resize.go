package processor

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/phambaophuc/image-watermark/internal/models"
)

// resizeImage returns a new buffer; img is left untouched.
func (p *ImageProcessor) resizeImage(img image.Image, target models.ResizeTarget) *image.NRGBA {
	return imaging.Resize(img, target.Width, target.Height, imaging.CatmullRom)
}
