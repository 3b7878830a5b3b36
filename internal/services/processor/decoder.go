package processor

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/phambaophuc/image-watermark/pkg/utils"

	// imaging registers jpeg, png, gif, bmp and tiff.
	_ "golang.org/x/image/webp"
)

// decodeSource turns a data URI into a decoded image.
func (p *ImageProcessor) decodeSource(sourceImage string) (image.Image, error) {
	payload, err := utils.DataURIPayload(sourceImage)
	if err != nil {
		return nil, err
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 payload: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return img, nil
}
