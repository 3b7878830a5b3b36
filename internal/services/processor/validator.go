package processor

import "github.com/phambaophuc/image-watermark/internal/models"

// ValidateRequest rejects a request before any image work starts.
func (p *ImageProcessor) ValidateRequest(req *models.WatermarkRequest) error {
	if req == nil || req.SourceImage == "" || req.Watermark.Text == "" {
		return ErrInvalidInput
	}
	return nil
}
