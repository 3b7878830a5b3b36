package models

type WatermarkRequest struct {
	SourceImage string        `json:"sourceImage" binding:"required"`
	Watermark   WatermarkText `json:"watermark"`
}

type WatermarkText struct {
	Text string `json:"text" binding:"required"`
}

// WatermarkResponse carries both outputs as data URIs.
type WatermarkResponse struct {
	ProcessedImage string `json:"processedImage"`
	Resized        string `json:"resized"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
