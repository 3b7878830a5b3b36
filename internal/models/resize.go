package models

// ResizeTarget is the thumbnail size. A zero dimension keeps the aspect ratio.
type ResizeTarget struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

const MediaTypeWebP = "image/webp"
