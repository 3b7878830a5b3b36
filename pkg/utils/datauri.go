package utils

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrNotDataURI = errors.New("source image is not a data URI: missing ',' separator")

// DataURIPayload returns everything after the first comma of a
// "data:<mime>;base64,<payload>" string. The prefix itself is not inspected.
func DataURIPayload(uri string) (string, error) {
	idx := strings.Index(uri, ",")
	if idx == -1 {
		return "", ErrNotDataURI
	}
	return uri[idx+1:], nil
}

// EncodeDataURI wraps data as a base64 data URI of the given media type.
func EncodeDataURI(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
