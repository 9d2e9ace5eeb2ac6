// Package contenttype classifies Content-Type header values of Wetrace API responses.
package contenttype

import (
	"mime"
	"strings"
)

// Category represents a broad content-type classification.
type Category string

const (
	JSON Category = "json"
	Text Category = "text"
	File Category = "file"
)

// fileTypes are the media types the API uses for file downloads.
var fileTypes = map[string]bool{
	"application/octet-stream": true,
	"application/zip":          true,
	"application/pdf":          true,
}

// mediaType strips parameters (charset, boundary, etc.) and lowercases.
// Malformed values fall back to the text before the first semicolon.
func mediaType(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		head, _, _ := strings.Cut(contentType, ";")
		return strings.ToLower(strings.TrimSpace(head))
	}
	return mt
}

// Classify returns the broad category for a content-type header value.
// Empty and unrecognized values are treated as JSON, the API's default.
func Classify(contentType string) Category {
	mt := mediaType(contentType)
	switch {
	case fileTypes[mt]:
		return File
	case strings.HasPrefix(mt, "text/"):
		return Text
	default:
		return JSON
	}
}

// IsFile reports whether the content type marks a binary file download
// (octet-stream, zip or pdf).
func IsFile(contentType string) bool {
	return Classify(contentType) == File
}
