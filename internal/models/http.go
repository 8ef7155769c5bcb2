// Package models defines the request and response shapes of the HTTP API.
package models

// ShortenRequest is the body of POST /api/shorten.
type ShortenRequest struct {
	// OriginalURL is the absolute URL to shorten.
	OriginalURL string `json:"originalUrl"`
}

// Response is the envelope every JSON endpoint answers with.
type Response struct {
	Success bool `json:"success"`

	// Data carries the mapping or mapping list on success.
	Data any `json:"data,omitempty"`

	// Message explains a failure; empty on success.
	Message string `json:"message,omitempty"`
}
