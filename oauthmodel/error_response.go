package oauthmodel

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorResponse is the error object returned by OAuth2/OIDC providers on a
// non-success status (RFC 6749 section 5.2, OIDC Core section 5.3.3).
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
	ErrorURI         string `json:"error_uri,omitempty"`
}

// ParseErrorResponse decodes a provider error body. The body must be a JSON
// object; an empty error code is allowed since the HTTP status code is
// authoritative on its own.
func ParseErrorResponse(body []byte) (*ErrorResponse, error) {
	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, fmt.Errorf("malformed error response body: %w", err)
	}
	if obj == nil {
		return nil, errors.New("error response body is not a JSON object")
	}

	var resp ErrorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("malformed error response body: %w", err)
	}
	return &resp, nil
}
