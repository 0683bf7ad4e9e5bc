package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidChannelURL = errors.New("invalid channel url")
	ErrChannelNotFound   = errors.New("channel not found")
	ErrMalformedResponse = errors.New("malformed api response")
)

// APIError is a failed call to the video platform (network, quota, HTTP status).
type APIError struct {
	Operation  string
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Operation, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Operation, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// IsAPIError reports whether err carries an *APIError.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
