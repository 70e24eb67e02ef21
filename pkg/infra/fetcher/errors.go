package fetcher

import (
	"errors"
	"fmt"
)

var (
	ErrPathNotFound   = errors.New("response path not found")
	ErrInvalidURL     = errors.New("target url is required")
	ErrInvalidPayload = errors.New("rendered body is not valid JSON")
)

// StatusError reports a non-2xx upstream answer.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}
