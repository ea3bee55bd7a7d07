package transport

import (
	"errors"
	"fmt"
	"net/http"
)

// Response is the raw outcome of a call.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       string
}

// IsError reports whether the status code is outside 2xx.
func (r *Response) IsError() bool {
	return r.StatusCode < http.StatusOK || r.StatusCode >= http.StatusMultipleChoices
}

// Found reports the answer of a HEAD existence check: true on 2xx,
// false otherwise. A 404 is a negative answer, not a failure.
func (r *Response) Found() bool {
	return !r.IsError()
}

// Err converts a non-2xx response into an [UnexpectedStatusError].
// It returns nil for successful responses.
func (r *Response) Err() error {
	if !r.IsError() {
		return nil
	}

	body := r.Body
	if len(body) > maxErrBodySize {
		body = body[:maxErrBodySize]
	}

	sentinel := ErrUnexpectedStatusCode
	if r.StatusCode == http.StatusUnauthorized || r.StatusCode == http.StatusForbidden {
		sentinel = errors.Join(ErrUnexpectedStatusCode, ErrAuthFailure)
	}

	return &UnexpectedStatusError{
		StatusCode: r.StatusCode,
		Body:       body,
		Err:        sentinel,
	}
}

func (r *Response) String() string {
	return fmt.Sprintf("[%d %s] %s", r.StatusCode, http.StatusText(r.StatusCode), r.Body)
}
