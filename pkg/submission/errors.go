package submission

import (
	"errors"
	"strings"

	"github.com/goliatone/go-docform/pkg/validation"
)

// ErrSubmissionInFlight is returned when Submit is called while a request is
// still pending. There is no queue: the call is dropped.
var ErrSubmissionInFlight = errors.New("submission: request already in flight")

// ValidationError reports local problems found before any request was
// issued. Messages holds every problem at once.
type ValidationError struct {
	Messages validation.Result
	Err      error
}

func (e *ValidationError) Error() string {
	return "submission: invalid form: " + strings.Join(e.Messages, "; ")
}

// Unwrap exposes the boundary error (unknown field, invalid option), if any.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// SubmissionError reports a failed generation: the request could not be
// sent, the reply could not be decoded, or the backend said success=false.
type SubmissionError struct {
	Noun    string
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	return "submission: generating " + e.Noun + ": " + e.Message
}

// Unwrap exposes the transport or decode error, if any.
func (e *SubmissionError) Unwrap() error {
	return e.Err
}
