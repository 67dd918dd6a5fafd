package guidance

import (
	"fmt"
	"net/http"
	"strings"
)

const (
	msgProblemRequired = "Problem is required"
	msgRateLimited     = "Rate limits exceeded, please try again later."
	msgPaymentRequired = "Payment required, please add credits to your workspace."
	msgGatewayError    = "AI gateway error"
)

// Error is a failure with the HTTP status and message the relay answers with.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

var (
	ErrProblemRequired = &Error{Status: http.StatusBadRequest, Message: msgProblemRequired}
	ErrRateLimited     = &Error{Status: http.StatusTooManyRequests, Message: msgRateLimited}
	ErrPaymentRequired = &Error{Status: http.StatusPaymentRequired, Message: msgPaymentRequired}
)

func unsupportedBook(book Book) *Error {
	names := make([]string, 0, len(Books()))
	for _, b := range Books() {
		names = append(names, string(b))
	}
	return &Error{
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("Unsupported book: %s (expected one of %s)", book, strings.Join(names, ", ")),
	}
}

func internal(err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: err.Error(), Err: err}
}
