package handlers

import (
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// ErrorResponse is the body of every error response: {"error": "..."}.
type ErrorResponse struct {
	status  int
	Message string `doc:"Human readable error message" example:"short code not found" json:"error"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *ErrorResponse) GetStatus() int {
	return e.status
}

// NewError builds the error body for huma; install it with
// huma.NewError = NewError before serving. Schema validation failures are
// client input errors and are reported as 400. Server errors never expose
// the underlying causes.
func NewError(status int, msg string, errs ...error) huma.StatusError {
	if status == http.StatusUnprocessableEntity {
		status = http.StatusBadRequest
	}

	if status < http.StatusInternalServerError {
		details := make([]string, 0, len(errs))

		for _, err := range errs {
			if err != nil {
				details = append(details, err.Error())
			}
		}

		if len(details) > 0 {
			msg = msg + ": " + strings.Join(details, "; ")
		}
	}

	return &ErrorResponse{status: status, Message: msg}
}
