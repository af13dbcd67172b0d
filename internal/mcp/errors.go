package mcp

import (
	"errors"
	"fmt"

	"github.com/yanchr/history-arrow-2/internal/domain/event"
	"github.com/yanchr/history-arrow-2/internal/domain/label"
)

// APIError represents a tool error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// CodeValue exposes the code to transports without a struct dependency.
func (e *APIError) CodeValue() string {
	return e.Code
}

// MapError maps domain errors to tool error codes. Unknown errors map to
// nil so the caller can pass them through unchanged.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, event.ErrEventNotFound):
		return &APIError{Code: "EVENT_NOT_FOUND", Message: "event not found", RecoveryHint: "Check ID spelling"}
	case errors.Is(err, event.ErrInvalidDates):
		return &APIError{Code: "INVALID_DATES", Message: err.Error(), RecoveryHint: "Provide exactly one date representation"}
	case errors.Is(err, event.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	case errors.Is(err, label.ErrLabelNotFound):
		return &APIError{Code: "LABEL_NOT_FOUND", Message: "label not found"}
	case errors.Is(err, label.ErrInvalidInput):
		return &APIError{Code: "INVALID_LABEL", Message: err.Error(), RecoveryHint: "Labels need a name and a #rrggbb color"}
	default:
		return nil
	}
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
