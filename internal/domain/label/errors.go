package label

import "errors"

var (
	// ErrLabelNotFound indicates the label doesn't exist.
	ErrLabelNotFound = errors.New("label not found")
	// ErrInvalidInput indicates invalid input for label operations.
	ErrInvalidInput = errors.New("invalid label input")
)
