package errors

import "errors"

var (
	ErrNotFound  = errors.New("booking inquiry not found")
	ErrInvalidID = errors.New("invalid booking inquiry id")
)
