package apperr

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalid      = errors.New("invalid input")
	ErrNotConfirmed = errors.New("confirmation required")
)
