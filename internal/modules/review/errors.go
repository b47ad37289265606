package review

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not_found")
	ErrNotCompleted = errors.New("booking_not_completed")
	ErrDuplicate    = errors.New("review_already_exists")
)
