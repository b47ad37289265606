package booking

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not_found")
	ErrInvalidTutor    = errors.New("invalid_tutor_reference")
	ErrSlotUnavailable = errors.New("slot_unavailable")
)
