package repository

import "errors"

// ErrSlotTaken is returned by the reserve path when the conditional update
// matched no row: the slot is either already booked or does not exist.
var ErrSlotTaken = errors.New("slot already booked or missing")
