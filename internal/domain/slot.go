package domain

import "time"

// Slot is a tutor's bookable window of time. IsBooked flips exactly once
// per reservation; releasing a booking flips it back.
type Slot struct {
	ID       int64     `json:"id"`
	TutorID  int64     `json:"tutor_id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	IsBooked bool      `json:"is_booked"`
}
