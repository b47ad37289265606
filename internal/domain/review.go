package domain

import "time"

// Review is immutable once created. At most one exists per
// (BookingID, ReviewerID) pair, enforced by a unique index.
type Review struct {
	ID         int64     `json:"id"`
	BookingID  int64     `json:"booking_id"`
	ReviewerID int64     `json:"reviewer_id"`
	RevieweeID int64     `json:"reviewee_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
