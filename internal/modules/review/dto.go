package review

import "tutormatch/internal/domain"

type CreateReviewRequest struct {
	BookingID int64  `json:"booking_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment,omitempty"`
}

// ReviewResponse is a created review with both identities resolved for display.
type ReviewResponse struct {
	domain.Review
	ReviewerName string `json:"reviewer_name,omitempty"`
	RevieweeName string `json:"reviewee_name,omitempty"`
}
