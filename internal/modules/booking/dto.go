package booking

type CreateBookingRequest struct {
	TutorID int64    `json:"tutor_id" binding:"required"`
	SlotID  int64    `json:"slot_id" binding:"required"`
	Price   *float64 `json:"price,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
