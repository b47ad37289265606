package slot

import "time"

type CreateSlotRequest struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required"`
}

// Window is one availability entry in a bulk request. With a date range set
// on the request, the window acts as a weekly template: it is replicated on
// every date in the range that falls on the window's weekday.
type Window struct {
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required"`
}

type BulkCreateRequest struct {
	Slots     []Window `json:"slots" binding:"required"`
	StartDate string   `json:"start_date,omitempty"`
	EndDate   string   `json:"end_date,omitempty"`
}

type UpdateSlotRequest struct {
	Start    *time.Time `json:"start,omitempty"`
	End      *time.Time `json:"end,omitempty"`
	IsBooked *bool      `json:"is_booked,omitempty"`
}
