package domain

import "time"

type BookingStatus string

const (
	BookingRequested BookingStatus = "requested"
	BookingAccepted  BookingStatus = "accepted"
	BookingDeclined  BookingStatus = "declined"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingRequested, BookingAccepted, BookingDeclined, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// ReleasesSlot reports whether entering this status hands the reserved slot
// back to the availability pool.
func (s BookingStatus) ReleasesSlot() bool {
	return s == BookingCancelled || s == BookingDeclined
}

// Booking links a student to a tutor, optionally through a reserved slot.
// Price is nil when the tutor's rate was unknown at creation time and the
// client did not supply one.
type Booking struct {
	ID        int64         `json:"id"`
	TutorID   int64         `json:"tutor_id"`
	StudentID int64         `json:"student_id"`
	SlotID    *int64        `json:"slot_id,omitempty"`
	Status    BookingStatus `json:"status"`
	Price     *float64      `json:"price,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// Participant reports whether userID is the tutor or the student on the booking.
func (b *Booking) Participant(userID int64) bool {
	return b.TutorID == userID || b.StudentID == userID
}

// OtherParticipant resolves the counterparty of userID on the booking.
// The caller must have checked Participant first.
func (b *Booking) OtherParticipant(userID int64) int64 {
	if b.TutorID == userID {
		return b.StudentID
	}
	return b.TutorID
}
