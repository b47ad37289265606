package booking

import (
	"context"
	"errors"
	"math"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"tutormatch/internal/domain"
	"tutormatch/internal/repository"
)

type Service struct {
	bookings BookingRepository
	slots    SlotStore
	users    UserDirectory
	profiles RateSource
	log      *zap.Logger
}

func NewService(bookings BookingRepository, slots SlotStore, users UserDirectory, profiles RateSource, log *zap.Logger) *Service {
	return &Service{
		bookings: bookings,
		slots:    slots,
		users:    users,
		profiles: profiles,
		log:      log,
	}
}

// CreateBooking reserves the slot first, then persists the booking. The two
// writes are separate statements, so a persist failure after a successful
// reserve is compensated by releasing the slot again.
func (s *Service) CreateBooking(ctx context.Context, studentID int64, req CreateBookingRequest) (*domain.Booking, error) {
	tutor, err := s.users.GetByID(ctx, req.TutorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidTutor
		}
		return nil, err
	}
	if tutor.Role != domain.RoleTutor {
		return nil, ErrInvalidTutor
	}

	sl, err := s.slots.Reserve(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, ErrSlotUnavailable
		}
		return nil, err
	}

	price := req.Price
	if price == nil {
		price = s.derivePrice(ctx, req.TutorID, sl)
	}

	slotID := sl.ID
	b := &domain.Booking{
		TutorID:   req.TutorID,
		StudentID: studentID,
		SlotID:    &slotID,
		Status:    domain.BookingRequested,
		Price:     price,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if relErr := s.slots.Release(ctx, sl.ID); relErr != nil {
			s.log.Error("failed to release slot after booking persist failure",
				zap.Int64("slot_id", sl.ID),
				zap.Error(relErr),
			)
		}
		return nil, err
	}

	return b, nil
}

// derivePrice computes hourly rate times slot duration, rounded to cents.
// A missing profile or unset rate leaves the price undefined rather than
// failing the booking.
func (s *Service) derivePrice(ctx context.Context, tutorID int64, sl *domain.Slot) *float64 {
	profile, err := s.profiles.GetByUserID(ctx, tutorID)
	if err != nil || profile.HourlyRate <= 0 {
		return nil
	}

	hours := sl.End.Sub(sl.Start).Hours()
	total := math.Round(profile.HourlyRate*hours*100) / 100
	return &total
}

// ListMyBookings filters by the tutor side for tutor-role callers and by the
// student side for everyone else, newest first.
func (s *Service) ListMyBookings(ctx context.Context, userID int64, role string) ([]repository.BookingRow, error) {
	asTutor := role == string(domain.RoleTutor)
	return s.bookings.ListForUser(ctx, userID, asTutor)
}

// UpdateStatus sets any valid status value on behalf of either participant;
// no transition graph is enforced. Entering cancelled or declined releases
// the reserved slot best-effort: a release failure is logged and the status
// update still succeeds.
func (s *Service) UpdateStatus(ctx context.Context, bookingID, actorID int64, rawStatus string) (*domain.Booking, error) {
	status := domain.BookingStatus(rawStatus)
	if !status.Valid() {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !b.Participant(actorID) {
		return nil, ErrForbidden
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	b.Status = status

	if status.ReleasesSlot() && b.SlotID != nil {
		if err := s.slots.Release(ctx, *b.SlotID); err != nil {
			s.log.Warn("failed to release slot for terminal booking",
				zap.Int64("booking_id", bookingID),
				zap.Int64("slot_id", *b.SlotID),
				zap.Error(err),
			)
		}
	}

	return b, nil
}
