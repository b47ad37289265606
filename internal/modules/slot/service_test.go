package slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"tutormatch/internal/domain"
)

type MockSlotRepository struct {
	mock.Mock
}

func (m *MockSlotRepository) Create(ctx context.Context, s *domain.Slot) error {
	args := m.Called(ctx, s)
	if s != nil {
		s.ID = 101 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockSlotRepository) CreateBatch(ctx context.Context, slots []domain.Slot) ([]domain.Slot, error) {
	args := m.Called(ctx, slots)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Slot), args.Error(1)
}

func (m *MockSlotRepository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Slot), args.Error(1)
}

func (m *MockSlotRepository) List(ctx context.Context, tutorID int64, includeBooked bool) ([]domain.Slot, error) {
	args := m.Called(ctx, tutorID, includeBooked)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Slot), args.Error(1)
}

func (m *MockSlotRepository) Update(ctx context.Context, s *domain.Slot) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSlotRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Create_Success(t *testing.T) {
	mockSlots := new(MockSlotRepository)
	mockSlots.On("Create", mock.Anything, mock.Anything).Return(nil)
	service := NewService(mockSlots)

	start := time.Date(2026, 10, 5, 10, 0, 0, 0, time.UTC)
	sl, err := service.Create(context.Background(), 7, CreateSlotRequest{
		Start: start,
		End:   start.Add(time.Hour),
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), sl.TutorID)
	assert.False(t, sl.IsBooked)
	mockSlots.AssertExpectations(t)
}

func TestService_Create_EndBeforeStart(t *testing.T) {
	service := NewService(new(MockSlotRepository))

	start := time.Date(2026, 10, 5, 10, 0, 0, 0, time.UTC)
	_, err := service.Create(context.Background(), 7, CreateSlotRequest{
		Start: start,
		End:   start.Add(-time.Hour),
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateBulk_WeeklyExpansion(t *testing.T) {
	mockSlots := new(MockSlotRepository)
	var captured []domain.Slot
	mockSlots.On("CreateBatch", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).([]domain.Slot)
		}).
		Return([]domain.Slot{}, nil)
	service := NewService(mockSlots)

	// Monday 2026-10-05, 14:00-15:30 template over two weeks.
	template := time.Date(2026, 10, 5, 14, 0, 0, 0, time.UTC)
	_, err := service.CreateBulk(context.Background(), 7, BulkCreateRequest{
		Slots:     []Window{{Start: template, End: template.Add(90 * time.Minute)}},
		StartDate: "2026-10-05",
		EndDate:   "2026-10-18",
	})

	assert.NoError(t, err)
	assert.Len(t, captured, 2)
	assert.Equal(t, time.Monday, captured[0].Start.Weekday())
	assert.Equal(t, time.Monday, captured[1].Start.Weekday())
	assert.Equal(t, 14, captured[0].Start.Hour())
	assert.Equal(t, 90*time.Minute, captured[1].End.Sub(captured[1].Start))
	assert.Equal(t, captured[0].Start.AddDate(0, 0, 7), captured[1].Start)
}

func TestService_CreateBulk_NoDateRangeInsertsAsGiven(t *testing.T) {
	mockSlots := new(MockSlotRepository)
	mockSlots.On("CreateBatch", mock.Anything, mock.Anything).Return([]domain.Slot{}, nil)
	service := NewService(mockSlots)

	start := time.Date(2026, 10, 5, 14, 0, 0, 0, time.UTC)
	_, err := service.CreateBulk(context.Background(), 7, BulkCreateRequest{
		Slots: []Window{
			{Start: start, End: start.Add(time.Hour)},
			{Start: start.Add(2 * time.Hour), End: start.Add(3 * time.Hour)},
		},
	})

	assert.NoError(t, err)
	mockSlots.AssertCalled(t, "CreateBatch", mock.Anything, mock.MatchedBy(func(slots []domain.Slot) bool {
		return len(slots) == 2
	}))
}

func TestService_CreateBulk_InvalidDate(t *testing.T) {
	service := NewService(new(MockSlotRepository))

	start := time.Date(2026, 10, 5, 14, 0, 0, 0, time.UTC)
	_, err := service.CreateBulk(context.Background(), 7, BulkCreateRequest{
		Slots:     []Window{{Start: start, End: start.Add(time.Hour)}},
		StartDate: "05-10-2026",
		EndDate:   "2026-10-18",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateBulk_EmptyBatch(t *testing.T) {
	service := NewService(new(MockSlotRepository))

	_, err := service.CreateBulk(context.Background(), 7, BulkCreateRequest{})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Update_Forbidden(t *testing.T) {
	mockSlots := new(MockSlotRepository)
	mockSlots.On("GetByID", mock.Anything, int64(101)).Return(&domain.Slot{ID: 101, TutorID: 7}, nil)
	service := NewService(mockSlots)

	_, err := service.Update(context.Background(), 101, 8, UpdateSlotRequest{})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Update_NotFound(t *testing.T) {
	mockSlots := new(MockSlotRepository)
	mockSlots.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)
	service := NewService(mockSlots)

	_, err := service.Update(context.Background(), 404, 7, UpdateSlotRequest{})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete_BookedSlot(t *testing.T) {
	mockSlots := new(MockSlotRepository)
	mockSlots.On("GetByID", mock.Anything, int64(101)).Return(&domain.Slot{ID: 101, TutorID: 7, IsBooked: true}, nil)
	service := NewService(mockSlots)

	err := service.Delete(context.Background(), 101, 7)

	assert.ErrorIs(t, err, ErrSlotBooked)
	mockSlots.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_Delete_Success(t *testing.T) {
	mockSlots := new(MockSlotRepository)
	mockSlots.On("GetByID", mock.Anything, int64(101)).Return(&domain.Slot{ID: 101, TutorID: 7}, nil)
	mockSlots.On("Delete", mock.Anything, int64(101)).Return(nil)
	service := NewService(mockSlots)

	err := service.Delete(context.Background(), 101, 7)

	assert.NoError(t, err)
	mockSlots.AssertExpectations(t)
}
