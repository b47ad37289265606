package directory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tutormatch/internal/domain"
	"tutormatch/internal/repository"
)

type MockUserSource struct {
	mock.Mock
}

func (m *MockUserSource) ListByRole(ctx context.Context, role domain.Role, nameQuery string) ([]domain.User, error) {
	args := m.Called(ctx, role, nameQuery)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

type MockProfileSource struct {
	mock.Mock
}

func (m *MockProfileSource) GetByUserIDs(ctx context.Context, userIDs []int64) (map[int64]domain.TutorProfile, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.TutorProfile), args.Error(1)
}

type MockRatingSource struct {
	mock.Mock
}

func (m *MockRatingSource) AggregateForUsers(ctx context.Context, userIDs []int64) (map[int64]repository.RatingAgg, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]repository.RatingAgg), args.Error(1)
}

func TestService_ListTutors_JoinsProfileAndRating(t *testing.T) {
	users := new(MockUserSource)
	profiles := new(MockProfileSource)
	ratings := new(MockRatingSource)
	service := NewService(users, profiles, ratings)

	users.On("ListByRole", mock.Anything, domain.RoleTutor, "").Return([]domain.User{
		{ID: 1, Name: "Alex Kim", Role: domain.RoleTutor},
		{ID: 2, Name: "Priya Patel", Role: domain.RoleTutor},
	}, nil)
	profiles.On("GetByUserIDs", mock.Anything, []int64{1, 2}).Return(map[int64]domain.TutorProfile{
		1: {UserID: 1, HourlyRate: 30, Subjects: []string{"CIS4301"}, YearsExperience: 4},
	}, nil)
	ratings.On("AggregateForUsers", mock.Anything, []int64{1, 2}).Return(map[int64]repository.RatingAgg{
		1: {RevieweeID: 1, AvgRating: 4.6667, Total: 3},
	}, nil)

	cards, err := service.ListTutors(context.Background(), "")

	assert.NoError(t, err)
	assert.Len(t, cards, 2)

	assert.Equal(t, "Alex Kim", cards[0].Name)
	assert.Equal(t, 30.0, cards[0].HourlyRate)
	assert.NotNil(t, cards[0].Rating)
	assert.Equal(t, 4.7, *cards[0].Rating)
	assert.Equal(t, int64(3), cards[0].TotalReviews)

	// No profile and no reviews: rating stays null, not zero.
	assert.Nil(t, cards[1].Rating)
	assert.Equal(t, int64(0), cards[1].TotalReviews)
}

func TestService_ListTutors_PassesNameQuery(t *testing.T) {
	users := new(MockUserSource)
	profiles := new(MockProfileSource)
	ratings := new(MockRatingSource)
	service := NewService(users, profiles, ratings)

	users.On("ListByRole", mock.Anything, domain.RoleTutor, "kim").Return([]domain.User{}, nil)
	profiles.On("GetByUserIDs", mock.Anything, []int64{}).Return(map[int64]domain.TutorProfile{}, nil)
	ratings.On("AggregateForUsers", mock.Anything, []int64{}).Return(map[int64]repository.RatingAgg{}, nil)

	cards, err := service.ListTutors(context.Background(), "kim")

	assert.NoError(t, err)
	assert.Empty(t, cards)
	users.AssertExpectations(t)
}
