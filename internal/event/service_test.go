package event

import (
	"context"
	"testing"
	"time"

	"gymplace/internal/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, e *Event) (*Event, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Event), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int, e *Event) (*Event, error) {
	args := m.Called(ctx, id, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Event), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int) (*Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Event), args.Error(1)
}

func (m *MockRepository) SetStatus(ctx context.Context, id int, status Status) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockRepository) ListUpcoming(ctx context.Context, from db.Date, limit int) ([]Event, error) {
	args := m.Called(ctx, from, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Event), args.Error(1)
}

func (m *MockRepository) ListBetween(ctx context.Context, from, to db.Date) ([]Event, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Event), args.Error(1)
}

func request(start, end db.TimeOfDay) EventRequest {
	date := db.NewDate(2025, time.December, 20)
	return EventRequest{Title: " Bootcamp ", Date: &date, StartTime: &start, EndTime: &end}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults type", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(e *Event) bool {
			return e.EventType == TypeEvent && e.Title == "Bootcamp"
		})).Return(&Event{ID: 1}, nil)

		e, err := NewService(repo).Create(ctx, request(db.TimeOfDay{Hour: 10}, db.TimeOfDay{Hour: 12}))
		require.NoError(t, err)
		assert.Equal(t, 1, e.ID)
	})

	t.Run("end before start", func(t *testing.T) {
		repo := new(MockRepository)

		_, err := NewService(repo).Create(ctx, request(db.TimeOfDay{Hour: 12}, db.TimeOfDay{Hour: 10}))
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUpcoming_DefaultLimit(t *testing.T) {
	today := db.NewDate(2025, time.December, 1)
	repo := new(MockRepository)
	repo.On("ListUpcoming", mock.Anything, today, DefaultUpcoming).Return([]Event{}, nil)

	_, err := NewService(repo).Upcoming(context.Background(), today, 0)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestBetween_EmptyRange(t *testing.T) {
	repo := new(MockRepository)

	events, err := NewService(repo).Between(context.Background(), db.NewDate(2025, 2, 1), db.NewDate(2025, 1, 1))
	require.NoError(t, err)
	assert.Empty(t, events)
	repo.AssertNotCalled(t, "ListBetween", mock.Anything, mock.Anything, mock.Anything)
}
