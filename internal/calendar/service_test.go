package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"gymplace/internal/db"
	"gymplace/internal/event"
	"gymplace/internal/specialhours"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEvents struct {
	mock.Mock
}

func (m *MockEvents) Upcoming(ctx context.Context, today db.Date, limit int) ([]event.Event, error) {
	args := m.Called(ctx, today, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]event.Event), args.Error(1)
}

func (m *MockEvents) Between(ctx context.Context, from, to db.Date) ([]event.Event, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]event.Event), args.Error(1)
}

type MockHours struct {
	mock.Mock
}

func (m *MockHours) Upcoming(ctx context.Context, today db.Date, limit int) ([]specialhours.SpecialHours, error) {
	args := m.Called(ctx, today, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]specialhours.SpecialHours), args.Error(1)
}

func (m *MockHours) Between(ctx context.Context, from, to db.Date) ([]specialhours.SpecialHours, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]specialhours.SpecialHours), args.Error(1)
}

func TestMonth_FetchesGridRangeOnce(t *testing.T) {
	ctx := context.Background()
	from, to := db.NewDate(2025, time.November, 30), db.NewDate(2026, time.January, 3)

	events := new(MockEvents)
	events.On("Between", ctx, from, to).Return([]event.Event{{ID: 1, Date: db.NewDate(2025, time.November, 30)}}, nil).Once()
	hours := new(MockHours)
	hours.On("Between", ctx, from, to).Return([]specialhours.SpecialHours{}, nil).Once()

	m, err := NewService(events, hours).Month(ctx, 2025, 12, db.NewDate(2025, time.December, 1))
	require.NoError(t, err)
	assert.Len(t, m.Weeks[0][0].Events, 1)
	events.AssertExpectations(t)
	hours.AssertExpectations(t)
}

func TestMonth_Invalid(t *testing.T) {
	svc := NewService(new(MockEvents), new(MockHours))

	for _, ym := range [][2]int{{2025, 0}, {2025, 13}, {0, 5}, {10000, 1}} {
		_, err := svc.Month(context.Background(), ym[0], ym[1], db.Date{})
		assert.ErrorIs(t, err, ErrInvalidMonth)
	}
}

func TestInfo(t *testing.T) {
	ctx := context.Background()
	today := db.NewDate(2026, time.February, 10)

	events := new(MockEvents)
	events.On("Between", ctx, mock.Anything, mock.Anything).Return([]event.Event{}, nil)
	events.On("Upcoming", ctx, today, 10).Return([]event.Event{{ID: 5, Title: "Spin-a-thon"}}, nil)
	hours := new(MockHours)
	hours.On("Between", ctx, mock.Anything, mock.Anything).Return([]specialhours.SpecialHours{}, nil)
	hours.On("Upcoming", ctx, today, 10).Return([]specialhours.SpecialHours{}, nil)

	info, err := NewService(events, hours).Info(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, 2, info.Calendar.Month)
	assert.Len(t, info.Calendar.Weeks, 4)
	assert.Len(t, info.UpcomingEvents, 1)
	assert.Len(t, info.RegularHours, 3)
	assert.Equal(t, "5:00 AM - 11:00 PM", info.RegularHours[0].Hours)
}

func TestInfo_StoreError(t *testing.T) {
	ctx := context.Background()
	events := new(MockEvents)
	events.On("Between", ctx, mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := NewService(events, new(MockHours)).Info(ctx, db.NewDate(2026, time.February, 10))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidMonth)
}
