package gymclass

import (
	"context"
	"testing"

	"gymplace/internal/auth"
	"gymplace/internal/instructor"
	"gymplace/internal/member"
	"gymplace/internal/registration"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, c *GymClass) (*GymClass, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*GymClass), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int, c *GymClass) (*GymClass, error) {
	args := m.Called(ctx, id, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*GymClass), args.Error(1)
}

func (m *MockRepository) GetWithCount(ctx context.Context, id int) (*ClassWithCount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ClassWithCount), args.Error(1)
}

func (m *MockRepository) ListActiveWithCounts(ctx context.Context, limit int) ([]ClassWithCount, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ClassWithCount), args.Error(1)
}

func (m *MockRepository) SetStatus(ctx context.Context, id int, status Status) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockRepository) CountActive(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockInstructors struct {
	mock.Mock
}

func (m *MockInstructors) FindByName(ctx context.Context, name string) (*instructor.Instructor, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*instructor.Instructor), args.Error(1)
}

type MockRoster struct {
	mock.Mock
}

func (m *MockRoster) ListForClass(ctx context.Context, classID int, onlyActive bool) ([]registration.Registration, error) {
	args := m.Called(ctx, classID, onlyActive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]registration.Registration), args.Error(1)
}

func (m *MockRoster) IsRegistered(ctx context.Context, memberID, classID int) (bool, error) {
	args := m.Called(ctx, memberID, classID)
	return args.Bool(0), args.Error(1)
}

type MockMembers struct {
	mock.Mock
}

func (m *MockMembers) ForPrincipal(ctx context.Context, p auth.Principal) (*member.Member, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*member.Member), args.Error(1)
}

type mocks struct {
	repo        *MockRepository
	instructors *MockInstructors
	roster      *MockRoster
	members     *MockMembers
}

func newMocks() mocks {
	return mocks{new(MockRepository), new(MockInstructors), new(MockRoster), new(MockMembers)}
}

func (m mocks) service() Service {
	return NewService(m.repo, m.instructors, m.roster, m.members)
}

func class(id int, name, instr string, capacity, active int) ClassWithCount {
	return ClassWithCount{
		GymClass:            GymClass{ID: id, Name: name, Instructor: instr, Capacity: capacity, Status: StatusActive},
		ActiveRegistrations: active,
	}
}

func TestSchedule_LooksUpEachInstructorOnce(t *testing.T) {
	m := newMocks()
	m.repo.On("ListActiveWithCounts", mock.Anything, 0).Return([]ClassWithCount{
		class(1, "Morning Yoga", "Sarah Johnson", 20, 5),
		class(2, "Evening Yoga", "Sarah Johnson", 20, 20),
		class(3, "Open Gym", "Guest Coach", 10, 0),
	}, nil)
	m.instructors.On("FindByName", mock.Anything, "Sarah Johnson").Return(&instructor.Instructor{ID: 1, Name: "Sarah Johnson"}, nil).Once()
	m.instructors.On("FindByName", mock.Anything, "Guest Coach").Return(nil, instructor.ErrInstructorNotFound).Once()

	entries, err := m.service().Schedule(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, 15, entries[0].SpotsAvailable)
	assert.Equal(t, 0, entries[1].SpotsAvailable)
	require.NotNil(t, entries[0].InstructorProfile)
	assert.Same(t, entries[0].InstructorProfile, entries[1].InstructorProfile)
	assert.Nil(t, entries[2].InstructorProfile, "free-text instructor names have no profile")
	m.instructors.AssertExpectations(t)
}

func TestDetail(t *testing.T) {
	alice := auth.Principal{UserID: 4, Role: auth.RoleMember}
	admin := auth.Principal{UserID: 1, Role: auth.RoleAdmin}

	t.Run("anonymous", func(t *testing.T) {
		m := newMocks()
		c := class(7, "Spin", "Mike Chen", 20, 3)
		m.repo.On("GetWithCount", mock.Anything, 7).Return(&c, nil)
		m.instructors.On("FindByName", mock.Anything, "Mike Chen").Return(nil, instructor.ErrInstructorNotFound)

		d, err := m.service().Detail(context.Background(), 7, nil)
		require.NoError(t, err)
		assert.False(t, d.IsRegistered)
		assert.Equal(t, 17, d.SpotsAvailable)
		assert.Nil(t, d.Registrations)
	})

	t.Run("registered member", func(t *testing.T) {
		m := newMocks()
		c := class(7, "Spin", "Mike Chen", 20, 3)
		m.repo.On("GetWithCount", mock.Anything, 7).Return(&c, nil)
		m.instructors.On("FindByName", mock.Anything, "Mike Chen").Return(nil, instructor.ErrInstructorNotFound)
		m.members.On("ForPrincipal", mock.Anything, alice).Return(&member.Member{ID: 10}, nil)
		m.roster.On("IsRegistered", mock.Anything, 10, 7).Return(true, nil)

		d, err := m.service().Detail(context.Background(), 7, &alice)
		require.NoError(t, err)
		assert.True(t, d.IsRegistered)
		m.roster.AssertNotCalled(t, "ListForClass", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("admin without member profile sees roster of inactive class", func(t *testing.T) {
		m := newMocks()
		c := class(7, "Spin", "Mike Chen", 20, 1)
		c.Status = StatusInactive
		m.repo.On("GetWithCount", mock.Anything, 7).Return(&c, nil)
		m.instructors.On("FindByName", mock.Anything, "Mike Chen").Return(nil, instructor.ErrInstructorNotFound)
		m.members.On("ForPrincipal", mock.Anything, admin).Return(nil, member.ErrNoMemberProfile)
		m.roster.On("ListForClass", mock.Anything, 7, true).Return([]registration.Registration{{ID: 100, MemberName: "Ann Lee"}}, nil)

		d, err := m.service().Detail(context.Background(), 7, &admin)
		require.NoError(t, err)
		assert.False(t, d.IsRegistered)
		assert.Len(t, d.Registrations, 1)
	})

	t.Run("inactive class hidden from members", func(t *testing.T) {
		m := newMocks()
		c := class(7, "Spin", "Mike Chen", 20, 1)
		c.Status = StatusInactive
		m.repo.On("GetWithCount", mock.Anything, 7).Return(&c, nil)

		_, err := m.service().Detail(context.Background(), 7, &alice)
		assert.ErrorIs(t, err, ErrClassNotFound)
	})
}

func TestCreateClass_TrimsNames(t *testing.T) {
	m := newMocks()
	day, capacity := 5, 0
	start := dbTime(9, 30)
	m.repo.On("Create", mock.Anything, mock.MatchedBy(func(c *GymClass) bool {
		return c.Name == "Saturday Bootcamp" && c.Instructor == "Mike Chen" && c.DayOfWeek == 5 && c.Capacity == 0
	})).Return(&GymClass{ID: 3, DayOfWeek: 5, StartTime: start}, nil)

	c, err := m.service().Create(context.Background(), ClassRequest{
		Name: " Saturday Bootcamp ", Description: "Outdoor", Instructor: "Mike Chen ",
		DayOfWeek: &day, StartTime: &start, DurationMinutes: 45, Capacity: &capacity,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, c.ID)
}
