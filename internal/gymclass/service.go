package gymclass

import (
	"context"
	"errors"
	"strings"

	"gymplace/internal/auth"
	"gymplace/internal/instructor"
	"gymplace/internal/logger"
	"gymplace/internal/member"
	"gymplace/internal/registration"
)

var ErrClassNotFound = errors.New("class not found")

type Service interface {
	Schedule(ctx context.Context) ([]ScheduleEntry, error)
	Upcoming(ctx context.Context, n int) ([]ScheduleEntry, error)
	Detail(ctx context.Context, id int, viewer *auth.Principal) (*ClassDetail, error)
	Create(ctx context.Context, req ClassRequest) (*GymClass, error)
	Update(ctx context.Context, id int, req ClassRequest) (*GymClass, error)
	Activate(ctx context.Context, id int) error
	Deactivate(ctx context.Context, id int) error
	CountActive(ctx context.Context) (int, error)
}

type InstructorFinder interface {
	FindByName(ctx context.Context, name string) (*instructor.Instructor, error)
}

type Roster interface {
	ListForClass(ctx context.Context, classID int, onlyActive bool) ([]registration.Registration, error)
	IsRegistered(ctx context.Context, memberID, classID int) (bool, error)
}

type MemberResolver interface {
	ForPrincipal(ctx context.Context, p auth.Principal) (*member.Member, error)
}

type service struct {
	repo        Repository
	instructors InstructorFinder
	roster      Roster
	members     MemberResolver
}

func NewService(repo Repository, instructors InstructorFinder, roster Roster, members MemberResolver) Service {
	return &service{
		repo:        repo,
		instructors: instructors,
		roster:      roster,
		members:     members,
	}
}

func (s *service) Schedule(ctx context.Context) ([]ScheduleEntry, error) {
	return s.Upcoming(ctx, 0)
}

// Upcoming returns the first n active classes in weekly order; n <= 0 returns all.
func (s *service) Upcoming(ctx context.Context, n int) ([]ScheduleEntry, error) {
	classes, err := s.repo.ListActiveWithCounts(ctx, n)
	if err != nil {
		return nil, err
	}

	profiles := map[string]*instructor.Instructor{}
	entries := make([]ScheduleEntry, 0, len(classes))
	for _, c := range classes {
		profile, ok := profiles[c.Instructor]
		if !ok {
			profile, err = s.findInstructor(ctx, c.Instructor)
			if err != nil {
				return nil, err
			}
			profiles[c.Instructor] = profile
		}
		entries = append(entries, toEntry(c, profile))
	}
	return entries, nil
}

func toEntry(c ClassWithCount, profile *instructor.Instructor) ScheduleEntry {
	return ScheduleEntry{
		ClassWithCount:    c,
		Day:               DayName(c.DayOfWeek),
		SpotsAvailable:    c.Remaining(),
		InstructorProfile: profile,
	}
}

// findInstructor returns nil when the class names an instructor without a profile.
func (s *service) findInstructor(ctx context.Context, name string) (*instructor.Instructor, error) {
	profile, err := s.instructors.FindByName(ctx, name)
	if errors.Is(err, instructor.ErrInstructorNotFound) {
		return nil, nil
	}
	return profile, err
}

func (s *service) Detail(ctx context.Context, id int, viewer *auth.Principal) (*ClassDetail, error) {
	c, err := s.repo.GetWithCount(ctx, id)
	if err != nil {
		return nil, err
	}

	isAdmin := viewer != nil && viewer.IsAdmin()
	if c.Status != StatusActive && !isAdmin {
		return nil, ErrClassNotFound
	}

	profile, err := s.findInstructor(ctx, c.Instructor)
	if err != nil {
		return nil, err
	}

	detail := &ClassDetail{ScheduleEntry: toEntry(*c, profile)}

	if viewer != nil {
		m, err := s.members.ForPrincipal(ctx, *viewer)
		switch {
		case err == nil:
			detail.IsRegistered, err = s.roster.IsRegistered(ctx, m.ID, id)
			if err != nil {
				return nil, err
			}
		case !errors.Is(err, member.ErrNoMemberProfile):
			return nil, err
		}
	}

	if isAdmin {
		detail.Registrations, err = s.roster.ListForClass(ctx, id, true)
		if err != nil {
			return nil, err
		}
	}

	return detail, nil
}

func fromRequest(req ClassRequest) *GymClass {
	return &GymClass{
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		Instructor:      strings.TrimSpace(req.Instructor),
		DayOfWeek:       *req.DayOfWeek,
		StartTime:       *req.StartTime,
		DurationMinutes: req.DurationMinutes,
		Capacity:        *req.Capacity,
	}
}

func (s *service) Create(ctx context.Context, req ClassRequest) (*GymClass, error) {
	c, err := s.repo.Create(ctx, fromRequest(req))
	if err != nil {
		return nil, err
	}
	logger.Info("class created", "class_id", c.ID, "day", DayName(c.DayOfWeek), "start_time", c.StartTime.String())
	return c, nil
}

// Update may lower capacity below the current active count; existing
// registrations are kept and new ones are refused until spots free up.
func (s *service) Update(ctx context.Context, id int, req ClassRequest) (*GymClass, error) {
	return s.repo.Update(ctx, id, fromRequest(req))
}

func (s *service) Activate(ctx context.Context, id int) error {
	return s.repo.SetStatus(ctx, id, StatusActive)
}

func (s *service) Deactivate(ctx context.Context, id int) error {
	return s.repo.SetStatus(ctx, id, StatusInactive)
}

func (s *service) CountActive(ctx context.Context) (int, error) {
	return s.repo.CountActive(ctx)
}
