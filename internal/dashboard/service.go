package dashboard

import (
	"context"
	"errors"
	"fmt"

	"gymplace/internal/attendance"
	"gymplace/internal/auth"
	"gymplace/internal/gymclass"
	"gymplace/internal/member"
	"gymplace/internal/registration"
)

const (
	homeRecentMembers   = 5
	dashboardClasses    = 6
	dashboardRegs       = 5
	dashboardCheckIns   = 5
	memberDetailCheckIn = 10
)

type MemberSource interface {
	Get(ctx context.Context, id int) (*member.Member, error)
	ForPrincipal(ctx context.Context, p auth.Principal) (*member.Member, error)
	Recent(ctx context.Context, n int) ([]member.Member, error)
	CountActive(ctx context.Context) (int, error)
}

type ClassSource interface {
	Upcoming(ctx context.Context, n int) ([]gymclass.ScheduleEntry, error)
	CountActive(ctx context.Context) (int, error)
}

type RegistrationSource interface {
	ListForMember(ctx context.Context, memberID int, onlyActive bool, limit int) ([]registration.Registration, error)
}

type AttendanceSource interface {
	Recent(ctx context.Context, memberID int, limit int) ([]attendance.Attendance, error)
}

type Service interface {
	Home(ctx context.Context) (*HomeStats, error)
	Dashboard(ctx context.Context, p auth.Principal) (*Dashboard, error)
	MemberDetail(ctx context.Context, memberID int) (*MemberDetail, error)
}

type service struct {
	members       MemberSource
	classes       ClassSource
	registrations RegistrationSource
	attendance    AttendanceSource
}

func NewService(members MemberSource, classes ClassSource, registrations RegistrationSource, attendance AttendanceSource) Service {
	return &service{
		members:       members,
		classes:       classes,
		registrations: registrations,
		attendance:    attendance,
	}
}

func (s *service) Home(ctx context.Context) (*HomeStats, error) {
	totalMembers, err := s.members.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("count members: %w", err)
	}
	totalClasses, err := s.classes.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("count classes: %w", err)
	}
	recent, err := s.members.Recent(ctx, homeRecentMembers)
	if err != nil {
		return nil, fmt.Errorf("recent members: %w", err)
	}

	return &HomeStats{
		TotalMembers:  totalMembers,
		TotalClasses:  totalClasses,
		RecentMembers: recent,
	}, nil
}

func (s *service) Dashboard(ctx context.Context, p auth.Principal) (*Dashboard, error) {
	classes, err := s.classes.Upcoming(ctx, dashboardClasses)
	if err != nil {
		return nil, fmt.Errorf("load classes: %w", err)
	}

	d := &Dashboard{
		Classes:          classes,
		Registrations:    []registration.Registration{},
		RecentAttendance: []attendance.Attendance{},
	}

	m, err := s.members.ForPrincipal(ctx, p)
	if errors.Is(err, member.ErrNoMemberProfile) {
		return d, nil
	}
	if err != nil {
		return nil, err
	}
	d.Member = m

	if d.Registrations, err = s.registrations.ListForMember(ctx, m.ID, true, dashboardRegs); err != nil {
		return nil, fmt.Errorf("load registrations: %w", err)
	}
	if d.RecentAttendance, err = s.attendance.Recent(ctx, m.ID, dashboardCheckIns); err != nil {
		return nil, fmt.Errorf("load attendance: %w", err)
	}
	return d, nil
}

func (s *service) MemberDetail(ctx context.Context, memberID int) (*MemberDetail, error) {
	m, err := s.members.Get(ctx, memberID)
	if err != nil {
		return nil, err
	}

	regs, err := s.registrations.ListForMember(ctx, m.ID, true, 0)
	if err != nil {
		return nil, fmt.Errorf("load registrations: %w", err)
	}
	visits, err := s.attendance.Recent(ctx, m.ID, memberDetailCheckIn)
	if err != nil {
		return nil, fmt.Errorf("load attendance: %w", err)
	}

	return &MemberDetail{Member: *m, Registrations: regs, Attendance: visits}, nil
}
