package dashboard

import (
	"gymplace/internal/attendance"
	"gymplace/internal/gymclass"
	"gymplace/internal/member"
	"gymplace/internal/registration"
)

type HomeStats struct {
	TotalMembers  int             `json:"total_members"`
	TotalClasses  int             `json:"total_classes"`
	RecentMembers []member.Member `json:"recent_members"`
}

// Dashboard is the signed-in member's overview. Member is null when the
// account has no member profile; the class list is still filled.
type Dashboard struct {
	Member           *member.Member              `json:"member"`
	Classes          []gymclass.ScheduleEntry    `json:"classes"`
	Registrations    []registration.Registration `json:"registrations"`
	RecentAttendance []attendance.Attendance     `json:"recent_attendance"`
}

type MemberDetail struct {
	Member        member.Member               `json:"member"`
	Registrations []registration.Registration `json:"registrations"`
	Attendance    []attendance.Attendance     `json:"attendance"`
}
