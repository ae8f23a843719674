package gymclass

import (
	"gymplace/internal/db"
	"gymplace/internal/instructor"
	"gymplace/internal/registration"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Day numbering starts at Monday = 0.
var dayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func DayName(day int) string {
	if day < 0 || day >= len(dayNames) {
		return ""
	}
	return dayNames[day]
}

type GymClass struct {
	ID              int          `db:"id" json:"id"`
	Name            string       `db:"name" json:"name"`
	Description     string       `db:"description" json:"description"`
	Instructor      string       `db:"instructor" json:"instructor"`
	DayOfWeek       int          `db:"day_of_week" json:"day_of_week"`
	StartTime       db.TimeOfDay `db:"start_time" json:"start_time" swaggertype:"string" example:"07:00"`
	DurationMinutes int          `db:"duration_minutes" json:"duration_minutes"`
	Capacity        int          `db:"capacity" json:"capacity"`
	Status          Status       `db:"status" json:"status"`
}

// ClassWithCount is a class plus its active registration count.
type ClassWithCount struct {
	GymClass
	ActiveRegistrations int `db:"active_registrations" json:"active_registrations"`
}

func (c ClassWithCount) Remaining() int {
	spots := c.Capacity - c.ActiveRegistrations
	if spots < 0 {
		return 0
	}
	return spots
}

type ScheduleEntry struct {
	ClassWithCount
	Day               string                 `json:"day"`
	SpotsAvailable    int                    `json:"spots_available"`
	InstructorProfile *instructor.Instructor `json:"instructor_profile,omitempty"`
}

type ClassDetail struct {
	ScheduleEntry
	IsRegistered  bool                        `json:"is_registered"`
	Registrations []registration.Registration `json:"registrations,omitempty"`
}

type ClassRequest struct {
	Name            string        `json:"name" binding:"required,max=100"`
	Description     string        `json:"description" binding:"required"`
	Instructor      string        `json:"instructor" binding:"required,max=100"`
	DayOfWeek       *int          `json:"day_of_week" binding:"required,gte=0,lte=6"`
	StartTime       *db.TimeOfDay `json:"start_time" binding:"required" swaggertype:"string" example:"07:00"`
	DurationMinutes int           `json:"duration_minutes" binding:"required,gt=0,lte=600"`
	Capacity        *int          `json:"capacity" binding:"required,gte=0,lte=1000"`
}
