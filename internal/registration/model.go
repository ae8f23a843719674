package registration

import (
	"time"

	"gymplace/internal/db"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

// Outcome describes what a successful register call did.
type Outcome string

const (
	OutcomeRegistered        Outcome = "registered"
	OutcomeReregistered      Outcome = "reregistered"
	OutcomeAlreadyRegistered Outcome = "already_registered"
)

// Registration is unique per (member, class). The joined fields are filled
// by list queries only.
type Registration struct {
	ID           int       `db:"id" json:"id"`
	MemberID     int       `db:"member_id" json:"member_id"`
	ClassID      int       `db:"class_id" json:"class_id"`
	RegisteredAt time.Time `db:"registered_at" json:"registered_at"`
	Status       Status    `db:"status" json:"status"`
	Attended     bool      `db:"attended" json:"attended"`

	MemberName     string        `db:"member_name" json:"member_name,omitempty"`
	ClassName      string        `db:"class_name" json:"class_name,omitempty"`
	ClassDayOfWeek *int          `db:"class_day_of_week" json:"class_day_of_week,omitempty"`
	ClassStartTime *db.TimeOfDay `db:"class_start_time" json:"class_start_time,omitempty" swaggertype:"string" example:"07:00"`
}

func (r Registration) IsActive() bool {
	return r.Status == StatusActive
}

type RegisterResponse struct {
	Outcome      Outcome      `json:"outcome"`
	Message      string       `json:"message"`
	Registration Registration `json:"registration"`
}

type AttendedRequest struct {
	Attended *bool `json:"attended" binding:"required"`
}
