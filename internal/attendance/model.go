package attendance

import "time"

// Attendance is one check-in event; CheckOutTime stays nil until the member checks out.
type Attendance struct {
	ID           int        `db:"id" json:"id"`
	MemberID     int        `db:"member_id" json:"member_id"`
	CheckInTime  time.Time  `db:"check_in_time" json:"check_in_time"`
	CheckOutTime *time.Time `db:"check_out_time" json:"check_out_time"`
}

func (a Attendance) Duration() (time.Duration, bool) {
	if a.CheckOutTime == nil {
		return 0, false
	}
	return a.CheckOutTime.Sub(a.CheckInTime), true
}

type CheckInResponse struct {
	Message    string     `json:"message"`
	Attendance Attendance `json:"attendance"`
}
