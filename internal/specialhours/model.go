package specialhours

import "gymplace/internal/db"

type ClosureType string

const (
	ClosureHoliday  ClosureType = "holiday"
	ClosureClosure  ClosureType = "closure"
	ClosureModified ClosureType = "modified"
)

func (t ClosureType) Valid() bool {
	switch t {
	case ClosureHoliday, ClosureClosure, ClosureModified:
		return true
	}
	return false
}

// SpecialHours overrides the regular opening hours on one date.
// OpenTime and CloseTime are only set when IsClosed is false.
type SpecialHours struct {
	ID          int           `db:"id" json:"id"`
	Date        db.Date       `db:"date" json:"date" swaggertype:"string" example:"2025-12-25"`
	ClosureType ClosureType   `db:"closure_type" json:"closure_type"`
	Title       string        `db:"title" json:"title"`
	IsClosed    bool          `db:"is_closed" json:"is_closed"`
	OpenTime    *db.TimeOfDay `db:"open_time" json:"open_time,omitempty" swaggertype:"string" example:"08:00"`
	CloseTime   *db.TimeOfDay `db:"close_time" json:"close_time,omitempty" swaggertype:"string" example:"14:00"`
}

type SpecialHoursRequest struct {
	Date        *db.Date      `json:"date" binding:"required" swaggertype:"string" example:"2025-12-25"`
	ClosureType ClosureType   `json:"closure_type" binding:"required,oneof=holiday closure modified"`
	Title       string        `json:"title" binding:"required,max=200"`
	IsClosed    *bool         `json:"is_closed"`
	OpenTime    *db.TimeOfDay `json:"open_time" swaggertype:"string" example:"08:00"`
	CloseTime   *db.TimeOfDay `json:"close_time" swaggertype:"string" example:"14:00"`
}
