package event

import "gymplace/internal/db"

type Type string

const (
	TypeEvent       Type = "event"
	TypeWorkshop    Type = "workshop"
	TypeCompetition Type = "competition"
	TypeSpecial     Type = "special"
)

func (t Type) Valid() bool {
	switch t {
	case TypeEvent, TypeWorkshop, TypeCompetition, TypeSpecial:
		return true
	}
	return false
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type Event struct {
	ID          int          `db:"id" json:"id"`
	Title       string       `db:"title" json:"title"`
	Description string       `db:"description" json:"description"`
	EventType   Type         `db:"event_type" json:"event_type"`
	Date        db.Date      `db:"date" json:"date" swaggertype:"string" example:"2025-12-20"`
	StartTime   db.TimeOfDay `db:"start_time" json:"start_time" swaggertype:"string" example:"10:00"`
	EndTime     db.TimeOfDay `db:"end_time" json:"end_time" swaggertype:"string" example:"12:00"`
	Status      Status       `db:"status" json:"status"`
}

type EventRequest struct {
	Title       string        `json:"title" binding:"required,max=200"`
	Description string        `json:"description"`
	EventType   Type          `json:"event_type" binding:"omitempty,oneof=event workshop competition special"`
	Date        *db.Date      `json:"date" binding:"required" swaggertype:"string" example:"2025-12-20"`
	StartTime   *db.TimeOfDay `json:"start_time" binding:"required" swaggertype:"string" example:"10:00"`
	EndTime     *db.TimeOfDay `json:"end_time" binding:"required" swaggertype:"string" example:"12:00"`
}
