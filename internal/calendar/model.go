package calendar

import (
	"gymplace/internal/db"
	"gymplace/internal/event"
	"gymplace/internal/specialhours"
)

type Day struct {
	Date           db.Date                    `json:"date" swaggertype:"string" example:"2025-12-20"`
	IsToday        bool                       `json:"is_today"`
	IsCurrentMonth bool                       `json:"is_current_month"`
	Events         []event.Event              `json:"events"`
	Special        *specialhours.SpecialHours `json:"special"`
}

type Week []Day

type Month struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	MonthName string `json:"month_name"`
	Weeks     []Week `json:"weeks"`
}

type RegularHours struct {
	Day   string `json:"day"`
	Hours string `json:"hours"`
}

// Info is the gym information page: the current month plus what is coming up.
type Info struct {
	Calendar       Month                       `json:"calendar"`
	UpcomingEvents []event.Event               `json:"upcoming_events"`
	SpecialHours   []specialhours.SpecialHours `json:"special_hours"`
	RegularHours   []RegularHours              `json:"regular_hours"`
}

var regularHours = []RegularHours{
	{Day: "Monday - Friday", Hours: "5:00 AM - 11:00 PM"},
	{Day: "Saturday", Hours: "6:00 AM - 10:00 PM"},
	{Day: "Sunday", Hours: "6:00 AM - 10:00 PM"},
}
