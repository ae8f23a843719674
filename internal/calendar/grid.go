package calendar

import (
	"time"

	"gymplace/internal/db"
	"gymplace/internal/event"
	"gymplace/internal/specialhours"
)

// GridRange returns the first and last dates shown for a month: the Sunday
// on or before the 1st and the Saturday on or after the last day.
func GridRange(year int, month time.Month) (db.Date, db.Date) {
	first := db.NewDate(year, month, 1)
	last := first.Time().AddDate(0, 1, -1)

	start := first.AddDays(-int(first.Weekday()))
	end := db.DateOf(last).AddDays(int(time.Saturday - last.Weekday()))
	return start, end
}

// BuildMonth lays events and special hours out on a Sunday-first grid.
// At most one special hours entry is attached per date; the lowest ID wins.
func BuildMonth(year int, month time.Month, today db.Date, events []event.Event, specials []specialhours.SpecialHours) Month {
	byDate := make(map[db.Date][]event.Event)
	for _, e := range events {
		byDate[e.Date] = append(byDate[e.Date], e)
	}

	special := make(map[db.Date]*specialhours.SpecialHours)
	for i := range specials {
		s := &specials[i]
		if cur, ok := special[s.Date]; !ok || s.ID < cur.ID {
			special[s.Date] = s
		}
	}

	start, end := GridRange(year, month)
	weeks := []Week{}
	var week Week
	for d := start; !d.After(end); d = d.AddDays(1) {
		dayEvents := byDate[d]
		if dayEvents == nil {
			dayEvents = []event.Event{}
		}
		week = append(week, Day{
			Date:           d,
			IsToday:        d == today,
			IsCurrentMonth: d.Month == month && d.Year == year,
			Events:         dayEvents,
			Special:        special[d],
		})
		if len(week) == 7 {
			weeks = append(weeks, week)
			week = nil
		}
	}

	return Month{
		Year:      year,
		Month:     int(month),
		MonthName: month.String(),
		Weeks:     weeks,
	}
}
