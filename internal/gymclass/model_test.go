package gymclass

import (
	"testing"

	"gymplace/internal/db"

	"github.com/stretchr/testify/assert"
)

func TestDayNumbering(t *testing.T) {
	assert.Equal(t, "Monday", DayName(0))
	assert.Equal(t, "Sunday", DayName(6))
	assert.Equal(t, "", DayName(7))
}

func TestRemainingNeverNegative(t *testing.T) {
	c := ClassWithCount{GymClass: GymClass{Capacity: 2}, ActiveRegistrations: 3}
	assert.Equal(t, 0, c.Remaining())
}

func dbTime(h, m int) db.TimeOfDay {
	return db.TimeOfDay{Hour: h, Minute: m}
}
