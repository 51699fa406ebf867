package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitsSchedule(t *testing.T) {
	host := mustUser(t, "jonah")

	tests := []struct {
		name      string
		scheduled *Event
		candidate *Event
		wantFits  bool
	}{
		{
			"different single days",
			mustEvent(t, "a", Monday, Monday, ClockOf(9, 0), ClockOf(10, 0), host),
			mustEvent(t, "b", Tuesday, Tuesday, ClockOf(9, 0), ClockOf(10, 0), host),
			true,
		},
		{
			"same day back to back",
			mustEvent(t, "a", Monday, Monday, ClockOf(9, 0), ClockOf(10, 0), host),
			mustEvent(t, "b", Monday, Monday, ClockOf(10, 0), ClockOf(11, 0), host),
			true,
		},
		{
			"same day candidate first",
			mustEvent(t, "a", Monday, Monday, ClockOf(10, 0), ClockOf(11, 0), host),
			mustEvent(t, "b", Monday, Monday, ClockOf(9, 0), ClockOf(10, 0), host),
			true,
		},
		{
			"same day overlap",
			mustEvent(t, "a", Monday, Monday, ClockOf(9, 0), ClockOf(10, 0), host),
			mustEvent(t, "b", Monday, Monday, ClockOf(9, 30), ClockOf(10, 30), host),
			false,
		},
		{
			"candidate inside scheduled",
			mustEvent(t, "a", Monday, Wednesday, ClockOf(9, 0), ClockOf(10, 0), host),
			mustEvent(t, "b", Tuesday, Tuesday, ClockOf(12, 0), ClockOf(13, 0), host),
			false,
		},
		{
			"scheduled inside candidate",
			mustEvent(t, "a", Tuesday, Tuesday, ClockOf(12, 0), ClockOf(13, 0), host),
			mustEvent(t, "b", Monday, Wednesday, ClockOf(9, 0), ClockOf(10, 0), host),
			false,
		},
		{
			"multi day meets single day after",
			mustEvent(t, "a", Monday, Tuesday, ClockOf(20, 0), ClockOf(8, 0), host),
			mustEvent(t, "b", Tuesday, Tuesday, ClockOf(8, 0), ClockOf(9, 0), host),
			true,
		},
		{
			"multi day collides with single day",
			mustEvent(t, "a", Monday, Tuesday, ClockOf(20, 0), ClockOf(8, 0), host),
			mustEvent(t, "b", Tuesday, Tuesday, ClockOf(7, 0), ClockOf(9, 0), host),
			false,
		},
		{
			"wrapped scheduled accepts candidate ending at its start",
			// runs Friday 18:00 wrapping into Monday, clamped to Saturday
			// 23:59 for comparison; a candidate ending Friday before 18:00
			// fits.
			mustEvent(t, "a", Friday, Monday, ClockOf(18, 0), ClockOf(9, 0), host),
			mustEvent(t, "b", Thursday, Friday, ClockOf(16, 0), ClockOf(17, 0), host),
			true,
		},
		{
			"wrapped scheduled blocks early week by rank precedence",
			// the clamp keeps the comparison conservative: even a Sunday
			// candidate conflicts because the wrapped event occupies
			// through end of week.
			mustEvent(t, "a", Friday, Monday, ClockOf(18, 0), ClockOf(9, 0), host),
			mustEvent(t, "b", Sunday, Sunday, ClockOf(8, 0), ClockOf(9, 0), host),
			false,
		},
		{
			"wrapped scheduled still blocks saturday",
			mustEvent(t, "a", Friday, Monday, ClockOf(18, 0), ClockOf(9, 0), host),
			mustEvent(t, "b", Saturday, Saturday, ClockOf(10, 0), ClockOf(11, 0), host),
			false,
		},
		{
			"inverted same day treated as wrap",
			// start and end on Wednesday with start after end: wraps a
			// whole week, clamped to Saturday 23:59.
			mustEvent(t, "a", Wednesday, Wednesday, ClockOf(15, 0), ClockOf(14, 0), host),
			mustEvent(t, "b", Thursday, Thursday, ClockOf(9, 0), ClockOf(10, 0), host),
			false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantFits, fitsSchedule(tc.candidate, []*Event{tc.scheduled}))
		})
	}
}

func TestFitsScheduleConjunction(t *testing.T) {
	host := mustUser(t, "jonah")
	a := mustEvent(t, "a", Monday, Monday, ClockOf(9, 0), ClockOf(10, 0), host)
	b := mustEvent(t, "b", Wednesday, Wednesday, ClockOf(9, 0), ClockOf(10, 0), host)

	fitting := mustEvent(t, "c", Friday, Friday, ClockOf(9, 0), ClockOf(10, 0), host)
	clashing := mustEvent(t, "d", Wednesday, Wednesday, ClockOf(9, 30), ClockOf(10, 30), host)

	assert.True(t, fitsSchedule(fitting, []*Event{a, b}))
	assert.False(t, fitsSchedule(clashing, []*Event{a, b}))
	assert.False(t, fitsSchedule(clashing, []*Event{b, a}), "pair checks are order-independent")
}

func TestNonZeroDuration(t *testing.T) {
	assert.False(t, nonZeroDuration(Monday, Monday, ClockOf(9, 0), ClockOf(9, 0)))
	assert.True(t, nonZeroDuration(Monday, Tuesday, ClockOf(9, 0), ClockOf(9, 0)))
	assert.True(t, nonZeroDuration(Monday, Monday, ClockOf(9, 0), ClockOf(9, 1)))
}
