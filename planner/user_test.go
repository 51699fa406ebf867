package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("lucia")
	require.NoError(t, err)
	assert.Equal(t, "lucia", u.ID())

	_, err = NewUser("   ")
	assert.Equal(t, ErrInvalidField, TypeOf(err))
}

func TestAddEventRequiresParticipation(t *testing.T) {
	host := mustUser(t, "jonah")
	outsider := mustUser(t, "marge")
	e := mustEvent(t, "party", Friday, Friday, ClockOf(20, 0), ClockOf(23, 0), host)

	err := outsider.AddEvent(e)
	assert.Equal(t, ErrConflict, TypeOf(err))
	assert.Empty(t, outsider.Schedule())

	require.NoError(t, host.AddEvent(e))
	assert.Len(t, host.Schedule(), 1)
}

func TestAddEventRejectsZeroDuration(t *testing.T) {
	host := mustUser(t, "jonah")
	e := mustEvent(t, "blink", Monday, Monday, ClockOf(9, 0), ClockOf(9, 0), host)

	err := host.AddEvent(e)
	assert.Equal(t, ErrConflict, TypeOf(err))
	assert.Empty(t, host.Schedule())
}

func TestAddEventRejectsOverlap(t *testing.T) {
	host := mustUser(t, "jonah")
	require.NoError(t, host.AddEvent(mustEvent(t, "a", Monday, Monday, ClockOf(9, 0), ClockOf(10, 0), host)))

	err := host.AddEvent(mustEvent(t, "b", Monday, Monday, ClockOf(9, 30), ClockOf(10, 30), host))
	assert.Equal(t, ErrConflict, TypeOf(err))
	assert.Len(t, host.Schedule(), 1)
}

// After any sequence of successful adds, every pair in the schedule must
// still be mutually non-conflicting.
func TestSchedulePairwiseInvariant(t *testing.T) {
	host := mustUser(t, "jonah")
	events := []*Event{
		mustEvent(t, "a", Monday, Monday, ClockOf(9, 0), ClockOf(10, 0), host),
		mustEvent(t, "b", Monday, Monday, ClockOf(10, 0), ClockOf(11, 0), host),
		mustEvent(t, "c", Wednesday, Thursday, ClockOf(21, 0), ClockOf(1, 0), host),
		mustEvent(t, "d", Friday, Friday, ClockOf(8, 0), ClockOf(17, 0), host),
	}
	for _, e := range events {
		require.NoError(t, host.AddEvent(e))

		// The pair check keeps its candidate/scheduled orientation: every
		// later arrival must fit each event that was already there.
		schedule := host.Schedule()
		for i := range schedule {
			for j := 0; j < i; j++ {
				assert.True(t, fitsSchedule(schedule[i], []*Event{schedule[j]}),
					"%s conflicts with %s after adding %s", schedule[i].Name(), schedule[j].Name(), e.Name())
			}
		}
	}
}

func TestRemoveEvent(t *testing.T) {
	host := mustUser(t, "jonah")
	e := mustEvent(t, "party", Friday, Friday, ClockOf(20, 0), ClockOf(23, 0), host)

	err := host.RemoveEvent(e)
	assert.Equal(t, ErrNotScheduled, TypeOf(err))

	require.NoError(t, host.AddEvent(e))
	require.NoError(t, host.RemoveEvent(e))
	assert.Empty(t, host.Schedule())
}

func TestUserFindEventByName(t *testing.T) {
	host := mustUser(t, "jonah")
	e := mustEvent(t, "party", Friday, Friday, ClockOf(20, 0), ClockOf(23, 0), host)
	require.NoError(t, host.AddEvent(e))

	found, err := host.FindEventByName("party")
	require.NoError(t, err)
	assert.Same(t, e, found)

	_, err = host.FindEventByName("bash")
	assert.Equal(t, ErrNotFound, TypeOf(err))
}

func TestEventsAt(t *testing.T) {
	host := mustUser(t, "jonah")
	require.NoError(t, host.AddEvent(mustEvent(t, "party", Wednesday, Thursday, ClockOf(21, 0), ClockOf(1, 0), host)))

	free := host.EventsAt(Monday, ClockOf(12, 0))
	assert.True(t, free.IsAbsent())

	busy := host.EventsAt(Thursday, ClockOf(0, 30))
	require.True(t, busy.IsPresent())
	assert.Len(t, busy.MustGet(), 1)
}
