package icsexport

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weekplanner/planner"
)

// 2026-08-23 is a Sunday.
var weekStart = time.Date(2026, time.August, 23, 0, 0, 0, 0, time.UTC)

func newDirectory(t *testing.T) *planner.Directory {
	t.Helper()
	dir := planner.NewDirectory(slog.Default())
	for _, id := range []string{"jonah", "lucia"} {
		u, err := planner.NewUser(id)
		require.NoError(t, err)
		require.NoError(t, dir.RegisterUser(u))
	}
	return dir
}

func TestCalendar(t *testing.T) {
	dir := newDirectory(t)
	_, err := dir.CreateEvent("jonah", planner.EventDetails{
		Name: "party", Location: "rooftop", IsOnline: true,
		StartDay: planner.Wednesday, EndDay: planner.Thursday,
		StartTime: planner.ClockOf(21, 0), EndTime: planner.ClockOf(1, 0),
	}, "jonah", []string{"lucia"})
	require.NoError(t, err)

	cal, err := Calendar(dir, "jonah", weekStart)
	require.NoError(t, err)
	require.Len(t, cal.Children, 1)

	comp := cal.Children[0]
	assert.Equal(t, ical.CompEvent, comp.Name)
	assert.NotEmpty(t, comp.Props.Get(ical.PropUID).Value)
	assert.Equal(t, "party", comp.Props.Get(ical.PropSummary).Value)
	assert.Equal(t, "rooftop", comp.Props.Get(ical.PropLocation).Value)
	assert.Equal(t, "true", comp.Props.Get("X-WEEKPLANNER-ONLINE").Value)
	assert.Equal(t, "jonah", comp.Props.Get("X-WEEKPLANNER-HOST").Value)

	rule := comp.Props.Get(ical.PropRecurrenceRule)
	require.NotNil(t, rule)
	assert.Contains(t, rule.Value, "FREQ=WEEKLY")
	assert.Contains(t, rule.Value, "BYDAY=WE")

	start, err := comp.Props.DateTime(ical.PropDateTimeStart, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.August, 26, 21, 0, 0, 0, time.UTC), start)
	end, err := comp.Props.DateTime(ical.PropDateTimeEnd, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.August, 27, 1, 0, 0, 0, time.UTC), end)

	attendees := comp.Props.Values(ical.PropAttendee)
	require.Len(t, attendees, 1)
	assert.Equal(t, "urn:weekplanner:lucia", attendees[0].Value)
}

func TestCalendarWrappedWindowEndsNextWeek(t *testing.T) {
	dir := newDirectory(t)
	_, err := dir.CreateEvent("jonah", planner.EventDetails{
		Name: "retreat", Location: "cabin",
		StartDay: planner.Friday, EndDay: planner.Sunday,
		StartTime: planner.ClockOf(18, 0), EndTime: planner.ClockOf(10, 0),
	}, "jonah", nil)
	require.NoError(t, err)

	cal, err := Calendar(dir, "jonah", weekStart)
	require.NoError(t, err)
	require.Len(t, cal.Children, 1)

	comp := cal.Children[0]
	start, err := comp.Props.DateTime(ical.PropDateTimeStart, time.UTC)
	require.NoError(t, err)
	end, err := comp.Props.DateTime(ical.PropDateTimeEnd, time.UTC)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, time.August, 28, 18, 0, 0, 0, time.UTC), start)
	// the end lands on the Sunday of the following week
	assert.Equal(t, time.Date(2026, time.August, 30, 10, 0, 0, 0, time.UTC), end)
}

func TestWriteEncodes(t *testing.T) {
	dir := newDirectory(t)
	_, err := dir.CreateEvent("jonah", planner.EventDetails{
		Name: "standup", Location: "room 2",
		StartDay: planner.Monday, EndDay: planner.Monday,
		StartTime: planner.ClockOf(9, 0), EndTime: planner.ClockOf(9, 30),
	}, "jonah", nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(dir, "jonah", weekStart, &buf))

	out := buf.String()
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "BEGIN:VEVENT")
	assert.Contains(t, out, "SUMMARY:standup")
	assert.Contains(t, out, "RRULE:FREQ=WEEKLY")
	assert.Contains(t, out, "END:VCALENDAR")
}

func TestCalendarUnknownUser(t *testing.T) {
	dir := newDirectory(t)
	_, err := Calendar(dir, "ghost", weekStart)
	assert.Equal(t, planner.ErrUnknownUser, planner.TypeOf(err))
}
