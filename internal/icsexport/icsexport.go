// Package icsexport renders a user's weekly schedule as an iCalendar
// document. Each planner event becomes a VEVENT anchored in a caller-supplied
// reference week and repeating weekly, so any calendar client shows the same
// cyclic schedule the planner maintains.
package icsexport

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/teambition/rrule-go"

	"weekplanner/planner"
)

var rruleDays = [...]rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}

// Calendar builds an iCalendar document for userID's schedule. weekStart must
// be the Sunday that anchors the reference week; each event's first
// occurrence lands inside [weekStart, weekStart+7d), except that a window
// wrapping past Saturday ends in the following week.
func Calendar(dir *planner.Directory, userID string, weekStart time.Time) (*ical.Calendar, error) {
	entries, err := dir.ScheduleOf(userID)
	if err != nil {
		return nil, err
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropProductID, "-//weekplanner//EN")
	cal.Props.SetText(ical.PropVersion, "2.0")

	for _, entry := range entries {
		cal.Children = append(cal.Children, component(entry, weekStart))
	}
	return cal, nil
}

// Write encodes userID's schedule as iCalendar text.
func Write(dir *planner.Directory, userID string, weekStart time.Time, w io.Writer) error {
	cal, err := Calendar(dir, userID, weekStart)
	if err != nil {
		return err
	}
	return ical.NewEncoder(w).Encode(cal)
}

func component(entry planner.ScheduleEntry, weekStart time.Time) *ical.Component {
	comp := ical.NewComponent(ical.CompEvent)
	comp.Props.SetText(ical.PropUID, uuid.NewString())
	comp.Props.SetText(ical.PropSummary, entry.Name)
	comp.Props.SetText(ical.PropLocation, entry.Location)
	comp.Props.SetText("X-WEEKPLANNER-ONLINE", onlineToken(entry.IsOnline))
	comp.Props.SetText("X-WEEKPLANNER-HOST", entry.HostID)
	comp.Props.SetDateTime(ical.PropDateTimeStamp, time.Now().UTC())

	start := instant(weekStart, entry.StartDay, entry.StartTime)
	end := instant(weekStart, entry.EndDay, entry.EndTime)
	if !end.After(start) {
		// The window wraps past Saturday into the next week.
		end = end.AddDate(0, 0, 7)
	}
	comp.Props.SetDateTime(ical.PropDateTimeStart, start)
	comp.Props.SetDateTime(ical.PropDateTimeEnd, end)

	opt := rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{rruleDays[entry.StartDay.Rank()-1]},
	}
	// Set the raw rule value: SetText would escape the semicolons.
	comp.Props.Set(&ical.Prop{Name: ical.PropRecurrenceRule, Value: opt.RRuleString()})

	for _, invitee := range entry.InviteeIDs {
		comp.Props.Add(&ical.Prop{Name: ical.PropAttendee, Value: fmt.Sprintf("urn:weekplanner:%s", invitee)})
	}
	return comp
}

func instant(weekStart time.Time, day planner.Weekday, t planner.TimeOfDay) time.Time {
	d := weekStart.AddDate(0, 0, day.Rank()-1)
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour, t.Minute, 0, 0, weekStart.Location())
}

func onlineToken(online bool) string {
	if online {
		return "true"
	}
	return "false"
}
