package strategy

import (
	"context"

	"weekplanner/planner"
)

// maxWorkHoursDuration is the longest event (in minutes) that fits a
// business day.
const maxWorkHoursDuration = 480

// WorkHours restricts the search to business hours: Monday through Friday,
// start hours 9 up to 17 minus the event's duration rounded up to whole
// hours.
type WorkHours struct {
	proposer Proposer
	hostID   string
}

// NewWorkHours creates the business-hours strategy searching on behalf of
// hostID.
func NewWorkHours(p Proposer, hostID string) *WorkHours {
	return &WorkHours{proposer: p, hostID: hostID}
}

// FindSlot returns the earliest accepted business-hours grid point. Durations
// over 480 minutes fail immediately with duration_too_long, before any probe.
func (s *WorkHours) FindSlot(ctx context.Context, durationMinutes int, inviteeIDs []string, details Details) (*planner.Event, error) {
	if durationMinutes > maxWorkHoursDuration {
		return nil, &planner.Error{
			Type:    planner.ErrDurationTooLong,
			Message: "duration exceeds a full business day",
		}
	}
	host, invitees, err := resolveParticipants(s.proposer, s.hostID, inviteeIDs)
	if err != nil {
		return nil, err
	}

	durationHours := (durationMinutes + 59) / 60
	for day := planner.Monday; day <= planner.Friday; day++ {
		for hour := 9; hour <= 17-durationHours; hour++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			for minute := 0; minute < 60; minute++ {
				event, ok, err := probe(s.proposer, s.hostID, host, invitees,
					inviteeIDs, details, day, planner.ClockOf(hour, minute), durationMinutes)
				if err != nil {
					return nil, err
				}
				if ok {
					return event, nil
				}
			}
		}
	}
	return nil, &planner.Error{
		Type:    planner.ErrNoSlotFound,
		Message: "no open block of time within business hours",
	}
}
