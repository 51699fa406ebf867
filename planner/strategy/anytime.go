package strategy

import (
	"context"

	"weekplanner/planner"
)

// AnyTime scans the whole week for the first open block: days in fixed week
// order starting Sunday, then hours 0..23, then minutes 0..59. The earliest
// accepted grid point wins.
type AnyTime struct {
	proposer Proposer
	hostID   string
}

// NewAnyTime creates the exhaustive strategy searching on behalf of hostID.
func NewAnyTime(p Proposer, hostID string) *AnyTime {
	return &AnyTime{proposer: p, hostID: hostID}
}

// FindSlot walks all 10080 grid points until a candidate is accepted. It
// fails with no_slot_found when the entire week is exhausted, and with the
// context's error when the deadline expires mid-search.
func (s *AnyTime) FindSlot(ctx context.Context, durationMinutes int, inviteeIDs []string, details Details) (*planner.Event, error) {
	host, invitees, err := resolveParticipants(s.proposer, s.hostID, inviteeIDs)
	if err != nil {
		return nil, err
	}

	for _, day := range planner.Week() {
		for hour := 0; hour < 24; hour++ {
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
		Message: "could not find an open block of time",
	}
}
