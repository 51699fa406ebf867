// Package strategy implements the slot-finding search algorithms: greedy
// scans over the discrete (day, hour, minute) grid that repeatedly propose
// candidate events until the directory accepts one.
package strategy

import (
	"context"

	"weekplanner/planner"
)

// Details are the descriptive fields every candidate event is built with.
type Details struct {
	Name     string
	Location string
	IsOnline bool
}

// Proposer is the read-only slice of the directory a search needs: user
// resolution and the pure availability probe. *planner.Directory satisfies
// it.
type Proposer interface {
	FindUserByID(id string) (*planner.User, error)
	ProposeSlot(actingUserID string, event *planner.Event, inviteeIDs []string) (bool, error)
}

// Strategy finds an open time block for a proposed event. Implementations
// only probe; committing the returned event via Directory.CreateEvent is the
// caller's job.
type Strategy interface {
	FindSlot(ctx context.Context, durationMinutes int, inviteeIDs []string, details Details) (*planner.Event, error)
}

// resolveParticipants loads the host and invitee users once, ahead of the
// grid walk.
func resolveParticipants(p Proposer, hostID string, inviteeIDs []string) (*planner.User, []*planner.User, error) {
	host, err := p.FindUserByID(hostID)
	if err != nil {
		return nil, nil, err
	}
	invitees := make([]*planner.User, 0, len(inviteeIDs))
	for _, id := range inviteeIDs {
		u, err := p.FindUserByID(id)
		if err != nil {
			return nil, nil, err
		}
		invitees = append(invitees, u)
	}
	return host, invitees, nil
}

// probe builds the candidate for one grid point and asks the proposer. The
// end point is projected with planner.Advance, so a candidate may wrap past
// Saturday into the next week's Sunday.
func probe(p Proposer, hostID string, host *planner.User, invitees []*planner.User,
	inviteeIDs []string, details Details,
	day planner.Weekday, start planner.TimeOfDay, durationMinutes int) (*planner.Event, bool, error) {

	endDay, endTime, _ := planner.Advance(day, start, durationMinutes)
	event, err := planner.NewEvent(details.Name, details.Location, details.IsOnline,
		day, endDay, start, endTime, host, invitees)
	if err != nil {
		return nil, false, err
	}
	ok, err := p.ProposeSlot(hostID, event, inviteeIDs)
	if err != nil {
		return nil, false, err
	}
	return event, ok, nil
}
