package planner

import (
	"fmt"
	"strings"

	"github.com/samber/mo"
)

// User owns an ordered schedule of the events it hosts or attends. Every
// insertion is validated so that no two scheduled events overlap in cyclic
// time.
type User struct {
	id       string
	schedule []*Event
}

// NewUser creates a user with the given unique id.
func NewUser(id string) (*User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, &Error{Type: ErrInvalidField, Message: "user id cannot be empty"}
	}
	return &User{id: id}, nil
}

// ID returns the immutable user id.
func (u *User) ID() string {
	return u.id
}

// AddEvent appends the event to the schedule. It fails with a conflict error
// unless the user participates in the event, the event spans more than zero
// minutes, and the event overlaps nothing already scheduled.
func (u *User) AddEvent(e *Event) error {
	if e == nil {
		return &Error{Type: ErrConflict, Message: "event is nil"}
	}
	if !u.participates(e) {
		return &Error{
			Type:    ErrConflict,
			Message: fmt.Sprintf("user %q is not a participant of event %q", u.id, e.Name()),
		}
	}
	if !nonZeroDuration(e.startDay, e.endDay, e.startTime, e.endTime) {
		return &Error{
			Type:    ErrConflict,
			Message: fmt.Sprintf("event %q spans zero minutes", e.Name()),
		}
	}
	if !fitsSchedule(e, u.schedule) {
		return &Error{
			Type:    ErrConflict,
			Message: fmt.Sprintf("event %q overlaps an event scheduled for %q", e.Name(), u.id),
		}
	}
	u.schedule = append(u.schedule, e)
	return nil
}

func (u *User) participates(e *Event) bool {
	return e.host.ID() == u.id || e.IsInvited(u)
}

// RemoveEvent deletes the event (matched by name) from the schedule.
func (u *User) RemoveEvent(e *Event) error {
	for i, sch := range u.schedule {
		if sch.Name() == e.Name() {
			u.schedule = append(u.schedule[:i], u.schedule[i+1:]...)
			return nil
		}
	}
	return &Error{
		Type:    ErrNotScheduled,
		Message: fmt.Sprintf("event %q is not on the schedule of %q", e.Name(), u.id),
	}
}

// FindEventByName looks an event up in this user's schedule.
func (u *User) FindEventByName(name EventName) (*Event, error) {
	for _, e := range u.schedule {
		if e.Name() == name {
			return e, nil
		}
	}
	return nil, &Error{
		Type:    ErrNotFound,
		Message: fmt.Sprintf("event %q is not on the schedule of %q", name, u.id),
	}
}

// EventsAt returns every scheduled event containing the instant, or None when
// the user is free at that moment.
func (u *User) EventsAt(day Weekday, t TimeOfDay) mo.Option[[]*Event] {
	var events []*Event
	for _, e := range u.schedule {
		if e.ContainsInstant(day, t) {
			events = append(events, e)
		}
	}
	if len(events) == 0 {
		return mo.None[[]*Event]()
	}
	return mo.Some(events)
}

// Schedule returns a copy of the schedule in insertion order.
func (u *User) Schedule() []*Event {
	out := make([]*Event, len(u.schedule))
	copy(out, u.schedule)
	return out
}
