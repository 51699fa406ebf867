package planner

import "strings"

// EventName is the identity key of an event. Event names are unique across
// the whole planner, so all registry and schedule lookups go through this key
// rather than structural comparison.
type EventName string

// Event is one calendar occurrence. Identity is the name alone; every other
// field is a mutable detail. The host is fixed at construction and is never a
// member of the invitee list.
type Event struct {
	name     string
	location string
	isOnline bool

	startDay  Weekday
	endDay    Weekday
	startTime TimeOfDay
	endTime   TimeOfDay

	host    *User
	invited []*User
}

// NewEvent constructs an event, trimming and validating name and location and
// stripping the host from the invitee list if present. It does not check the
// time window: zero-duration and overlapping windows are rejected later by
// User.AddEvent.
func NewEvent(name, location string, isOnline bool,
	startDay, endDay Weekday, startTime, endTime TimeOfDay,
	host *User, invited []*User) (*Event, error) {

	if strings.TrimSpace(name) == "" {
		return nil, &Error{Type: ErrInvalidField, Message: "event name cannot be empty"}
	}
	if strings.TrimSpace(location) == "" {
		return nil, &Error{Type: ErrInvalidField, Message: "event location cannot be empty"}
	}
	if host == nil {
		return nil, &Error{Type: ErrInvalidField, Message: "event host is required"}
	}

	e := &Event{
		name:      name,
		location:  location,
		isOnline:  isOnline,
		startDay:  startDay,
		endDay:    endDay,
		startTime: startTime,
		endTime:   endTime,
		host:      host,
	}
	for _, u := range invited {
		if u == nil || u.ID() == host.ID() {
			continue
		}
		e.invited = append(e.invited, u)
	}
	return e, nil
}

// Name returns the identity key of the event.
func (e *Event) Name() EventName {
	return EventName(e.name)
}

func (e *Event) String() string {
	return e.name
}

func (e *Event) Location() string {
	return e.location
}

func (e *Event) IsOnline() bool {
	return e.isOnline
}

func (e *Event) StartDay() Weekday {
	return e.startDay
}

func (e *Event) EndDay() Weekday {
	return e.endDay
}

func (e *Event) StartTime() TimeOfDay {
	return e.startTime
}

func (e *Event) EndTime() TimeOfDay {
	return e.endTime
}

// Host returns the owning user. The host cannot change after construction.
func (e *Event) Host() *User {
	return e.host
}

// Invitees returns a copy of the invitee list in invitation order.
func (e *Event) Invitees() []*User {
	out := make([]*User, len(e.invited))
	copy(out, e.invited)
	return out
}

// IsInvited reports whether the user is currently on the invitee list.
func (e *Event) IsInvited(u *User) bool {
	for _, inv := range e.invited {
		if inv.ID() == u.ID() {
			return true
		}
	}
	return false
}

// ChangeInvited toggles invitee membership: a current invitee is removed, any
// other user is added. The host can never join the invitee list.
func (e *Event) ChangeInvited(u *User) error {
	for i, inv := range e.invited {
		if inv.ID() == u.ID() {
			e.invited = append(e.invited[:i], e.invited[i+1:]...)
			return nil
		}
	}
	if u.ID() == e.host.ID() {
		return &Error{Type: ErrInvalidParticipant, Message: "user is the host"}
	}
	e.invited = append(e.invited, u)
	return nil
}

// UpdateName renames the event.
func (e *Event) UpdateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &Error{Type: ErrInvalidField, Message: "new event name cannot be empty"}
	}
	e.name = name
	return nil
}

// UpdateLocation replaces the event location.
func (e *Event) UpdateLocation(location string) error {
	if strings.TrimSpace(location) == "" {
		return &Error{Type: ErrInvalidField, Message: "new event location cannot be empty"}
	}
	e.location = location
	return nil
}

// UpdateOnlineStatus replaces the online flag.
func (e *Event) UpdateOnlineStatus(isOnline bool) {
	e.isOnline = isOnline
}

// UpdateSchedule replaces the time window unconditionally. Validity of the new
// window against participant schedules is the Directory's responsibility.
func (e *Event) UpdateSchedule(startDay, endDay Weekday, startTime, endTime TimeOfDay) {
	e.startDay = startDay
	e.endDay = endDay
	e.startTime = startTime
	e.endTime = endTime
}

// wraps reports whether the stored window is cyclically inverted, meaning it
// runs past Saturday into the following week.
func (e *Event) wraps() bool {
	return e.startDay.Rank() > e.endDay.Rank() ||
		(e.startDay == e.endDay && e.startTime.After(e.endTime))
}

// ContainsInstant reports whether the instant lies strictly between the
// event's start and end. A wrapped window is compared against an end clamped
// to Saturday 23:59 rather than its true tail in the following week; the
// wrapped tail is invisible to this query.
func (e *Event) ContainsInstant(day Weekday, t TimeOfDay) bool {
	start := minuteOfWeek(e.startDay, e.startTime)
	end := minuteOfWeek(e.endDay, e.endTime)
	if e.wraps() {
		end = minuteOfWeek(Saturday, ClockOf(23, 59))
	}
	at := minuteOfWeek(day, t)
	return at > start && at < end
}

// Info returns the 8-tuple of string fields used by the schedule codec:
// name, start day, start time, end day, end time, location, online, host id.
func (e *Event) Info() []string {
	return []string{
		e.name,
		e.startDay.String(),
		e.startTime.String(),
		e.endDay.String(),
		e.endTime.String(),
		e.location,
		boolToken(e.isOnline),
		e.host.ID(),
	}
}

func boolToken(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
