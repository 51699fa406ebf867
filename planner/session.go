package planner

import (
	"github.com/samber/mo"
)

// Session is a thin adapter over a Directory that carries the "currently
// viewed user" for callers that prefer an implicit-current-user call shape
// (the UI layer). The directory itself only ever sees explicit user ids.
type Session struct {
	dir     *Directory
	current string
}

// NewSession starts a session viewing the sentinel user.
func NewSession(dir *Directory) *Session {
	return &Session{dir: dir, current: SentinelUserID}
}

// Directory exposes the underlying directory.
func (s *Session) Directory() *Directory {
	return s.dir
}

// CurrentUserID returns the id of the currently viewed user.
func (s *Session) CurrentUserID() string {
	return s.current
}

// SetCurrentUser switches the viewed user.
func (s *Session) SetCurrentUser(id string) error {
	if _, err := s.dir.FindUserByID(id); err != nil {
		return err
	}
	s.current = id
	return nil
}

// CreateEvent creates an event acting as the current user.
func (s *Session) CreateEvent(details EventDetails, hostID string, inviteeIDs []string) (*Event, error) {
	return s.dir.CreateEvent(s.current, details, hostID, inviteeIDs)
}

// UpdateEventInvited toggles the current user's participation in the event.
func (s *Session) UpdateEventInvited(name EventName) error {
	return s.dir.UpdateEventInvited(name, s.current)
}

// ProposeSlot probes availability for the current user and the listed
// invitees.
func (s *Session) ProposeSlot(event *Event, inviteeIDs []string) (bool, error) {
	return s.dir.ProposeSlot(s.current, event, inviteeIDs)
}

// FindEventByName looks the event up in the global registry.
func (s *Session) FindEventByName(name EventName) (*Event, error) {
	return s.dir.FindEventByName(name)
}

// FindEventsAt parses a day name and a 4-digit clock token and returns the
// current user's events containing that instant, or None.
func (s *Session) FindEventsAt(dayName, clock string) (mo.Option[[]*Event], error) {
	day, err := ParseWeekday(dayName)
	if err != nil {
		return mo.None[[]*Event](), err
	}
	t, err := ParseClock(clock)
	if err != nil {
		return mo.None[[]*Event](), err
	}
	return s.dir.EventsAt(s.current, day, t)
}

// AllUserIDs returns every real user id in registration order.
func (s *Session) AllUserIDs() []string {
	return s.dir.AllUserIDs()
}
