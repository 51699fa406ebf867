package planner

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/samber/mo"
)

// SentinelUserID names the placeholder user selected while no real schedule
// is being viewed. The sentinel owns no events, cannot host, and is never a
// participant in any real event.
const SentinelUserID = "admin"

// Directory coordinates every user and the global event registry. It is the
// single writer over planner state: all mutations take its exclusive lock,
// while availability probes and queries run under the read lock so that a
// slot search observes a consistent snapshot.
type Directory struct {
	mu     sync.RWMutex
	users  map[string]*User
	order  []string // registration order of user ids
	events []*Event
	logger *slog.Logger
}

// NewDirectory creates a directory holding only the sentinel user. A nil
// logger falls back to slog.Default().
func NewDirectory(logger *slog.Logger) *Directory {
	if logger == nil {
		logger = slog.Default()
	}
	sentinel, _ := NewUser(SentinelUserID)
	d := &Directory{
		users:  map[string]*User{SentinelUserID: sentinel},
		order:  []string{SentinelUserID},
		logger: logger,
	}
	return d
}

// attach adds the event to the user's schedule, wrapping the outcome in a
// Result. The two best-effort call sites (RegisterUser's retroactive attach
// and CreateEvent's participant attach) discard the error branch; everywhere
// else attach failures must propagate, so those paths call User.AddEvent
// directly.
func (d *Directory) attach(u *User, e *Event) mo.Result[*Event] {
	if err := u.AddEvent(e); err != nil {
		return mo.Err[*Event](err)
	}
	return mo.Ok(e)
}

func (d *Directory) discardAttach(res mo.Result[*Event], u *User, e *Event) {
	if res.IsError() {
		d.logger.Debug("best-effort attach skipped",
			"event", string(e.Name()),
			"user", u.ID(),
			"reason", res.Error())
	}
}

// RegisterUser adds the user to the directory and retroactively attaches any
// already-registered event that lists the user as an invitee. A conflict on a
// retroactive attach is tolerated: the user simply ends up with a partial
// schedule.
func (d *Directory) RegisterUser(u *User) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.users[u.ID()]; exists {
		return &Error{
			Type:    ErrDuplicateUser,
			Message: fmt.Sprintf("user %q already exists", u.ID()),
		}
	}
	d.users[u.ID()] = u
	d.order = append(d.order, u.ID())

	for _, e := range d.events {
		if e.IsInvited(u) || e.Host().ID() == u.ID() {
			d.discardAttach(d.attach(u, e), u, e)
		}
	}
	return nil
}

// FindUserByID returns the registered user with the given id.
func (d *Directory) FindUserByID(id string) (*User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lookupUser(id)
}

func (d *Directory) lookupUser(id string) (*User, error) {
	u, ok := d.users[id]
	if !ok {
		return nil, &Error{
			Type:    ErrUnknownUser,
			Message: fmt.Sprintf("user %q is not in the system", id),
		}
	}
	return u, nil
}

// userOrPlaceholder resolves a registered user, or creates an unregistered
// placeholder so that an event may reference a participant the directory has
// not seen yet. Registering the id later attaches such events retroactively;
// until then the placeholder's schedule is simply invisible. Identity is the
// id string, so the placeholder and the eventually registered user are the
// same participant.
func (d *Directory) userOrPlaceholder(id string) (*User, error) {
	if u, ok := d.users[id]; ok {
		return u, nil
	}
	return NewUser(id)
}

// HasUser reports whether the id is registered.
func (d *Directory) HasUser(id string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.users[id]
	return ok
}

// FindEventByName returns the globally registered event with the given name.
func (d *Directory) FindEventByName(name EventName) (*Event, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lookupEvent(name)
}

func (d *Directory) lookupEvent(name EventName) (*Event, error) {
	for _, e := range d.events {
		if e.Name() == name {
			return e, nil
		}
	}
	return nil, &Error{
		Type:    ErrUnknownEvent,
		Message: fmt.Sprintf("event %q does not exist in the system", name),
	}
}

// EventDetails carries the descriptive and time fields of a new event.
type EventDetails struct {
	Name     string
	Location string
	IsOnline bool

	StartDay  Weekday
	EndDay    Weekday
	StartTime TimeOfDay
	EndTime   TimeOfDay
}

// CreateEvent constructs an event hosted by hostID and registers it globally,
// then attaches it best-effort to the acting user's, the host's, and each
// invitee's schedule. An attach that fails because the event is already there
// or collides with a privately held one is swallowed; the event stays
// registered regardless.
//
// The acting user must be a real selected user: the sentinel cannot create
// events, and the sentinel can never host or be invited.
func (d *Directory) CreateEvent(actingUserID string, details EventDetails, hostID string, inviteeIDs []string) (*Event, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if actingUserID == SentinelUserID {
		return nil, &Error{
			Type:    ErrNoActiveUser,
			Message: "select a user before creating an event",
		}
	}
	acting, err := d.lookupUser(actingUserID)
	if err != nil {
		return nil, err
	}
	if hostID == SentinelUserID {
		return nil, &Error{
			Type:    ErrInvalidParticipant,
			Message: "the sentinel user cannot host events",
		}
	}
	host, err := d.userOrPlaceholder(hostID)
	if err != nil {
		return nil, err
	}
	invitees := make([]*User, 0, len(inviteeIDs))
	for _, id := range inviteeIDs {
		if id == SentinelUserID {
			return nil, &Error{
				Type:    ErrInvalidParticipant,
				Message: "the sentinel user cannot be invited",
			}
		}
		inv, err := d.userOrPlaceholder(id)
		if err != nil {
			return nil, err
		}
		invitees = append(invitees, inv)
	}

	event, err := NewEvent(details.Name, details.Location, details.IsOnline,
		details.StartDay, details.EndDay, details.StartTime, details.EndTime,
		host, invitees)
	if err != nil {
		return nil, err
	}
	if _, err := d.lookupEvent(event.Name()); err == nil {
		return nil, &Error{
			Type:    ErrDuplicateEventName,
			Message: fmt.Sprintf("event %q already exists in the system", event.Name()),
		}
	}
	d.events = append(d.events, event)

	d.discardAttach(d.attach(host, event), host, event)
	if acting.ID() != host.ID() {
		d.discardAttach(d.attach(acting, event), acting, event)
	}
	for _, inv := range event.Invitees() {
		d.discardAttach(d.attach(inv, event), inv, event)
	}
	return event, nil
}

// Changes holds the raw field tokens of a modify transaction. Day names,
// clock tokens, and the boolean are kept as strings: parsing them is part of
// the transaction and a malformed token decides where the transaction aborts.
type Changes struct {
	Name     string
	Location string
	Online   string // strict "true"/"false" token, case-insensitive

	StartDay  string // day name
	EndDay    string
	StartTime string // 4-digit 24-hour token
	EndTime   string

	Invited []string // user ids whose invitee membership is toggled
}

// ModifyEvent runs the two-phase modify transaction. Phase 1 tentatively
// toggles invitee membership and applies the new time window; phase 2
// validates the new window's start and end instants against the host's and
// every remaining invitee's other events. On a phase-2 failure the window is
// restored, the membership toggles are re-applied to undo them, and the whole
// operation fails with an invalid_modification error.
//
// The online token is checked before anything mutates; a malformed token
// fails with invalid_field and leaves the event untouched.
func (d *Directory) ModifyEvent(name EventName, changes Changes) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	event, err := d.lookupEvent(name)
	if err != nil {
		return err
	}
	if !strings.EqualFold(changes.Online, "true") && !strings.EqualFold(changes.Online, "false") {
		return &Error{
			Type:    ErrInvalidField,
			Message: fmt.Sprintf("online token %q is not a boolean", changes.Online),
		}
	}
	toggled := make([]*User, 0, len(changes.Invited))
	for _, id := range changes.Invited {
		u, err := d.lookupUser(id)
		if err != nil {
			return err
		}
		toggled = append(toggled, u)
	}

	// Phase 1: tentative membership changes. A host toggle aborts here;
	// earlier toggles stay applied.
	for _, u := range toggled {
		if err := event.ChangeInvited(u); err != nil {
			return err
		}
	}

	if err := d.applyTimeChange(event, changes); err != nil {
		for _, u := range toggled {
			_ = event.ChangeInvited(u) // toggling again restores membership
		}
		return &Error{
			Type:    ErrInvalidModification,
			Message: fmt.Sprintf("invalid changes to event %q", name),
			Err:     err,
		}
	}

	// All checks passed: apply the descriptive fields.
	if err := event.UpdateName(changes.Name); err != nil {
		return err
	}
	if err := event.UpdateLocation(changes.Location); err != nil {
		return err
	}
	event.UpdateOnlineStatus(strings.EqualFold(changes.Online, "true"))
	return nil
}

// applyTimeChange parses and tentatively applies the new window, then
// validates its boundary instants against the host's and every invitee's
// other events. The event keeps the new window on success and is restored on
// failure.
func (d *Directory) applyTimeChange(event *Event, changes Changes) error {
	newStartTime, err := ParseClock(changes.StartTime)
	if err != nil {
		return err
	}
	newEndTime, err := ParseClock(changes.EndTime)
	if err != nil {
		return err
	}
	newStartDay, err := ParseWeekday(changes.StartDay)
	if err != nil {
		return err
	}
	newEndDay, err := ParseWeekday(changes.EndDay)
	if err != nil {
		return err
	}

	oldStartDay, oldEndDay := event.StartDay(), event.EndDay()
	oldStartTime, oldEndTime := event.StartTime(), event.EndTime()

	event.UpdateSchedule(newStartDay, newEndDay, newStartTime, newEndTime)

	participants := append([]*User{event.Host()}, event.Invitees()...)
	for _, u := range participants {
		if u.EventsAt(newStartDay, newStartTime).IsPresent() ||
			u.EventsAt(newEndDay, newEndTime).IsPresent() {
			event.UpdateSchedule(oldStartDay, oldEndDay, oldStartTime, oldEndTime)
			return &Error{
				Type:    ErrConflict,
				Message: fmt.Sprintf("new time collides with the schedule of %q", u.ID()),
			}
		}
	}
	return nil
}

// UpdateEventInvited changes the acting user's relationship to the event. The
// host relinquishing the event destroys it: it leaves the global registry and
// every participant's schedule. A current invitee leaves the event; anyone
// else joins it.
func (d *Directory) UpdateEventInvited(name EventName, actingUserID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	event, err := d.lookupEvent(name)
	if err != nil {
		return err
	}
	user, err := d.lookupUser(actingUserID)
	if err != nil {
		return err
	}

	switch {
	case user.ID() == event.Host().ID():
		d.unregisterEvent(event)
		if err := user.RemoveEvent(event); err != nil {
			return err
		}
		for _, inv := range event.Invitees() {
			if err := inv.RemoveEvent(event); err != nil {
				return err
			}
		}
	case event.IsInvited(user):
		if err := event.ChangeInvited(user); err != nil {
			return err
		}
		if err := user.RemoveEvent(event); err != nil {
			return err
		}
	default:
		if err := event.ChangeInvited(user); err != nil {
			return err
		}
		if err := user.AddEvent(event); err != nil {
			return err
		}
	}
	return nil
}

func (d *Directory) unregisterEvent(event *Event) {
	for i, e := range d.events {
		if e.Name() == event.Name() {
			d.events = append(d.events[:i], d.events[i+1:]...)
			return
		}
	}
}

// ProposeSlot reports whether the event would be admissible into the acting
// user's schedule and every listed invitee's schedule simultaneously. It is a
// pure availability probe and never mutates state.
func (d *Directory) ProposeSlot(actingUserID string, event *Event, inviteeIDs []string) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	acting, err := d.lookupUser(actingUserID)
	if err != nil {
		return false, err
	}
	if !fitsSchedule(event, acting.schedule) {
		return false, nil
	}
	for _, id := range inviteeIDs {
		u, err := d.lookupUser(id)
		if err != nil {
			return false, err
		}
		if !fitsSchedule(event, u.schedule) {
			return false, nil
		}
	}
	return true, nil
}

// EventsAt returns the user's events containing the instant, or None when the
// user is free.
func (d *Directory) EventsAt(userID string, day Weekday, t TimeOfDay) (mo.Option[[]*Event], error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, err := d.lookupUser(userID)
	if err != nil {
		return mo.None[[]*Event](), err
	}
	return u.EventsAt(day, t), nil
}

// AllUserIDs returns every registered id except the sentinel, in registration
// order.
func (d *Directory) AllUserIDs() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ids := make([]string, 0, len(d.order)-1)
	for _, id := range d.order {
		if id != SentinelUserID {
			ids = append(ids, id)
		}
	}
	return ids
}

// ScheduleEntry is one row of a user's exported schedule: the event fields
// frozen as values plus the invitee ids.
type ScheduleEntry struct {
	Name     string
	Location string
	IsOnline bool

	StartDay  Weekday
	EndDay    Weekday
	StartTime TimeOfDay
	EndTime   TimeOfDay

	HostID     string
	InviteeIDs []string
}

// ScheduleOf snapshots the user's schedule for export, sorted by the start
// time token interpreted as an integer, ties broken by insertion order.
func (d *Directory) ScheduleOf(userID string) ([]ScheduleEntry, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, err := d.lookupUser(userID)
	if err != nil {
		return nil, err
	}
	entries := make([]ScheduleEntry, 0, len(u.schedule))
	for _, e := range u.schedule {
		entry := ScheduleEntry{
			Name:      string(e.Name()),
			Location:  e.Location(),
			IsOnline:  e.IsOnline(),
			StartDay:  e.StartDay(),
			EndDay:    e.EndDay(),
			StartTime: e.StartTime(),
			EndTime:   e.EndTime(),
			HostID:    e.Host().ID(),
		}
		for _, inv := range e.Invitees() {
			entry.InviteeIDs = append(entry.InviteeIDs, inv.ID())
		}
		entries = append(entries, entry)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].StartTime.MinuteOfDay() < entries[j].StartTime.MinuteOfDay()
	})
	return entries, nil
}
