/*
Package planner maintains shared weekly calendars for a set of users and
guarantees that no user is ever double-booked.

Time is modeled on a cyclic 7-day week (Sunday=1 .. Saturday=7): an event may
start on Friday evening and end on Sunday morning. Every user owns an ordered
schedule of events, and every insertion is validated against the cyclic
overlap rules, so the schedules of all participants of an event stay mutually
consistent.

# Basic Usage

	dir := planner.NewDirectory(nil)

	alice, _ := planner.NewUser("alice")
	bob, _ := planner.NewUser("bob")
	dir.RegisterUser(alice)
	dir.RegisterUser(bob)

	_, err := dir.CreateEvent("alice", planner.EventDetails{
		Name:      "standup",
		Location:  "room 2",
		StartDay:  planner.Monday,
		EndDay:    planner.Monday,
		StartTime: planner.ClockOf(9, 0),
		EndTime:   planner.ClockOf(9, 30),
	}, "alice", []string{"bob"})

# Current User

Directory operations take explicit user ids. Callers that want a "currently
selected user" call shape (a UI dropdown, for example) wrap the directory in
a Session:

	sess := planner.NewSession(dir)
	sess.SetCurrentUser("alice")
	events, _ := sess.FindEventsAt("Monday", "0915")

The sentinel user "admin" is selected while no real user has been chosen; it
cannot create, host, or attend events.

# Error Handling

All failures carry a typed *planner.Error:

	_, err := dir.CreateEvent("admin", details, "alice", nil)
	if planner.TypeOf(err) == planner.ErrNoActiveUser {
		// ask the caller to pick a user first
	}

# Best-Effort Attaches

Registering a user retroactively attaches events that list them as an
invitee, and creating an event attaches it to every participant. Both attach
passes are best-effort: an attach that fails because the target already holds
a conflicting event is skipped (and logged at Debug), never escalated. A user
can therefore legitimately miss an event they are invited to; the global
registry remains authoritative.
*/
package planner
