package planner

// Overlap validation over the cyclic week. Admissibility of a candidate
// against a schedule is the conjunction of pairwise checks; each pair check is
// pure and order-independent.
//
// A scheduled interval that wraps past Saturday is compared as if it ended at
// Saturday 23:59: the wrapped tail in the following week is ignored. This is a
// known limitation kept for compatibility with existing schedules.

// fitsSchedule reports whether the candidate event conflicts with none of the
// scheduled events.
func fitsSchedule(ev *Event, schedule []*Event) bool {
	evStart := ev.startDay.Rank()
	evEnd := ev.endDay.Rank()

	for _, sch := range schedule {
		schStart := sch.startDay.Rank()
		schEnd := sch.endDay.Rank()
		schStartTime := sch.startTime
		schEndTime := sch.endTime

		nextWeek := schStart > schEnd || (schStart == schEnd && schStartTime.After(schEndTime))
		if nextWeek {
			schEnd = Saturday.Rank()
			schEndTime = ClockOf(23, 59)
		}

		if !disjoint(evStart, evEnd, ev.startTime, ev.endTime,
			schStart, schEnd, schStartTime, schEndTime) {
			return false
		}
	}
	return true
}

// disjoint decides one candidate-against-scheduled pair by day rank and clock.
func disjoint(evStart, evEnd int, evStartTime, evEndTime TimeOfDay,
	schStart, schEnd int, schStartTime, schEndTime TimeOfDay) bool {

	// Two single-day intervals on different days cannot collide, provided
	// each runs forward within its own day.
	if evStart == evEnd && schStart == schEnd && evStart != schStart &&
		evStartTime.Before(evEndTime) && schStartTime.Before(schEndTime) {
		return true
	}
	return schEnd < evStart ||
		(schEnd == evStart && schEndTime.Compare(evStartTime) <= 0) ||
		(schStart == evEnd && schStartTime.Compare(evEndTime) >= 0)
}

// nonZeroDuration rejects windows whose start and end coincide exactly.
func nonZeroDuration(startDay, endDay Weekday, startTime, endTime TimeOfDay) bool {
	return startTime != endTime || startDay != endDay
}
