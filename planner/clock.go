package planner

import "fmt"

// TimeOfDay is a naive minute-precision wall-clock time within one day.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ClockOf builds a TimeOfDay from hour and minute. Callers are expected to
// pass in-range values; ParseClock validates external input.
func ClockOf(hour, minute int) TimeOfDay {
	return TimeOfDay{Hour: hour, Minute: minute}
}

// ParseClock parses a 4-digit 24-hour token such as "0930" or "2359".
func ParseClock(s string) (TimeOfDay, error) {
	if len(s) != 4 {
		return TimeOfDay{}, &Error{
			Type:    ErrInvalidField,
			Message: fmt.Sprintf("clock token %q is not 4 digits", s),
		}
	}
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%2d%2d", &hour, &minute); err != nil {
		return TimeOfDay{}, &Error{
			Type:    ErrInvalidField,
			Message: fmt.Sprintf("clock token %q is not numeric", s),
			Err:     err,
		}
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, &Error{
			Type:    ErrInvalidField,
			Message: fmt.Sprintf("clock token %q is out of range", s),
		}
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// String formats the time as a 4-digit 24-hour token.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d%02d", t.Hour, t.Minute)
}

// MinuteOfDay returns minutes elapsed since midnight.
func (t TimeOfDay) MinuteOfDay() int {
	return t.Hour*60 + t.Minute
}

// Compare orders two clock values: -1 if t is earlier than u, 0 if equal,
// 1 if later.
func (t TimeOfDay) Compare(u TimeOfDay) int {
	switch {
	case t.MinuteOfDay() < u.MinuteOfDay():
		return -1
	case t.MinuteOfDay() > u.MinuteOfDay():
		return 1
	default:
		return 0
	}
}

func (t TimeOfDay) Before(u TimeOfDay) bool {
	return t.Compare(u) < 0
}

func (t TimeOfDay) After(u TimeOfDay) bool {
	return t.Compare(u) > 0
}

// minuteOfWeek projects a (day, time) point onto the 0..10079 minute grid of
// one week.
func minuteOfWeek(day Weekday, t TimeOfDay) int {
	return (day.Rank()-1)*24*60 + t.MinuteOfDay()
}

// Advance adds durationMinutes to a (day, time) start point, carrying across
// hour, day, and week boundaries. weeksCrossed reports how many full weeks the
// end point crossed past Saturday (0 normally, 1 when the interval wraps into
// the next week's Sunday).
func Advance(day Weekday, start TimeOfDay, durationMinutes int) (endDay Weekday, endTime TimeOfDay, weeksCrossed int) {
	minute := start.Minute + durationMinutes%60
	hour := start.Hour + durationMinutes/60

	if minute >= 60 {
		hour += minute / 60
		minute %= 60
	}

	extraDays := 0
	if hour >= 24 {
		extraDays = hour / 24
		hour %= 24
	}

	total := day.Rank() - 1 + extraDays
	endDay = Weekday(total%7 + 1)
	weeksCrossed = total / 7
	return endDay, TimeOfDay{Hour: hour, Minute: minute}, weeksCrossed
}
