package planner

import (
	"fmt"
	"strings"
)

// Weekday identifies one day of the cyclic 7-day week, Sunday=1 through
// Saturday=7. Intervals may wrap past Saturday back into Sunday.
type Weekday int

const (
	Sunday Weekday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var dayNames = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Rank returns the stable 1..7 ordering value of the day.
func (d Weekday) Rank() int {
	return int(d)
}

func (d Weekday) String() string {
	if d < Sunday || d > Saturday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return dayNames[d-1]
}

// DayOf maps a 1..7 rank back to its Weekday.
func DayOf(rank int) (Weekday, error) {
	if rank < 1 || rank > 7 {
		return 0, &Error{
			Type:    ErrInvalidDay,
			Message: fmt.Sprintf("no weekday has rank %d", rank),
		}
	}
	return Weekday(rank), nil
}

// ParseWeekday resolves a day name such as "Sunday" or "WEDNESDAY". Matching
// is case-insensitive and ignores surrounding whitespace.
func ParseWeekday(s string) (Weekday, error) {
	name := strings.TrimSpace(s)
	for i, n := range dayNames {
		if strings.EqualFold(name, n) {
			return Weekday(i + 1), nil
		}
	}
	return 0, &Error{
		Type:    ErrInvalidDay,
		Message: fmt.Sprintf("unknown day name %q", s),
	}
}

// Week returns the seven days in fixed week order, Sunday first.
func Week() []Weekday {
	return []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
}
