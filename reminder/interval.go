package reminder

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/deepnoodle-ai/fern/date"
)

// Interval is a parsed recurrence expression for a recurring reminder.
type Interval interface {
	// DueOn reports whether a reminder anchored at anchor fires on day.
	DueOn(anchor, day date.Date) bool

	// Describe returns the human description shown in listings in place
	// of a concrete date.
	Describe() string

	interval()
}

// EveryWeekday fires on every occurrence of one weekday.
type EveryWeekday struct {
	Weekday time.Weekday
}

// Periodic fires every Amount*Unit days measured from the anchor date.
// Amount must be positive; both parse paths enforce that, and a
// non-positive period is simply never due.
type Periodic struct {
	Amount int
	Unit   Unit
}

func (EveryWeekday) interval() {}
func (Periodic) interval()     {}

func (i EveryWeekday) DueOn(_, day date.Date) bool {
	return day.Weekday() == i.Weekday
}

func (i EveryWeekday) Describe() string {
	return "every " + i.Weekday.String()
}

func (i Periodic) DueOn(anchor, day date.Date) bool {
	period := i.Amount * i.Unit.days()
	if period <= 0 {
		return false
	}
	distance := date.DayDistance(anchor, day)
	// Normalized so the check is symmetric around the anchor: dates before
	// it are due whenever the distance divides evenly, same as dates after.
	return ((distance%period)+period)%period == 0
}

func (i Periodic) Describe() string {
	if i.Amount == 1 {
		return "every " + strings.TrimSuffix(i.Unit.String(), "s")
	}
	return fmt.Sprintf("every %d %s", i.Amount, i.Unit)
}

// Unit is the length unit of a periodic interval.
type Unit int

const (
	UnitDays Unit = iota
	UnitWeeks
)

func (u Unit) String() string {
	switch u {
	case UnitDays:
		return "days"
	case UnitWeeks:
		return "weeks"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

func (u Unit) days() int {
	if u == UnitWeeks {
		return 7
	}
	return 1
}

func parseUnit(input string) (Unit, bool) {
	switch strings.ToLower(input) {
	case "days":
		return UnitDays, true
	case "weeks":
		return UnitWeeks, true
	default:
		return 0, false
	}
}

// ParseInterval parses a recurrence expression: either a bare weekday name
// ("Wednesday") or '<amount>.<unit>' with unit days or weeks ("2.weeks").
func ParseInterval(input string) (Interval, error) {
	trimmed := strings.TrimSpace(input)

	if weekday, ok := parseWeekday(trimmed); ok {
		return EveryWeekday{Weekday: weekday}, nil
	}

	parts := strings.Split(trimmed, ".")
	if len(parts) != 2 {
		return nil, &ParseError{
			Input:  input,
			Reason: "expected a weekday name or '<amount>.<unit>' such as '2.weeks'",
		}
	}

	amount, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, &ParseError{
			Input:  input,
			Reason: fmt.Sprintf("amount %q is not a number", parts[0]),
		}
	}
	if amount <= 0 {
		return nil, &ParseError{
			Input:  input,
			Reason: fmt.Sprintf("amount %q must be positive", parts[0]),
		}
	}

	unit, ok := parseUnit(parts[1])
	if !ok {
		return nil, &ParseError{
			Input:  input,
			Reason: fmt.Sprintf("unknown unit %q, expected days or weeks", parts[1]),
		}
	}

	return Periodic{Amount: amount, Unit: unit}, nil
}
