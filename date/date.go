package date

import (
	"fmt"
	"time"
)

// Date is a civil calendar date with no time-of-day or timezone component.
// Internally it is pinned to midnight UTC so that arithmetic is exact.
type Date struct {
	t time.Time
}

// New builds a Date from its calendar components. Impossible dates such as
// February 30th are rejected with a ConstructionError rather than being
// normalized the way time.Date would.
func New(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, &ConstructionError{Year: year, Month: month, Day: day}
	}
	return Date{t: t}, nil
}

// MustNew is New for dates known to be valid, typically in tests.
func MustNew(year int, month time.Month, day int) Date {
	d, err := New(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// FromTime truncates a time.Time to the civil date it falls on.
func FromTime(t time.Time) Date {
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// Parse reads a Date in the YYYY-MM-DD form.
func Parse(value string) (Date, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return FromTime(t), nil
}

func (d Date) Year() int           { return d.t.Year() }
func (d Date) Month() time.Month   { return d.t.Month() }
func (d Date) Day() int            { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }

// AddDays returns the date n calendar days later (or earlier for negative n).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// String formats the date as YYYY-MM-DD, which doubles as the sortable
// filename prefix for journal entries.
func (d Date) String() string {
	return d.t.Format("2006-01-02")
}

// MarshalText implements encoding.TextMarshaler using the YYYY-MM-DD form.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// NextWeekday returns from itself if it already falls on the given weekday,
// otherwise the nearest later date on that weekday. Completes in at most
// seven steps.
func NextWeekday(from Date, weekday time.Weekday) Date {
	d := from
	for i := 0; i < 7; i++ {
		if d.Weekday() == weekday {
			return d
		}
		d = d.AddDays(1)
	}
	return d
}

// DayDistance returns the signed number of calendar days from a to b:
// positive when b is after a, negative when b is before a.
func DayDistance(a, b Date) int {
	return int(b.t.Sub(a.t).Hours() / 24)
}

// ConstructionError reports a day/month/year combination that does not
// exist on the calendar.
type ConstructionError struct {
	Year  int
	Month time.Month
	Day   int
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("no such date: %d.%s.%d", e.Day, e.Month.String()[:3], e.Year)
}
