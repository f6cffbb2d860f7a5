package reminder

import (
	"strconv"
	"strings"
	"time"

	"github.com/deepnoodle-ai/fern/date"
)

// SpecificDate is a parsed one-off date expression. The year of an
// OnDayMonth value is only pinned down when Resolve is called with a
// reference date.
type SpecificDate interface {
	// Resolve turns the expression into a concrete date, using reference
	// to supply any missing parts.
	Resolve(reference date.Date) (date.Date, error)

	specificDate()
}

// OnDate is a fully specified calendar date, e.g. "15.Jan.2022".
type OnDate struct {
	Date date.Date
}

// OnDayMonth is a day and month without a year, e.g. "12.Feb". The year is
// taken from the reference date at resolution time.
type OnDayMonth struct {
	Day   int
	Month time.Month
}

// OnNextWeekday is the next occurrence of a weekday, e.g. "Wednesday".
type OnNextWeekday struct {
	Weekday time.Weekday
}

func (OnDate) specificDate()        {}
func (OnDayMonth) specificDate()    {}
func (OnNextWeekday) specificDate() {}

func (s OnDate) Resolve(date.Date) (date.Date, error) {
	return s.Date, nil
}

func (s OnDayMonth) Resolve(reference date.Date) (date.Date, error) {
	// An impossible combination like Feb 30 surfaces as a construction
	// error here, never as a clamped date.
	return date.New(reference.Year(), s.Month, s.Day)
}

func (s OnNextWeekday) Resolve(reference date.Date) (date.Date, error) {
	return date.NextWeekday(reference, s.Weekday), nil
}

const specificDateGrammar = "expected 'day.month.year' (15.Jan.2022), 'day.month' (12.Feb), or a weekday name"

// ParseSpecificDate parses a one-off date expression. The forms are tried
// in order: day.month.year, then day.month, then a bare weekday name.
func ParseSpecificDate(input string) (SpecificDate, error) {
	trimmed := strings.TrimSpace(input)

	if weekday, ok := parseWeekday(trimmed); ok {
		return OnNextWeekday{Weekday: weekday}, nil
	}

	parts := strings.Split(trimmed, ".")
	switch len(parts) {
	case 3:
		day, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, &ParseError{Input: input, Reason: specificDateGrammar}
		}
		month, ok := parseMonth(parts[1])
		if !ok {
			return nil, &ParseError{Input: input, Reason: specificDateGrammar}
		}
		year, err := strconv.Atoi(parts[2])
		if err != nil {
			return nil, &ParseError{Input: input, Reason: specificDateGrammar}
		}
		d, err := date.New(year, month, day)
		if err != nil {
			return nil, err
		}
		return OnDate{Date: d}, nil
	case 2:
		day, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, &ParseError{Input: input, Reason: specificDateGrammar}
		}
		month, ok := parseMonth(parts[1])
		if !ok {
			return nil, &ParseError{Input: input, Reason: specificDateGrammar}
		}
		return OnDayMonth{Day: day, Month: month}, nil
	default:
		return nil, &ParseError{Input: input, Reason: specificDateGrammar}
	}
}

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
}

// parseWeekday accepts full or three-letter weekday names, case-insensitive.
func parseWeekday(input string) (time.Weekday, bool) {
	weekday, ok := weekdays[strings.ToLower(input)]
	return weekday, ok
}

var months = map[string]time.Month{
	"jan": time.January,
	"feb": time.February,
	"mar": time.March,
	"apr": time.April,
	"may": time.May,
	"jun": time.June,
	"jul": time.July,
	"aug": time.August,
	"sep": time.September,
	"oct": time.October,
	"nov": time.November,
	"dec": time.December,
}

func parseMonth(input string) (time.Month, bool) {
	month, ok := months[strings.ToLower(input)]
	return month, ok
}
