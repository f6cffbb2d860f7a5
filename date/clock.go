package date

import "time"

// Clock provides the current date. Abstracting it keeps everything that
// depends on "today" testable with a controlled clock.
type Clock interface {
	Today() Date
}

// WallClock reads the real system time.
type WallClock struct{}

func (WallClock) Today() Date {
	return FromTime(time.Now())
}

// ControlledClock is a Clock fixed to a settable date, for tests.
type ControlledClock struct {
	current Date
}

// NewControlledClock returns a clock pinned to the given date.
func NewControlledClock(d Date) *ControlledClock {
	return &ControlledClock{current: d}
}

func (c *ControlledClock) Today() Date {
	return c.current
}

// After returns the date the given number of days from now without moving
// the clock.
func (c *ControlledClock) After(days int) Date {
	return c.current.AddDays(days)
}

// AdvanceBy moves the clock forward by the given number of days.
func (c *ControlledClock) AdvanceBy(days int) {
	c.current = c.current.AddDays(days)
}

// AdvanceTo moves the clock forward to the next occurrence of the given
// weekday, staying put if it is already there.
func (c *ControlledClock) AdvanceTo(weekday time.Weekday) {
	c.current = NextWeekday(c.current, weekday)
}
