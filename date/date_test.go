package date

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewRejectsImpossibleDates(t *testing.T) {
	_, err := New(2022, time.February, 30)
	require.Error(t, err)

	var cerr *ConstructionError
	require.True(t, errors.As(err, &cerr))
	require.Equal(t, 30, cerr.Day)
	require.Equal(t, time.February, cerr.Month)

	_, err = New(2021, time.February, 29)
	require.Error(t, err, "2021 is not a leap year")

	_, err = New(2020, time.February, 29)
	require.NoError(t, err, "2020 is a leap year")
}

func TestParseAndString(t *testing.T) {
	d, err := Parse("2021-07-15")
	require.NoError(t, err)
	require.Equal(t, "2021-07-15", d.String())
	require.Equal(t, time.Thursday, d.Weekday())

	_, err = Parse("15.07.2021")
	require.Error(t, err)
}

func TestNextWeekday(t *testing.T) {
	// 2021-07-15 was a Thursday.
	thursday := MustNew(2021, time.July, 15)

	require.Equal(t, thursday, NextWeekday(thursday, time.Thursday),
		"a date already on the weekday is returned unchanged")

	friday := NextWeekday(thursday, time.Friday)
	require.Equal(t, "2021-07-16", friday.String())

	wednesday := NextWeekday(thursday, time.Wednesday)
	require.Equal(t, "2021-07-21", wednesday.String(), "wraps into the next week")
}

func TestDayDistance(t *testing.T) {
	a := MustNew(2021, time.July, 15)
	b := a.AddDays(14)

	require.Equal(t, 14, DayDistance(a, b))
	require.Equal(t, -14, DayDistance(b, a))
	require.Equal(t, 0, DayDistance(a, a))

	// Across a DST boundary nothing shifts, dates are purely civil.
	before := MustNew(2021, time.March, 27)
	after := MustNew(2021, time.March, 29)
	require.Equal(t, 2, DayDistance(before, after))
}

func TestControlledClock(t *testing.T) {
	clock := NewControlledClock(MustNew(2021, time.July, 15))

	require.Equal(t, "2021-07-15", clock.Today().String())
	require.Equal(t, "2021-07-18", clock.After(3).String())
	require.Equal(t, "2021-07-15", clock.Today().String(), "After does not move the clock")

	clock.AdvanceBy(3)
	require.Equal(t, "2021-07-18", clock.Today().String())

	clock.AdvanceTo(time.Wednesday)
	require.Equal(t, "2021-07-21", clock.Today().String())
}
