package rules

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/rangepick/internal/dates"
)

func TestDefaultsRejectPastDaysOnly(t *testing.T) {
	today := dates.Of(2024, time.March, 10)
	p := Defaults(dates.FixedClock(today))

	require.True(t, p.OutsideRange(today.AddDays(-1)))
	require.False(t, p.OutsideRange(today))
	require.False(t, p.OutsideRange(today.AddDays(400)))
	require.False(t, p.Blocked(today))
	require.True(t, p.Allows(today))
	require.False(t, p.Allows(dates.Date{}))
}

func TestZeroPredicatesAllowEverything(t *testing.T) {
	var p Predicates
	require.True(t, p.Allows(dates.Of(1999, time.January, 1)))
}

func TestOutsideWindowHorizon(t *testing.T) {
	today := dates.Of(2024, time.March, 10)
	outside := OutsideWindow(dates.FixedClock(today), 30)

	require.False(t, outside(today.AddDays(30)))
	require.True(t, outside(today.AddDays(31)))
	require.True(t, outside(today.AddDays(-1)))
}

func TestBlockWeekdaysAndDates(t *testing.T) {
	sat := dates.Of(2024, time.March, 9)
	blocked := AnyBlocked(
		BlockWeekdays(time.Saturday, time.Sunday),
		BlockDates(dates.Of(2024, time.March, 13)).Func(),
		nil,
	)

	require.True(t, blocked(sat))
	require.True(t, blocked(sat.AddDays(1)))
	require.False(t, blocked(sat.AddDays(2)))
	require.True(t, blocked(dates.Of(2024, time.March, 13)))
}

func TestBlockRRuleWeekends(t *testing.T) {
	from := dates.Of(2024, time.March, 1) // Friday
	to := dates.Of(2024, time.March, 10)  // Sunday

	list, err := BlockRRule("FREQ=WEEKLY;BYDAY=SA,SU", from, to)
	require.NoError(t, err)
	require.Equal(t, 4, list.Len())
	for _, d := range []dates.Date{
		dates.Of(2024, time.March, 2),
		dates.Of(2024, time.March, 3),
		dates.Of(2024, time.March, 9),
		dates.Of(2024, time.March, 10),
	} {
		require.True(t, list.Contains(d), "missing %s", d)
	}
}

func TestBlockRRuleErrors(t *testing.T) {
	empty, err := BlockRRule("  ", dates.Date{}, dates.Date{})
	require.NoError(t, err)
	require.Zero(t, empty.Len())

	_, err = BlockRRule("FREQ=NEVER", dates.Of(2024, time.March, 1), dates.Of(2024, time.March, 2))
	require.Error(t, err)

	_, err = BlockRRule("FREQ=DAILY", dates.Of(2024, time.March, 2), dates.Of(2024, time.March, 1))
	require.Error(t, err)
}

const holidayFeed = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//rangepick//test//EN
BEGIN:VEVENT
UID:easter@test
DTSTAMP:20240101T000000Z
DTSTART;VALUE=DATE:20240329
DTEND;VALUE=DATE:20240402
SUMMARY:Easter break
END:VEVENT
BEGIN:VEVENT
UID:standup@test
DTSTAMP:20240101T000000Z
DTSTART:20240305T090000Z
DTEND:20240305T093000Z
SUMMARY:Standup
END:VEVENT
BEGIN:VEVENT
UID:payday@test
DTSTAMP:20240101T000000Z
DTSTART;VALUE=DATE:20240115
RRULE:FREQ=MONTHLY;BYMONTHDAY=15
SUMMARY:Payday
END:VEVENT
END:VCALENDAR
`

func TestLoadICS(t *testing.T) {
	from := dates.Of(2024, time.March, 1)
	to := dates.Of(2024, time.April, 30)

	list, err := LoadICS(strings.NewReader(strings.ReplaceAll(holidayFeed, "\n", "\r\n")), from, to)
	require.NoError(t, err)

	// Easter break spans Mar 29 .. Apr 1 (DTEND is exclusive).
	for d := dates.Of(2024, time.March, 29); dates.IsInclusivelyBeforeDay(d, dates.Of(2024, time.April, 1)); d = d.AddDays(1) {
		require.True(t, list.Contains(d), "missing %s", d)
	}
	require.False(t, list.Contains(dates.Of(2024, time.April, 2)))

	require.True(t, list.Contains(dates.Of(2024, time.March, 5)))
	require.False(t, list.Contains(dates.Of(2024, time.March, 6)))

	require.True(t, list.Contains(dates.Of(2024, time.March, 15)))
	require.True(t, list.Contains(dates.Of(2024, time.April, 15)))
	require.False(t, list.Contains(dates.Of(2024, time.January, 15)))
}

const gymFeed = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//rangepick//test//EN
BEGIN:VEVENT
UID:gym@test
DTSTAMP:20240101T000000Z
DTSTART;VALUE=DATE:20240304
RRULE:FREQ=WEEKLY;BYDAY=MO
EXDATE;VALUE=DATE:20240311,20240325
EXDATE:20240401T000000Z
SUMMARY:Gym closed
END:VEVENT
END:VCALENDAR
`

func TestLoadICSHonoursExDates(t *testing.T) {
	from := dates.Of(2024, time.March, 1)
	to := dates.Of(2024, time.April, 30)

	list, err := LoadICS(strings.NewReader(strings.ReplaceAll(gymFeed, "\n", "\r\n")), from, to)
	require.NoError(t, err)

	for _, d := range []dates.Date{
		dates.Of(2024, time.March, 4),
		dates.Of(2024, time.March, 18),
		dates.Of(2024, time.April, 8),
	} {
		require.True(t, list.Contains(d), "missing %s", d)
	}
	for _, d := range []dates.Date{
		dates.Of(2024, time.March, 11),
		dates.Of(2024, time.March, 25),
		dates.Of(2024, time.April, 1),
	} {
		require.False(t, list.Contains(d), "excluded %s still blocked", d)
	}
}
