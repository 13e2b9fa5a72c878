package dates

import (
	"fmt"
	"time"
)

// ISOLayout is the fallback layout every parser accepts.
const ISOLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// Date is a calendar day with no time-of-day component. The zero value means
// "no date".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// Of normalises y/m/d the way time.Date does, so Of(2024, 2, 30) is March 1.
func Of(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime takes the calendar day of t in t's own location.
func FromTime(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) IsZero() bool { return d == Date{} }

// Time returns midnight of d in loc (UTC when loc is nil).
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	if d.IsZero() {
		return time.Time{}
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) AddDays(n int) Date {
	if d.IsZero() {
		return d
	}
	return FromTime(d.Time(time.UTC).AddDate(0, 0, n))
}

func (d Date) AddMonths(n int) Date {
	if d.IsZero() {
		return d
	}
	return FromTime(d.Time(time.UTC).AddDate(0, n, 0))
}

func (d Date) Weekday() time.Weekday {
	return d.Time(time.UTC).Weekday()
}

// FirstOfMonth returns day 1 of d's month.
func (d Date) FirstOfMonth() Date {
	if d.IsZero() {
		return d
	}
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// IsSameDay reports whether a and b are the same present day.
func IsSameDay(a, b Date) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	return a == b
}

// IsInclusivelyBeforeDay reports a <= b. Absent dates never compare.
func IsInclusivelyBeforeDay(a, b Date) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	return !b.before(a)
}

// IsInclusivelyAfterDay reports a >= b. Absent dates never compare.
func IsInclusivelyAfterDay(a, b Date) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	return !a.before(b)
}

// NightsBetween returns the number of nights from a to b; negative when b is
// before a. Either side absent yields 0.
func NightsBetween(a, b Date) int {
	if a.IsZero() || b.IsZero() {
		return 0
	}
	return int(b.dayNumber() - a.dayNumber())
}

// dayNumber counts days since the Unix epoch.
func (d Date) dayNumber() int64 {
	return d.Time(time.UTC).Unix() / secondsPerDay
}

// Format renders d with a Go layout; absent dates render as "".
func Format(d Date, layout string) string {
	if d.IsZero() {
		return ""
	}
	if layout == "" {
		layout = ISOLayout
	}
	return d.Time(time.UTC).Format(layout)
}
