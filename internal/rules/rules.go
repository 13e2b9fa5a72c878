// Package rules holds the caller-supplied validation predicates that decide
// which days a range may start or end on.
package rules

import (
	"time"

	"github.com/jask/rangepick/internal/dates"
)

// DayFunc reports whether a day is rejected.
type DayFunc func(dates.Date) bool

// Predicates bundles the two rejection checks. Nil funcs reject nothing.
type Predicates struct {
	IsOutsideRange DayFunc
	IsDayBlocked   DayFunc
}

// Defaults rejects every day strictly before clock's today and blocks nothing.
func Defaults(clock dates.Clock) Predicates {
	return Predicates{
		IsOutsideRange: OutsideWindow(clock, 0),
		IsDayBlocked:   func(dates.Date) bool { return false },
	}
}

func (p Predicates) OutsideRange(d dates.Date) bool {
	return p.IsOutsideRange != nil && p.IsOutsideRange(d)
}

func (p Predicates) Blocked(d dates.Date) bool {
	return p.IsDayBlocked != nil && p.IsDayBlocked(d)
}

// Allows reports whether d is present and passes both checks.
func (p Predicates) Allows(d dates.Date) bool {
	return !d.IsZero() && !p.OutsideRange(d) && !p.Blocked(d)
}

// OutsideWindow rejects days before today and, when horizonDays > 0, days
// more than horizonDays after today.
func OutsideWindow(clock dates.Clock, horizonDays int) DayFunc {
	return func(d dates.Date) bool {
		today := clock.Today()
		if !dates.IsInclusivelyAfterDay(d, today) {
			return true
		}
		return horizonDays > 0 && dates.NightsBetween(today, d) > horizonDays
	}
}

func BlockWeekdays(days ...time.Weekday) DayFunc {
	set := make(map[time.Weekday]bool, len(days))
	for _, wd := range days {
		set[wd] = true
	}
	return func(d dates.Date) bool {
		return !d.IsZero() && set[d.Weekday()]
	}
}

// Blocklist is a fixed set of unselectable days.
type Blocklist map[dates.Date]struct{}

func BlockDates(ds ...dates.Date) Blocklist {
	b := make(Blocklist, len(ds))
	for _, d := range ds {
		b.Add(d)
	}
	return b
}

func (b Blocklist) Add(d dates.Date) {
	if d.IsZero() {
		return
	}
	b[d] = struct{}{}
}

func (b Blocklist) Contains(d dates.Date) bool {
	_, ok := b[d]
	return ok
}

func (b Blocklist) Len() int { return len(b) }

// Func adapts the list to a DayFunc.
func (b Blocklist) Func() DayFunc { return b.Contains }

// AnyBlocked rejects a day when any of fns rejects it.
func AnyBlocked(fns ...DayFunc) DayFunc {
	live := make([]DayFunc, 0, len(fns))
	for _, fn := range fns {
		if fn != nil {
			live = append(live, fn)
		}
	}
	return func(d dates.Date) bool {
		for _, fn := range live {
			if fn(d) {
				return true
			}
		}
		return false
	}
}
