package rules

import (
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/jask/rangepick/internal/dates"
)

// BlockRRule expands an RFC 5545 recurrence rule (e.g.
// "FREQ=WEEKLY;BYDAY=SA,SU") between from and to, inclusive, and blocks every
// occurrence. A rule without DTSTART starts at from.
func BlockRRule(rule string, from, to dates.Date) (Blocklist, error) {
	return expandRRule(rule, from, to, nil)
}

// expandRRule is BlockRRule with occurrences on the days in except removed.
func expandRRule(rule string, from, to dates.Date, except []dates.Date) (Blocklist, error) {
	rule = strings.TrimSpace(rule)
	if rule == "" {
		return Blocklist{}, nil
	}
	if from.IsZero() || to.IsZero() || dates.NightsBetween(from, to) < 0 {
		return nil, fmt.Errorf("rrule window %s..%s is empty", from, to)
	}

	opt, err := rrule.StrToROption(strings.TrimPrefix(rule, "RRULE:"))
	if err != nil {
		return nil, fmt.Errorf("parse rrule %q: %w", rule, err)
	}
	if opt.Dtstart.IsZero() {
		opt.Dtstart = from.Time(time.UTC)
	}
	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, fmt.Errorf("build rrule %q: %w", rule, err)
	}

	var set rrule.Set
	set.RRule(r)
	for _, d := range except {
		set.ExDate(atStartTime(d, opt.Dtstart))
	}

	out := Blocklist{}
	for _, t := range set.Between(from.Time(time.UTC), to.Time(time.UTC), true) {
		out.Add(dates.FromTime(t))
	}
	return out, nil
}

// atStartTime places d at the rule's DTSTART time of day so ExDate matches
// the generated occurrence exactly.
func atStartTime(d dates.Date, start time.Time) time.Time {
	h, m, sec := start.Clock()
	return time.Date(d.Year, d.Month, d.Day, h, m, sec, 0, start.Location())
}
