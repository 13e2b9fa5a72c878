package rules

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/jask/rangepick/internal/dates"
)

// LoadICS reads an iCalendar feed (holidays, blackout periods, existing
// bookings) and blocks every day an event covers between from and to.
// All-day events cover DTSTART up to but excluding DTEND. Recurring events
// are expanded inside the same window.
func LoadICS(r io.Reader, from, to dates.Date) (Blocklist, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parse ics: %w", err)
	}

	out := Blocklist{}
	for _, ev := range cal.Events() {
		first, last, err := eventDays(ev)
		if err != nil {
			// skip unreadable events, keep the rest of the feed
			continue
		}
		span := dates.NightsBetween(first, last)

		starts := []dates.Date{first}
		if prop := ev.GetProperty(ical.ComponentProperty(ical.PropertyRrule)); prop != nil && prop.Value != "" {
			rule := fmt.Sprintf("DTSTART=%s;%s", first.Time(time.UTC).Format("20060102T150405Z"), prop.Value)
			occ, err := expandRRule(rule, from.AddDays(-span), to, exceptionDays(ev))
			if err != nil {
				return nil, fmt.Errorf("expand event rrule: %w", err)
			}
			starts = starts[:0]
			for d := range occ {
				starts = append(starts, d)
			}
		}

		for _, s := range starts {
			for i := 0; i <= span; i++ {
				d := s.AddDays(i)
				if dates.IsInclusivelyAfterDay(d, from) && dates.IsInclusivelyBeforeDay(d, to) {
					out.Add(d)
				}
			}
		}
	}
	return out, nil
}

// eventDays returns the first and last calendar day a VEVENT touches.
func eventDays(ev *ical.VEvent) (dates.Date, dates.Date, error) {
	prop := ev.GetProperty(ical.ComponentPropertyDtStart)
	if prop == nil || prop.Value == "" {
		return dates.Date{}, dates.Date{}, errors.New("missing DTSTART")
	}

	if isAllDay(prop) {
		start, err := ev.GetAllDayStartAt()
		if err != nil {
			return dates.Date{}, dates.Date{}, err
		}
		first := dates.FromTime(start)
		last := first
		if end, err := ev.GetAllDayEndAt(); err == nil && !end.IsZero() {
			if d := dates.FromTime(end).AddDays(-1); dates.NightsBetween(first, d) > 0 {
				last = d
			}
		}
		return first, last, nil
	}

	start, err := ev.GetStartAt()
	if err != nil {
		return dates.Date{}, dates.Date{}, err
	}
	first := dates.FromTime(start)
	last := first
	if end, err := ev.GetEndAt(); err == nil && end.After(start) {
		// An event ending exactly at midnight does not occupy that day.
		end = end.Add(-time.Nanosecond)
		last = dates.FromTime(end)
	}
	return first, last, nil
}

// exceptionDays collects the days listed in the event's EXDATE properties.
func exceptionDays(ev *ical.VEvent) []dates.Date {
	var out []dates.Date
	for _, prop := range ev.GetProperties(ical.ComponentPropertyExdate) {
		for _, part := range strings.Split(prop.Value, ",") {
			if d, ok := parseICSDay(strings.TrimSpace(part)); ok {
				out = append(out, d)
			}
		}
	}
	return out
}

// parseICSDay reads the calendar day of a DATE or DATE-TIME value.
func parseICSDay(v string) (dates.Date, bool) {
	for _, layout := range []string{"20060102T150405Z", "20060102T150405", "20060102"} {
		if t, err := time.Parse(layout, v); err == nil {
			return dates.FromTime(t), true
		}
	}
	return dates.Date{}, false
}

func isAllDay(prop *ical.IANAProperty) bool {
	if vs, ok := prop.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		return true
	}
	return !strings.Contains(prop.Value, "T")
}
