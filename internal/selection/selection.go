// Package selection decides, for every picker interaction, what the next
// start/end/focus triple is. Nothing here holds state between calls: the
// caller owns the authoritative Selection and FocusTarget and hands them back
// in on each operation.
package selection

import (
	"fmt"
	"strings"

	"github.com/jask/rangepick/internal/dates"
)

// FocusTarget is which field currently drives the calendar.
type FocusTarget int

const (
	FocusNone FocusTarget = iota
	FocusStart
	FocusEnd
)

func (f FocusTarget) String() string {
	switch f {
	case FocusStart:
		return "startDate"
	case FocusEnd:
		return "endDate"
	default:
		return "none"
	}
}

// Open reports whether the calendar is showing.
func (f FocusTarget) Open() bool { return f == FocusStart || f == FocusEnd }

func ParseFocusTarget(s string) (FocusTarget, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return FocusNone, nil
	case "start", "startdate":
		return FocusStart, nil
	case "end", "enddate":
		return FocusEnd, nil
	}
	return FocusNone, fmt.Errorf("unknown focus target %q", s)
}

// Selection is a start/end pair. Whenever both days are present the end is
// strictly after the start and at least the configured minimum nights away;
// the only ways to build one are NewSelection and the Machine transitions.
type Selection struct {
	start dates.Date
	end   dates.Date
}

// NewSelection builds a Selection, dropping an end that would break the
// ordering or minimum-nights rule.
func NewSelection(start, end dates.Date, minimumNights int) Selection {
	if endViolates(start, end, minimumNights) {
		end = dates.Date{}
	}
	return Selection{start: start, end: end}
}

func Empty() Selection { return Selection{} }

func (s Selection) Start() dates.Date { return s.start }
func (s Selection) End() dates.Date   { return s.end }

func (s Selection) IsEmpty() bool    { return s.start.IsZero() && s.end.IsZero() }
func (s Selection) IsComplete() bool { return !s.start.IsZero() && !s.end.IsZero() }

// Nights is the night count of a complete selection, 0 otherwise.
func (s Selection) Nights() int {
	if !s.IsComplete() {
		return 0
	}
	return dates.NightsBetween(s.start, s.end)
}

// Contains reports whether d falls inside a complete selection, both ends
// included.
func (s Selection) Contains(d dates.Date) bool {
	return s.IsComplete() &&
		dates.IsInclusivelyAfterDay(d, s.start) &&
		dates.IsInclusivelyBeforeDay(d, s.end)
}

func (s Selection) String() string {
	return fmt.Sprintf("{start: %s, end: %s}", orAbsent(s.start), orAbsent(s.end))
}

func orAbsent(d dates.Date) string {
	if d.IsZero() {
		return "absent"
	}
	return d.String()
}

// endViolates reports whether end cannot sit alongside start. A missing side
// never violates.
func endViolates(start, end dates.Date, minimumNights int) bool {
	if start.IsZero() || end.IsZero() {
		return false
	}
	if dates.IsInclusivelyBeforeDay(end, start) {
		return true
	}
	return dates.NightsBetween(start, end) < minimumNights
}
