package selection

import (
	"github.com/jask/rangepick/internal/dates"
	"github.com/jask/rangepick/internal/rules"
)

// Options are the behavioural switches of the picker.
type Options struct {
	// MinimumNights is the smallest accepted gap between start and end.
	MinimumNights int
	// KeepOpenOnDateSelect leaves focus on the end field after a valid end.
	KeepOpenOnDateSelect bool
	// ReopenPickerOnClearDates focuses the start field after Clear.
	ReopenPickerOnClearDates bool
	// FullScreenPortal shows the calendar full-bleed; there is no outside.
	FullScreenPortal bool
	Disabled         bool
}

func DefaultOptions() Options {
	return Options{MinimumNights: 1}
}

// Machine evaluates picker interactions. It is a value: copy it freely.
type Machine struct {
	Options Options
	Rules   rules.Predicates
	Parser  dates.Parser
}

func New(opts Options, preds rules.Predicates, parser dates.Parser) Machine {
	return Machine{Options: opts, Rules: preds, Parser: parser}
}

func (m Machine) minimumNights() int {
	if m.Options.MinimumNights < 0 {
		return 0
	}
	return m.Options.MinimumNights
}

// ChangeStart handles text committed in the start field.
func (m Machine) ChangeStart(text string, current Selection) Result {
	day, ok := m.Parser.Parse(text)
	if !ok {
		return datesResult(Selection{end: current.end})
	}
	return m.SelectStartDay(day, current)
}

// SelectStartDay proposes day as the new start. A rejected day nulls the
// start and leaves the end alone; an accepted one clears an end that no
// longer fits and moves focus to the end field.
func (m Machine) SelectStartDay(day dates.Date, current Selection) Result {
	if !m.Rules.Allows(day) {
		return datesResult(Selection{end: current.end})
	}
	end := current.end
	if endViolates(day, end, m.minimumNights()) {
		end = dates.Date{}
	}
	return datesResult(Selection{start: day, end: end}).withFocus(FocusEnd)
}

// ChangeEnd handles text committed in the end field.
func (m Machine) ChangeEnd(text string, current Selection) Result {
	day, ok := m.Parser.Parse(text)
	if !ok {
		return datesResult(Selection{start: current.start})
	}
	return m.SelectEndDay(day, current)
}

// SelectEndDay proposes day as the new end. Any rejection nulls the end.
func (m Machine) SelectEndDay(day dates.Date, current Selection) Result {
	if !m.Rules.Allows(day) || endViolates(current.start, day, m.minimumNights()) {
		return datesResult(Selection{start: current.start})
	}
	r := datesResult(Selection{start: current.start, end: day})
	if !m.Options.KeepOpenOnDateSelect {
		r = r.withFocus(FocusNone)
	}
	return r
}

// SelectDay routes a calendar click by the field that currently has focus.
func (m Machine) SelectDay(day dates.Date, current Selection, focus FocusTarget) Result {
	switch focus {
	case FocusStart:
		return m.SelectStartDay(day, current)
	case FocusEnd:
		return m.SelectEndDay(day, current)
	}
	return Result{}
}

func (m Machine) FocusStart() Result {
	if m.Options.Disabled {
		return Result{}
	}
	return focusResult(FocusStart)
}

// FocusEnd never opens on the end field in full-screen mode while no start
// is chosen.
func (m Machine) FocusEnd(current Selection) Result {
	if m.Options.Disabled {
		return Result{}
	}
	if current.start.IsZero() && m.Options.FullScreenPortal {
		return focusResult(FocusStart)
	}
	return focusResult(FocusEnd)
}

// ClearOutsideClick closes the picker after an interaction outside it.
func (m Machine) ClearOutsideClick(focus FocusTarget) Result {
	if m.Options.FullScreenPortal || focus == FocusNone {
		return Result{}
	}
	return focusResult(FocusNone)
}

// ClearFocus handles tabbing out of either end of the field pair.
func (m Machine) ClearFocus() Result {
	return focusResult(FocusNone)
}

func (m Machine) Clear(focus FocusTarget) Result {
	r := datesResult(Empty())
	if m.Options.ReopenPickerOnClearDates {
		r = r.withFocus(FocusStart)
	}
	return r
}

// DisplayText returns the two field strings for the current selection.
func (m Machine) DisplayText(current Selection) (start, end string) {
	return m.Parser.Format(current.start), m.Parser.Format(current.end)
}
