// Package tui is the terminal shell around the range picker. It owns the
// authoritative selection and focus and feeds every interaction through
// selection.Machine.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/rangepick/internal/dates"
	"github.com/jask/rangepick/internal/position"
	"github.com/jask/rangepick/internal/selection"
)

const (
	triggerX     = 2
	triggerY     = 2
	fieldWidth   = 16
	inputWidth   = 12
	arrowText    = " → "
	clearText    = " ✕"
	defaultMonth = 2

	defaultMonthFormat = "January 2006"
)

// Options configure the shell.
type Options struct {
	Machine        selection.Machine
	Clock          dates.Clock
	Anchor         position.AnchorDirection
	Margin         int
	NumberOfMonths int
	Initial        selection.Selection

	// WithPortal centres the calendar over the screen instead of hanging it
	// under the fields.
	WithPortal bool
	// ShowClearDates enables ctrl+x and the clear mark next to the fields.
	ShowClearDates bool
	Orientation    position.Orientation
	MonthFormat    string
	// InitialVisibleMonth is shown when the calendar opens with no dates.
	InitialVisibleMonth dates.Date
	InitialFocus        selection.FocusTarget
}

// App is the bubbletea model.
type App struct {
	machine selection.Machine
	clock   dates.Clock
	keys    keyMap
	styles  styles

	sel   selection.Selection
	focus selection.FocusTarget
	start textinput.Model
	end   textinput.Model

	cursor       dates.Date
	first        dates.Date
	months       int
	vertical     bool
	monthFormat  string
	visibleMonth dates.Date
	portal       bool

	anchor position.PositionStyles
	margin int
	width  int
	height int
	sized  bool

	status    string
	statusErr bool
	confirmed bool
	initCmd   tea.Cmd
}

func New(opts Options) *App {
	clock := opts.Clock
	if clock == nil {
		clock = dates.SystemClock{}
	}
	months := opts.NumberOfMonths
	if months < 1 {
		months = defaultMonth
	}
	a := &App{
		machine:      opts.Machine,
		clock:        clock,
		keys:         defaultKeys(),
		styles:       newStyles(),
		start:        newInput("start date"),
		end:          newInput("end date"),
		months:       months,
		vertical:     opts.Orientation == position.Vertical,
		monthFormat:  opts.MonthFormat,
		visibleMonth: opts.InitialVisibleMonth.FirstOfMonth(),
		portal:       opts.WithPortal,
		anchor:       position.PositionStyles{Direction: opts.Anchor},
		margin:       opts.Margin,
	}
	if a.monthFormat == "" {
		a.monthFormat = defaultMonthFormat
	}
	if a.anchor.Direction != position.AnchorRight {
		a.anchor.Direction = position.AnchorLeft
	}
	a.keys.Clear.SetEnabled(opts.ShowClearDates && !opts.Machine.Options.Disabled)
	a.setSelection(opts.Initial)
	a.moveCursor(a.openingCursor())
	switch opts.InitialFocus {
	case selection.FocusStart:
		a.initCmd = a.apply(a.machine.FocusStart())
	case selection.FocusEnd:
		a.initCmd = a.apply(a.machine.FocusEnd(a.sel))
	}
	return a
}

func newInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = 32
	in.Width = inputWidth
	return in
}

// Init returns the cursor blink of an initially focused field.
func (a *App) Init() tea.Cmd { return a.initCmd }

// Selection is the current authoritative selection.
func (a *App) Selection() selection.Selection { return a.sel }

func (a *App) Focus() selection.FocusTarget { return a.focus }

// Confirmed reports whether the user confirmed a complete range.
func (a *App) Confirmed() bool { return a.confirmed }

// Anchor is the last computed overlay position.
func (a *App) Anchor() position.PositionStyles { return a.anchor }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.sized = true
		a.reposition()
		return a, nil
	case tea.MouseMsg:
		return a, a.handleMouse(m)
	case tea.KeyMsg:
		return a.handleKey(m)
	}
	return a, a.updateInput(msg)
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.ForceQ):
		return a, tea.Quit
	case key.Matches(m, a.keys.Confirm):
		return a.confirm()
	case key.Matches(m, a.keys.Clear):
		return a, a.clear()
	}

	if !a.focus.Open() {
		switch {
		case key.Matches(m, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(m, a.keys.Next), key.Matches(m, a.keys.Commit):
			return a, a.apply(a.machine.FocusStart())
		case key.Matches(m, a.keys.Prev):
			return a, a.apply(a.machine.FocusEnd(a.sel))
		}
		return a, nil
	}

	switch {
	case key.Matches(m, a.keys.Next):
		before := a.focus
		cmd := a.commitPending()
		if a.focus != before {
			return a, cmd
		}
		if before == selection.FocusStart {
			return a, tea.Batch(cmd, a.apply(a.machine.FocusEnd(a.sel)))
		}
		return a, tea.Batch(cmd, a.apply(a.machine.ClearFocus()))
	case key.Matches(m, a.keys.Prev):
		before := a.focus
		cmd := a.commitPending()
		if a.focus != before {
			return a, cmd
		}
		if before == selection.FocusStart {
			return a, tea.Batch(cmd, a.apply(a.machine.ClearFocus()))
		}
		return a, tea.Batch(cmd, a.apply(a.machine.FocusStart()))
	case key.Matches(m, a.keys.Close):
		return a, a.apply(a.machine.ClearOutsideClick(a.focus))
	case key.Matches(m, a.keys.Commit):
		if a.dirty() {
			return a, a.commitPending()
		}
		return a, a.selectDay(a.cursor)
	case key.Matches(m, a.keys.Left):
		a.moveCursor(a.cursor.AddDays(-1))
	case key.Matches(m, a.keys.Right):
		a.moveCursor(a.cursor.AddDays(1))
	case key.Matches(m, a.keys.Up):
		a.moveCursor(a.cursor.AddDays(-7))
	case key.Matches(m, a.keys.Down):
		a.moveCursor(a.cursor.AddDays(7))
	case key.Matches(m, a.keys.PrevPage):
		a.moveCursor(shiftMonths(a.cursor, -1))
	case key.Matches(m, a.keys.NextPage):
		a.moveCursor(shiftMonths(a.cursor, 1))
	default:
		return a, a.updateInput(m)
	}
	return a, nil
}

func (a *App) handleMouse(m tea.MouseMsg) tea.Cmd {
	if m.Action != tea.MouseActionPress || m.Button != tea.MouseButtonLeft {
		return nil
	}
	f := a.frame()
	open := a.focus.Open()
	if open && f.calendar.contains(m.X, m.Y) {
		if day, ok := a.calendar().dayAt(m.X-f.calendar.x, m.Y-f.calendar.y); ok {
			a.moveCursor(day)
			return a.selectDay(day)
		}
		return nil
	}
	// a centred calendar covers the fields while it is open
	if !open || !a.centred() {
		switch {
		case f.startField.contains(m.X, m.Y):
			return a.apply(a.machine.FocusStart())
		case f.endField.contains(m.X, m.Y):
			return a.apply(a.machine.FocusEnd(a.sel))
		case f.clearMark.contains(m.X, m.Y):
			return a.clear()
		}
	}
	return a.apply(a.machine.ClearOutsideClick(a.focus))
}

func (a *App) clear() tea.Cmd {
	a.setStatus("")
	return a.apply(a.machine.Clear(a.focus))
}

func (a *App) confirm() (tea.Model, tea.Cmd) {
	cmd := a.commitPending()
	if !a.sel.IsComplete() {
		a.setError("pick a start and an end date first")
		return a, cmd
	}
	a.confirmed = true
	return a, tea.Batch(cmd, tea.Quit)
}

func (a *App) selectDay(day dates.Date) tea.Cmd {
	target := a.focus
	cmd := a.apply(a.machine.SelectDay(day, a.sel, target))
	switch {
	case target == selection.FocusStart && !dates.IsSameDay(a.sel.Start(), day),
		target == selection.FocusEnd && !dates.IsSameDay(a.sel.End(), day):
		a.setError(fmt.Sprintf("%s is not available", a.machine.Parser.Format(day)))
	default:
		a.setStatus("")
	}
	return cmd
}

// dirty reports whether the focused field holds text that has not been
// committed yet.
func (a *App) dirty() bool {
	startText, endText := a.machine.DisplayText(a.sel)
	switch a.focus {
	case selection.FocusStart:
		return a.start.Value() != startText
	case selection.FocusEnd:
		return a.end.Value() != endText
	}
	return false
}

func (a *App) commitPending() tea.Cmd {
	if !a.dirty() {
		return nil
	}
	switch a.focus {
	case selection.FocusStart:
		text := a.start.Value()
		cmd := a.apply(a.machine.ChangeStart(text, a.sel))
		a.reportCommit(text, a.sel.Start(), "start")
		return cmd
	case selection.FocusEnd:
		text := a.end.Value()
		cmd := a.apply(a.machine.ChangeEnd(text, a.sel))
		a.reportCommit(text, a.sel.End(), "end")
		return cmd
	}
	return nil
}

func (a *App) reportCommit(text string, got dates.Date, field string) {
	switch {
	case !got.IsZero():
		a.moveCursor(got)
		a.setStatus("")
	case strings.TrimSpace(text) != "":
		a.setError(fmt.Sprintf("%q is not an available %s date", strings.TrimSpace(text), field))
	default:
		a.setStatus("")
	}
}

// apply runs a machine result through the notification boundary.
func (a *App) apply(r selection.Result) tea.Cmd {
	var cmds []tea.Cmd
	selection.Notifier{
		OnDatesChange: a.setSelection,
		OnFocusChange: func(f selection.FocusTarget) { cmds = append(cmds, a.setFocus(f)) },
	}.Dispatch(r)
	return tea.Batch(cmds...)
}

func (a *App) setSelection(s selection.Selection) {
	a.sel = s
	startText, endText := a.machine.DisplayText(s)
	a.start.SetValue(startText)
	a.end.SetValue(endText)
}

func (a *App) setFocus(f selection.FocusTarget) tea.Cmd {
	opening := !a.focus.Open() && f.Open()
	a.focus = f
	a.start.Blur()
	a.end.Blur()
	if opening {
		a.moveCursor(a.openingCursor())
	}
	switch f {
	case selection.FocusStart:
		a.start.CursorEnd()
		return a.start.Focus()
	case selection.FocusEnd:
		a.end.CursorEnd()
		return a.end.Focus()
	}
	return nil
}

func (a *App) openingCursor() dates.Date {
	primary, secondary := a.sel.Start(), a.sel.End()
	if a.focus == selection.FocusEnd {
		primary, secondary = secondary, primary
	}
	switch {
	case !primary.IsZero():
		return primary
	case !secondary.IsZero():
		return secondary
	case !a.visibleMonth.IsZero():
		return a.visibleMonth
	}
	return a.clock.Today()
}

func (a *App) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.focus {
	case selection.FocusStart:
		a.start, cmd = a.start.Update(msg)
	case selection.FocusEnd:
		a.end, cmd = a.end.Update(msg)
	}
	return cmd
}

// moveCursor places the day cursor and scrolls the visible months so that it
// stays on screen.
func (a *App) moveCursor(d dates.Date) {
	if d.IsZero() {
		return
	}
	a.cursor = d
	month := d.FirstOfMonth()
	last := a.first.AddMonths(a.months - 1)
	switch {
	case a.first.IsZero(), !dates.IsInclusivelyAfterDay(month, a.first):
		a.first = month
	case !dates.IsInclusivelyBeforeDay(month, last):
		a.first = month.AddMonths(-(a.months - 1))
	}
}

func (a *App) setStatus(s string) {
	a.status = s
	a.statusErr = false
}

func (a *App) setError(s string) {
	a.status = s
	a.statusErr = true
}

func (a *App) fullScreen() bool { return a.machine.Options.FullScreenPortal }

// centred reports whether the calendar floats in the middle of the screen
// rather than hanging under the fields.
func (a *App) centred() bool { return a.portal || a.fullScreen() }

// reposition measures the overlay against the viewport and keeps it inside.
func (a *App) reposition() {
	if !a.sized || a.centred() {
		return
	}
	f := a.frame()
	g := position.Measure(f.anchorLeft, f.anchorRight, f.calendar.w, a.width, a.margin, a.anchor)
	if next, ok := position.Responsivize(g); ok {
		a.anchor = next
	}
}
