package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/rangepick/internal/position"
	"github.com/jask/rangepick/internal/selection"
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// frame is where each piece lands on screen for the current state.
type frame struct {
	trigger     string
	startField  rect
	endField    rect
	clearMark   rect
	anchorLeft  int
	anchorRight int
	overlay     string
	calendar    rect
}

func (a *App) calendar() calendar {
	return calendar{
		first:       a.first,
		months:      a.months,
		vertical:    a.vertical,
		monthFormat: a.monthFormat,
		cursor:      a.cursor,
		showCursor:  a.focus.Open(),
		today:       a.clock.Today(),
		sel:         a.sel,
		preds:       a.machine.Rules,
		styles:      a.styles,
	}
}

func (a *App) fieldStyle(target selection.FocusTarget) lipgloss.Style {
	if a.focus == target {
		return a.styles.fieldFocused.Width(fieldWidth)
	}
	return a.styles.field.Width(fieldWidth)
}

func (a *App) frame() frame {
	startBox := a.fieldStyle(selection.FocusStart).Render(a.start.View())
	endBox := a.fieldStyle(selection.FocusEnd).Render(a.end.View())
	arrow := a.styles.arrow.Render(arrowText)

	parts := []string{startBox, arrow, endBox}
	var mark string
	if a.keys.Clear.Enabled() && !a.sel.IsEmpty() {
		mark = a.styles.arrow.Render(clearText)
		parts = append(parts, mark)
	}

	f := frame{trigger: lipgloss.JoinHorizontal(lipgloss.Center, parts...)}
	f.startField = rect{x: triggerX, y: triggerY, w: lipgloss.Width(startBox), h: lipgloss.Height(startBox)}
	f.endField = rect{
		x: f.startField.x + f.startField.w + lipgloss.Width(arrow),
		y: triggerY,
		w: lipgloss.Width(endBox),
		h: lipgloss.Height(endBox),
	}
	if mark != "" {
		f.clearMark = rect{x: f.endField.x + f.endField.w, y: triggerY, w: lipgloss.Width(mark), h: f.endField.h}
	}
	f.anchorLeft = f.startField.x
	f.anchorRight = f.endField.x + f.endField.w

	f.overlay = a.calendar().render(a.overlayHint())
	w, h := lipgloss.Width(f.overlay), lipgloss.Height(f.overlay)
	if a.centred() {
		f.calendar = rect{x: max((a.width-w)/2, 0), y: max((a.height-h)/2, 0), w: w, h: h}
	} else {
		x := position.Place(f.anchorLeft, f.anchorRight, w, a.anchor)
		f.calendar = rect{x: x, y: triggerY + f.startField.h, w: w, h: h}
	}
	return f
}

// overlayHint is printed inside a centred calendar, which hides the help line
// or the fields.
func (a *App) overlayHint() string {
	if !a.centred() {
		return ""
	}
	parts := []string{"tab close"}
	if !a.fullScreen() {
		parts = append(parts, "esc close")
	}
	if a.keys.Clear.Enabled() {
		parts = append(parts, "ctrl+x clear")
	}
	return strings.Join(append(parts, "ctrl+s confirm"), " · ")
}

func (a *App) View() string {
	f := a.frame()
	height := a.height
	if !a.sized {
		height = f.calendar.y + f.calendar.h + 2
	}
	height = max(height, triggerY+f.startField.h+2)

	if a.fullScreen() && a.focus.Open() {
		return overlayAt(strings.Repeat("\n", height-1), f.overlay, f.calendar.x, f.calendar.y, a.width, height)
	}

	lines := make([]string, height)
	lines[0] = strings.Repeat(" ", triggerX) + a.styles.title.Render("rangepick") + "  " + a.summary()
	for i, line := range splitLines(f.trigger) {
		if row := triggerY + i; row < height {
			lines[row] = strings.Repeat(" ", triggerX) + line
		}
	}
	if a.status != "" {
		st := a.styles.status
		if a.statusErr {
			st = a.styles.statusError
		}
		lines[height-2] = strings.Repeat(" ", triggerX) + st.Render(a.status)
	}
	lines[height-1] = strings.Repeat(" ", triggerX) + a.styles.hint.Render(a.keys.helpLine(a.focus.Open()))

	base := strings.Join(lines, "\n")
	if !a.focus.Open() {
		return base
	}
	return overlayAt(base, f.overlay, f.calendar.x, f.calendar.y, a.width, height)
}

func (a *App) summary() string {
	switch {
	case a.sel.IsComplete():
		nights := a.sel.Nights()
		unit := "nights"
		if nights == 1 {
			unit = "night"
		}
		return a.styles.confirmed.Render(fmt.Sprintf("%d %s", nights, unit))
	case a.sel.IsEmpty():
		return a.styles.hint.Render("no dates")
	}
	return a.styles.hint.Render("incomplete")
}
