package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/rangepick/internal/dates"
	"github.com/jask/rangepick/internal/rules"
	"github.com/jask/rangepick/internal/selection"
)

const (
	cellWidth  = 3
	monthWidth = 7 * cellWidth
	monthGap   = 2
	weekRows   = 6
	// blank rows between stacked months
	monthGapRows = 1

	// rows above the first week inside a month block: title, weekday header
	monthHeaderRows = 2
	// border + padding on the left of the calendar box, border on top
	calendarInsetX = 2
	calendarInsetY = 1
)

// calendar renders numberOfMonths month grids side by side, or stacked when
// vertical. It is rebuilt from the App on every render.
type calendar struct {
	first       dates.Date
	months      int
	vertical    bool
	monthFormat string
	cursor      dates.Date
	showCursor  bool
	today       dates.Date
	sel         selection.Selection
	preds       rules.Predicates
	styles      styles
}

func (c calendar) render(hint string) string {
	blocks := make([]string, 0, 2*c.months)
	for i := 0; i < c.months; i++ {
		if i > 0 {
			if c.vertical {
				blocks = append(blocks, strings.Repeat("\n", monthGapRows-1))
			} else {
				blocks = append(blocks, strings.Repeat(" ", monthGap))
			}
		}
		blocks = append(blocks, c.renderMonth(c.first.AddMonths(i)))
	}
	var body string
	if c.vertical {
		body = lipgloss.JoinVertical(lipgloss.Left, blocks...)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	}
	if hint != "" {
		body += "\n" + c.styles.hint.Render(hint)
	}
	return c.styles.calendar.Render(body)
}

func (c calendar) renderMonth(first dates.Date) string {
	lines := make([]string, 0, monthHeaderRows+weekRows)
	format := c.monthFormat
	if format == "" {
		format = defaultMonthFormat
	}
	title := ansi.Truncate(first.Time(time.UTC).Format(format), monthWidth, "")
	lines = append(lines, lipgloss.PlaceHorizontal(monthWidth, lipgloss.Center, c.styles.monthTitle.Render(title)))

	var header strings.Builder
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		header.WriteString(c.styles.weekday.Render(wd.String()[:2]))
		header.WriteByte(' ')
	}
	lines = append(lines, header.String())

	start := gridStart(first)
	for w := 0; w < weekRows; w++ {
		var row strings.Builder
		for d := 0; d < 7; d++ {
			day := start.AddDays(w*7 + d)
			if day.Month != first.Month {
				row.WriteString(strings.Repeat(" ", cellWidth))
				continue
			}
			row.WriteString(c.dayStyle(day).Render(fmt.Sprintf("%2d", day.Day)))
			row.WriteByte(' ')
		}
		lines = append(lines, row.String())
	}
	return strings.Join(lines, "\n")
}

func (c calendar) dayStyle(d dates.Date) lipgloss.Style {
	switch {
	case c.showCursor && dates.IsSameDay(d, c.cursor):
		return c.styles.cursor
	case dates.IsSameDay(d, c.sel.Start()), dates.IsSameDay(d, c.sel.End()):
		return c.styles.endpoint
	case !c.preds.Allows(d):
		return c.styles.unavailable
	case c.sel.Contains(d):
		return c.styles.inSpan
	case dates.IsSameDay(d, c.today):
		return c.styles.today
	}
	return c.styles.day
}

// dayAt maps a cell relative to the calendar's top-left corner to the day
// rendered there.
func (c calendar) dayAt(x, y int) (dates.Date, bool) {
	row := y - calendarInsetY
	col := x - calendarInsetX
	if row < 0 || col < 0 {
		return dates.Date{}, false
	}
	var idx int
	if c.vertical {
		stride := monthHeaderRows + weekRows + monthGapRows
		idx, row = row/stride, row%stride
		if col >= monthWidth {
			return dates.Date{}, false
		}
	} else {
		stride := monthWidth + monthGap
		idx, col = col/stride, col%stride
		if col >= monthWidth {
			return dates.Date{}, false
		}
	}
	row -= monthHeaderRows
	if idx >= c.months || row < 0 || row >= weekRows {
		return dates.Date{}, false
	}
	first := c.first.AddMonths(idx)
	day := gridStart(first).AddDays(row*7 + col/cellWidth)
	if day.Month != first.Month {
		return dates.Date{}, false
	}
	return day, true
}

// gridStart is the Sunday on or before the first of the month.
func gridStart(first dates.Date) dates.Date {
	return first.AddDays(-int(first.Weekday()))
}

func daysIn(d dates.Date) int {
	return d.FirstOfMonth().AddMonths(1).AddDays(-1).Day
}

// shiftMonths moves d by n months, clamping the day to the target month.
func shiftMonths(d dates.Date, n int) dates.Date {
	target := d.FirstOfMonth().AddMonths(n)
	target.Day = min(d.Day, daysIn(target))
	return target
}
