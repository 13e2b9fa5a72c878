package dates

import (
	"strconv"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
)

// DefaultDisplayFormat mirrors the common locale "L" pattern.
const DefaultDisplayFormat = "01/02/2006"

// maxRelativeDays bounds "+Nd"/"Nw" input to roughly a century either way.
const maxRelativeDays = 36500

var relativeKeywords = map[string]int{
	"today":     0,
	"tomorrow":  1,
	"yesterday": -1,
}

// Parser turns field text into a Date. Parse never fails loudly: anything it
// cannot read comes back as (Date{}, false).
type Parser struct {
	Layout string
	Clock  Clock
}

func NewParser(layout string, clock Clock) Parser {
	if strings.TrimSpace(layout) == "" {
		layout = DefaultDisplayFormat
	}
	return Parser{Layout: layout, Clock: clock}
}

func (p Parser) layout() string {
	if strings.TrimSpace(p.Layout) == "" {
		return DefaultDisplayFormat
	}
	return p.Layout
}

func (p Parser) Parse(text string) (Date, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Date{}, false
	}
	for _, layout := range []string{p.layout(), ISOLayout} {
		if t, err := time.Parse(layout, text); err == nil {
			return FromTime(t), true
		}
	}
	return p.parseRelative(text)
}

// Format renders d with the parser's layout.
func (p Parser) Format(d Date) string {
	return Format(d, p.layout())
}

func (p Parser) parseRelative(text string) (Date, bool) {
	if p.Clock == nil {
		return Date{}, false
	}
	today := p.Clock.Today()
	lower := strings.ToLower(text)

	if offset, ok := matchKeyword(lower); ok {
		return today.AddDays(offset), true
	}

	// +3d, -2w, 10d
	if len(lower) < 2 {
		return Date{}, false
	}
	unit := lower[len(lower)-1]
	if unit != 'd' && unit != 'w' {
		return Date{}, false
	}
	n, err := strconv.Atoi(lower[:len(lower)-1])
	if err != nil {
		return Date{}, false
	}
	if unit == 'w' {
		if n > maxRelativeDays/7 || n < -maxRelativeDays/7 {
			return Date{}, false
		}
		n *= 7
	}
	if n > maxRelativeDays || n < -maxRelativeDays {
		return Date{}, false
	}
	return today.AddDays(n), true
}

func matchKeyword(word string) (int, bool) {
	if offset, ok := relativeKeywords[word]; ok {
		return offset, true
	}
	if len(word) < 5 {
		return 0, false
	}
	for kw, offset := range relativeKeywords {
		if levenshtein.ComputeDistance(word, kw) == 1 {
			return offset, true
		}
	}
	return 0, false
}
