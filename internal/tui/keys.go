package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// keyMap drives the calendar with non-printing keys only; while a field is
// focused every printable key is text. q quits only when no field is focused.
type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	PrevPage key.Binding
	NextPage key.Binding
	Commit   key.Binding
	Clear    key.Binding
	Close    key.Binding
	Confirm  key.Binding
	Quit     key.Binding
	ForceQ   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Left:     key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "day")),
		Right:    key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "day")),
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "week")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "week")),
		PrevPage: key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "prev month")),
		NextPage: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "next month")),
		Commit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "commit/pick")),
		Clear:    key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Confirm:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "confirm")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQ:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// helpLine renders the enabled bindings relevant while the calendar is open
// or closed.
func (k keyMap) helpLine(open bool) string {
	var bs []key.Binding
	if open {
		bs = []key.Binding{k.Next, k.Left, k.Up, k.PrevPage, k.NextPage, k.Commit, k.Clear, k.Close, k.Confirm}
	} else {
		bs = []key.Binding{k.Next, k.Clear, k.Confirm, k.Quit}
	}
	parts := make([]string, 0, len(bs))
	for _, b := range bs {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
