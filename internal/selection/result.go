package selection

// Result is what an operation proposes. DatesChanged and FocusChanged say
// which notifications fire; Selection and Focus are only meaningful when the
// matching flag is set.
type Result struct {
	Selection    Selection
	DatesChanged bool
	Focus        FocusTarget
	FocusChanged bool
}

// NoOp reports whether the operation produced no notification at all.
func (r Result) NoOp() bool { return !r.DatesChanged && !r.FocusChanged }

type EventKind int

const (
	DatesChange EventKind = iota + 1
	FocusChange
)

func (k EventKind) String() string {
	switch k {
	case DatesChange:
		return "datesChange"
	case FocusChange:
		return "focusChange"
	}
	return "unknown"
}

type Event struct {
	Kind      EventKind
	Selection Selection
	Focus     FocusTarget
}

// Events lists the notifications in emission order: dates before focus.
func (r Result) Events() []Event {
	out := make([]Event, 0, 2)
	if r.DatesChanged {
		out = append(out, Event{Kind: DatesChange, Selection: r.Selection})
	}
	if r.FocusChanged {
		out = append(out, Event{Kind: FocusChange, Focus: r.Focus})
	}
	return out
}

func datesResult(s Selection) Result {
	return Result{Selection: s, DatesChanged: true}
}

func focusResult(f FocusTarget) Result {
	return Result{Focus: f, FocusChanged: true}
}

func (r Result) withFocus(f FocusTarget) Result {
	r.Focus = f
	r.FocusChanged = true
	return r
}

// Notifier is the callback boundary. Dispatch is the only place the
// callbacks run.
type Notifier struct {
	OnDatesChange func(Selection)
	OnFocusChange func(FocusTarget)
}

func (n Notifier) Dispatch(r Result) {
	for _, ev := range r.Events() {
		switch ev.Kind {
		case DatesChange:
			if n.OnDatesChange != nil {
				n.OnDatesChange(ev.Selection)
			}
		case FocusChange:
			if n.OnFocusChange != nil {
				n.OnFocusChange(ev.Focus)
			}
		}
	}
}
