package app

import (
	"fmt"
	"time"
)

// Window is the local wall-clock interval during which enrollment actions
// may run, aligned with the site's booking-window opening. The zero value
// means no gate.
type Window struct {
	startMin int
	endMin   int
	enabled  bool
}

// ParseWindow builds a Window from "HH:MM" boundaries. Both empty
// disables the gate; one empty is a configuration error.
func ParseWindow(start, end string) (Window, error) {
	if start == "" && end == "" {
		return Window{}, nil
	}
	if start == "" || end == "" {
		return Window{}, fmt.Errorf("enrollment window needs both boundaries (got start=%q end=%q)", start, end)
	}
	s, err := parseClock(start)
	if err != nil {
		return Window{}, fmt.Errorf("invalid window start: %w", err)
	}
	e, err := parseClock(end)
	if err != nil {
		return Window{}, fmt.Errorf("invalid window end: %w", err)
	}
	if e <= s {
		return Window{}, fmt.Errorf("enrollment window end %s is not after start %s", end, start)
	}
	return Window{startMin: s, endMin: e, enabled: true}, nil
}

func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func (w Window) Enabled() bool { return w.enabled }

// Contains reports whether t falls inside the window, inclusive start,
// exclusive end.
func (w Window) Contains(t time.Time) bool {
	if !w.enabled {
		return true
	}
	min := t.Hour()*60 + t.Minute()
	return min >= w.startMin && min < w.endMin
}
