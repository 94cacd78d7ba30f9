// Package storehours reports whether the shop is open for orders.
package storehours

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultInterval is how often the status is re-evaluated.
const DefaultInterval = 60 * time.Second

// Window is a single daily opening window in minutes since local midnight.
// Open is inclusive and Close exclusive.
type Window struct {
	Open  int
	Close int
}

// DefaultWindow is 08:30 to 23:00.
var DefaultWindow = Window{Open: 8*60 + 30, Close: 23 * 60}

// Status is the evaluated indicator.
type Status struct {
	Open           bool   `json:"open"`
	MinutesToClose int    `json:"minutes_to_close"`
	Text           string `json:"text"`
}

// ParseWindow parses "HH:MM" opening and closing times.
func ParseWindow(openAt, closeAt string) (Window, error) {
	o, err := parseClock(openAt)
	if err != nil {
		return Window{}, fmt.Errorf("opening time: %w", err)
	}
	c, err := parseClock(closeAt)
	if err != nil {
		return Window{}, fmt.Errorf("closing time: %w", err)
	}
	if o >= c {
		return Window{}, fmt.Errorf("opening time %s is not before closing time %s", openAt, closeAt)
	}
	return Window{Open: o, Close: c}, nil
}

func parseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("%q is not HH:MM", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 24 {
		return 0, fmt.Errorf("%q has an invalid hour", s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("%q has an invalid minute", s)
	}
	return h*60 + m, nil
}

// Status evaluates the window at now's local wall-clock time.
func (w Window) Status(now time.Time) Status {
	minutes := now.Hour()*60 + now.Minute()
	if minutes < w.Open || minutes >= w.Close {
		return Status{Text: "Cerrado ahora"}
	}
	remaining := w.Close - minutes
	return Status{
		Open:           true,
		MinutesToClose: remaining,
		Text:           fmt.Sprintf("Abierto ahora · Cierra en %d min", remaining),
	}
}

// String renders the window as "HH:MM-HH:MM".
func (w Window) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", w.Open/60, w.Open%60, w.Close/60, w.Close%60)
}

// Watch evaluates the window immediately and then on every tick until ctx
// is done, passing each status to fn. now defaults to time.Now.
func Watch(ctx context.Context, w Window, interval time.Duration, now func() time.Time, fn func(Status)) {
	if now == nil {
		now = time.Now
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	fn(w.Status(now()))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fn(w.Status(now()))
		}
	}
}
