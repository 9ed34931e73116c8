package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DebounceTickMsg fires when one debounce quiet period elapses. It carries
// the generation it was armed with; only the latest generation survives.
type DebounceTickMsg struct {
	gen int
}

// Debouncer delays a fast-changing text value into a stable one. Every Arm
// restarts the quiet period; a tick from a superseded generation resolves to
// nothing, so the value publishes at most once per quiet period.
type Debouncer struct {
	interval time.Duration
	gen      int
	pending  string
}

func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Arm schedules publication of value after the quiet period, superseding any
// earlier pending publication.
func (d *Debouncer) Arm(value string) tea.Cmd {
	d.gen++
	d.pending = value
	gen := d.gen
	if d.interval <= 0 {
		return func() tea.Msg { return DebounceTickMsg{gen: gen} }
	}
	return tea.Tick(d.interval, func(time.Time) tea.Msg {
		return DebounceTickMsg{gen: gen}
	})
}

// Resolve turns a tick into the debounced value. Stale ticks report false and
// must be ignored by the caller.
func (d *Debouncer) Resolve(msg DebounceTickMsg) (string, bool) {
	if msg.gen != d.gen {
		return "", false
	}
	return d.pending, true
}

// Cancel invalidates any pending publication. Call on teardown so a timer
// firing after the owning view is gone resolves to nothing.
func (d *Debouncer) Cancel() {
	d.gen++
}
