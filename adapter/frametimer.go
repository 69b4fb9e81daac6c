package adapter

import "time"

// FrameTimer is a fixed-interval "tick ready" gate: Ready reports whether
// at least Interval has elapsed since the last call that returned true,
// and Remaining reports how much of the current interval is left. It backs
// the Adapter's render-cadence cap.
type FrameTimer struct {
	Interval time.Duration
	last     time.Time
}

// NewFrameTimer builds a timer that is immediately Ready.
func NewFrameTimer(interval time.Duration) *FrameTimer {
	return &FrameTimer{Interval: interval}
}

// Ready reports whether the interval has elapsed since the last Ready call
// that returned true. It has the side effect of resetting the gate when it
// fires, matching a one-shot ticker rather than a level signal.
func (f *FrameTimer) Ready() bool {
	now := time.Now()
	if f.last.IsZero() || now.Sub(f.last) >= f.Interval {
		f.last = now
		return true
	}
	return false
}

// Remaining reports how much longer until the gate would next report Ready,
// clamped to zero. Callers use this to size a sleep between polls.
func (f *FrameTimer) Remaining() time.Duration {
	if f.last.IsZero() {
		return 0
	}
	elapsed := time.Since(f.last)
	if elapsed >= f.Interval {
		return 0
	}
	return f.Interval - elapsed
}
