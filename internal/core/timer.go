package core

import "time"

// FixedStep paces simulation updates at a steady ticks-per-second rate,
// independent of how often the host's frame loop runs. The simulation core
// carries no timing of its own; hosts consult a FixedStep before each step.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	// Don't let a long stall (paused window, debugger) turn into a burst
	// of catch-up ticks.
	if f.accumulator > 4*f.step {
		f.accumulator = 4 * f.step
	}
	return true
}
