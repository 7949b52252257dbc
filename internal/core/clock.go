package core

import "time"

// FixedStep converts real elapsed time into a whole number of fixed
// simulation ticks using an accumulator, so simulation speed does not
// depend on how often the front-end manages to draw.
type FixedStep struct {
	step     time.Duration
	maxSteps int
	acc      time.Duration
}

// NewFixedStep creates an accumulator for the given tick rate.
// maxSteps caps the ticks returned by a single Advance; leftover time beyond
// the cap is dropped so a stalled front-end does not spiral.
func NewFixedStep(tickRate, maxSteps int) *FixedStep {
	if tickRate <= 0 {
		tickRate = 60
	}
	if maxSteps <= 0 {
		maxSteps = 1
	}
	return &FixedStep{
		step:     time.Second / time.Duration(tickRate),
		maxSteps: maxSteps,
	}
}

// Step returns the duration of one tick.
func (f *FixedStep) Step() time.Duration {
	return f.step
}

// Advance adds elapsed time and returns how many ticks to simulate.
func (f *FixedStep) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	f.acc += elapsed

	n := int(f.acc / f.step)
	if n > f.maxSteps {
		n = f.maxSteps
		f.acc = 0
		return n
	}
	f.acc -= time.Duration(n) * f.step
	return n
}

// Reset discards accumulated time.
func (f *FixedStep) Reset() {
	f.acc = 0
}
