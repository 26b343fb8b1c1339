package core

// Interval accumulates frame time and fires once whenever the accumulated
// time exceeds the configured period. Firing resets the accumulator to zero,
// so time beyond the period is dropped rather than carried into the next
// tick, and a long frame never fires more than once.
type Interval struct {
	period      float64
	accumulator float64
}

// NewInterval constructs an Interval that fires every period seconds.
func NewInterval(period float64) *Interval {
	it := &Interval{}
	it.SetPeriod(period)
	return it
}

// SetPeriod changes the firing period. Non-positive values fall back to 0.6s.
func (it *Interval) SetPeriod(period float64) {
	if period <= 0 {
		period = 0.6
	}
	it.period = period
}

// Period returns the configured period in seconds.
func (it *Interval) Period() float64 { return it.period }

// Elapsed returns the time accumulated since the last firing.
func (it *Interval) Elapsed() float64 { return it.accumulator }

// Reset clears the accumulator.
func (it *Interval) Reset() { it.accumulator = 0 }

// Tick adds dt seconds and reports whether the interval fired.
func (it *Interval) Tick(dt float64) bool {
	if dt > 0 {
		it.accumulator += dt
	}
	if it.accumulator > it.period {
		it.accumulator = 0
		return true
	}
	return false
}
