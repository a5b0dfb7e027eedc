package scheduler

import (
	"iter"
	"time"
)

// TicksPerSecond is the number of ticks in one second at the default tick rate.
const TicksPerSecond = 20

// TickDuration is the default length of a tick.
const TickDuration = time.Second / TicksPerSecond

// Ticks is an amount of scheduler ticks.
type Ticks int64

// Seconds converts seconds to ticks, rounding down.
func Seconds(s float64) Ticks {
	return Ticks(s * TicksPerSecond)
}

// Duration returns the wall-clock duration of t at the default tick rate.
func (t Ticks) Duration() time.Duration {
	return time.Duration(t) * TickDuration
}

// Range yields from, from+step, ... up to and including to. A negative step
// counts down. A zero step yields nothing.
func Range(from, to, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		switch {
		case step > 0:
			for i := from; i <= to; i += step {
				if !yield(i) {
					return
				}
			}
		case step < 0:
			for i := from; i >= to; i += step {
				if !yield(i) {
					return
				}
			}
		}
	}
}
