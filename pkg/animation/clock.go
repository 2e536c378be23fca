package animation

import (
	"sync/atomic"
	"time"
)

// Clock is the time source for tickers, springs and transitions. Tests and
// offline renderers install their own with SetClock.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to a Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

type clockBox struct{ c Clock }

var activeClock atomic.Pointer[clockBox]

func init() {
	activeClock.Store(&clockBox{c: ClockFunc(time.Now)})
}

// SetClock installs c and returns the clock it replaced. A nil c restores
// wall-clock time.
func SetClock(c Clock) Clock {
	if c == nil {
		c = ClockFunc(time.Now)
	}
	return activeClock.Swap(&clockBox{c: c}).c
}

// Now reads the active clock.
func Now() time.Time { return activeClock.Load().c.Now() }
