package animation

import "math"

// LinearCurve is the identity easing.
func LinearCurve(t float64) float64 {
	return t
}

// EaseOut decelerates into the end value, like CSS ease-out.
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// EaseInOut is the curve for separator appear and move transitions.
var EaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)

// bezierSamples is the size of the lookup table used to seed the solver.
const bezierSamples = 11

// unitBezier is a cubic bezier from (0,0) to (1,1) in polynomial form:
// x(u) = ((ax*u + bx)*u + cx)*u, and likewise for y.
type unitBezier struct {
	ax, bx, cx float64
	ay, by, cy float64
	table      [bezierSamples]float64
}

func newUnitBezier(x1, y1, x2, y2 float64) *unitBezier {
	b := &unitBezier{}
	b.cx = 3 * x1
	b.bx = 3*(x2-x1) - b.cx
	b.ax = 1 - b.cx - b.bx
	b.cy = 3 * y1
	b.by = 3*(y2-y1) - b.cy
	b.ay = 1 - b.cy - b.by
	for i := range b.table {
		b.table[i] = b.x(float64(i) / (bezierSamples - 1))
	}
	return b
}

func (b *unitBezier) x(u float64) float64 { return ((b.ax*u+b.bx)*u + b.cx) * u }

func (b *unitBezier) y(u float64) float64 { return ((b.ay*u+b.by)*u + b.cy) * u }

func (b *unitBezier) dx(u float64) float64 { return (3*b.ax*u+2*b.bx)*u + b.cx }

// solve finds the parameter u with x(u) == x.
func (b *unitBezier) solve(x float64) float64 {
	const eps = 1e-7
	step := 1.0 / (bezierSamples - 1)

	// Seed from the segment of the table that brackets x.
	i := 1
	for i < bezierSamples-1 && b.table[i] <= x {
		i++
	}
	i--
	lo, hi := float64(i)*step, float64(i+1)*step
	u := lo + step*(x-b.table[i])/(b.table[i+1]-b.table[i])
	if math.IsNaN(u) || math.IsInf(u, 0) {
		u = lo
	}

	for range 8 {
		d := b.x(u) - x
		if math.Abs(d) < eps {
			return u
		}
		slope := b.dx(u)
		if math.Abs(slope) < 1e-6 {
			break
		}
		u -= d / slope
	}

	// Newton left the bracket or stalled on a flat segment.
	if u < lo || u > hi {
		u = (lo + hi) / 2
	}
	for range 20 {
		d := b.x(u) - x
		if math.Abs(d) < eps {
			break
		}
		if d > 0 {
			hi = u
		} else {
			lo = u
		}
		u = (lo + hi) / 2
	}
	return u
}

// CubicBezier returns the easing defined by CSS cubic-bezier(x1, y1, x2, y2).
// Inputs outside [0, 1] clamp to the end points.
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	b := newUnitBezier(clampUnit(x1), y1, clampUnit(x2), y2)
	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		return b.y(b.solve(t))
	}
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
