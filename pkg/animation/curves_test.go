package animation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestUnitBezier_SolveInvertsX(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x1 := rapid.Float64Range(0, 1).Draw(t, "x1")
		y1 := rapid.Float64Range(-1, 2).Draw(t, "y1")
		x2 := rapid.Float64Range(0, 1).Draw(t, "x2")
		y2 := rapid.Float64Range(-1, 2).Draw(t, "y2")
		x := rapid.Float64Range(0, 1).Draw(t, "x")

		b := newUnitBezier(x1, y1, x2, y2)
		u := b.solve(x)
		if got := b.x(u); math.Abs(got-x) > 1e-5 {
			t.Fatalf("x(solve(%v)) = %v", x, got)
		}
	})
}

func TestEaseInOut_Monotonic(t *testing.T) {
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseInOut(float64(i) / 100)
		assert.GreaterOrEqual(t, v, prev, "step %d", i)
		prev = v
	}
	assert.Equal(t, 1.0, prev)
}
