package testing

import (
	"testing"
	"time"

	"github.com/go-drift/numberflow/pkg/animation"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	elapsed := clk.Now().Sub(start)

	if elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}

func TestUseFakeClock_DrivesAnimationClock(t *testing.T) {
	clk := UseFakeClock(t)
	start := animation.Now()

	clk.Advance(time.Second)
	if got := animation.Now().Sub(start); got != time.Second {
		t.Errorf("expected animation clock to advance 1s, got %v", got)
	}
}
