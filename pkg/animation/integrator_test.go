package animation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/numberflow/pkg/animation"
	flowtest "github.com/go-drift/numberflow/pkg/testing"
)

const frame = 16 * time.Millisecond

// settle pumps frames until h is at rest or the budget runs out.
func settle(t *testing.T, clk *flowtest.FakeClock, integ *animation.SpringIntegrator, h animation.Handle) {
	t.Helper()
	for range 500 {
		if integ.IsAtRest(h) {
			return
		}
		clk.Advance(frame)
		animation.StepTickers()
	}
	t.Fatalf("trajectory %d did not settle", h)
}

func TestSpringIntegrator_Converges(t *testing.T) {
	clk := flowtest.UseFakeClock(t)
	integ := animation.NewSpringIntegrator()

	h := integ.RequestTrajectory(animation.Trajectory{From: 0, To: -95, Spring: animation.DefaultSpring()})
	t.Cleanup(func() { integ.Cancel(h) })

	assert.False(t, integ.IsAtRest(h))
	settle(t, clk, integ, h)
	assert.Equal(t, -95.0, integ.CurrentValue(h))
	assert.Equal(t, 0.0, integ.Velocity(h))
}

func TestSpringIntegrator_DelayHoldsPosition(t *testing.T) {
	clk := flowtest.UseFakeClock(t)
	integ := animation.NewSpringIntegrator()

	h := integ.RequestTrajectory(animation.Trajectory{
		From:   -19,
		To:     -38,
		Delay:  40 * time.Millisecond,
		Spring: animation.DefaultSpring(),
	})
	t.Cleanup(func() { integ.Cancel(h) })

	clk.Advance(32 * time.Millisecond)
	animation.StepTickers()
	assert.Equal(t, -19.0, integ.CurrentValue(h))
	assert.False(t, integ.IsAtRest(h), "a pending target is not rest")

	clk.Advance(32 * time.Millisecond)
	animation.StepTickers()
	assert.Less(t, integ.CurrentValue(h), -19.0)

	settle(t, clk, integ, h)
	assert.Equal(t, -38.0, integ.CurrentValue(h))
}

func TestSpringIntegrator_RetargetInFlight(t *testing.T) {
	clk := flowtest.UseFakeClock(t)
	integ := animation.NewSpringIntegrator()
	h := integ.RequestTrajectory(animation.Trajectory{From: 0, To: -57, Spring: animation.DefaultSpring()})
	t.Cleanup(func() { integ.Cancel(h) })

	clk.Advance(5 * frame)
	animation.StepTickers()
	pos, vel := integ.CurrentValue(h), integ.Velocity(h)
	require.Less(t, vel, 0.0)

	ok := integ.Retarget(h, animation.Trajectory{From: 999, To: -152, Spring: animation.DefaultSpring()})

	require.True(t, ok)
	assert.Equal(t, pos, integ.CurrentValue(h), "From is ignored on retarget")
	assert.Equal(t, vel, integ.Velocity(h), "velocity carries over")
	settle(t, clk, integ, h)
	assert.Equal(t, -152.0, integ.CurrentValue(h))
}

func TestSpringIntegrator_ScaledRetarget(t *testing.T) {
	clk := flowtest.UseFakeClock(t)
	integ := animation.NewSpringIntegrator()
	h := integ.RequestTrajectory(animation.Trajectory{From: 0, To: -87, Spring: animation.DefaultSpring()})
	t.Cleanup(func() { integ.Cancel(h) })

	clk.Advance(3 * frame)
	animation.StepTickers()
	pos, vel := integ.CurrentValue(h), integ.Velocity(h)

	ok := integ.Retarget(h, animation.Trajectory{To: -78, Spring: animation.DefaultSpring(), Scale: 26.0 / 29.0})

	require.True(t, ok)
	assert.InDelta(t, pos*26/29, integ.CurrentValue(h), 1e-9)
	assert.InDelta(t, vel*26/29, integ.Velocity(h), 1e-9)
	assert.False(t, integ.IsAtRest(h))
	settle(t, clk, integ, h)
	assert.Equal(t, -78.0, integ.CurrentValue(h))
}

func TestSpringIntegrator_DelayedRetargetFollowsOldTarget(t *testing.T) {
	clk := flowtest.UseFakeClock(t)
	integ := animation.NewSpringIntegrator()
	h := integ.RequestTrajectory(animation.Trajectory{From: 0, To: -100, Spring: animation.DefaultSpring()})
	t.Cleanup(func() { integ.Cancel(h) })

	clk.Advance(frame)
	animation.StepTickers()
	integ.Retarget(h, animation.Trajectory{To: 100, Delay: 100 * time.Millisecond, Spring: animation.DefaultSpring()})
	before := integ.CurrentValue(h)

	clk.Advance(3 * frame)
	animation.StepTickers()
	assert.Less(t, integ.CurrentValue(h), before, "still heading for the old target")

	settle(t, clk, integ, h)
	assert.Equal(t, 100.0, integ.CurrentValue(h))
}

func TestSpringIntegrator_RetargetAfterRest(t *testing.T) {
	clk := flowtest.UseFakeClock(t)
	integ := animation.NewSpringIntegrator()
	h := integ.RequestTrajectory(animation.Trajectory{From: 0, To: -19, Spring: animation.DefaultSpring()})
	t.Cleanup(func() { integ.Cancel(h) })
	settle(t, clk, integ, h)

	require.True(t, integ.Retarget(h, animation.Trajectory{To: -76, Spring: animation.DefaultSpring()}))

	assert.False(t, integ.IsAtRest(h))
	settle(t, clk, integ, h)
	assert.Equal(t, -76.0, integ.CurrentValue(h))
}

func TestSpringIntegrator_ReduceMotion(t *testing.T) {
	tests := []struct {
		name   string
		mode   animation.ReduceMotion
		system bool
		jumps  bool
	}{
		{"always", animation.ReduceMotionAlways, false, true},
		{"system on", animation.ReduceMotionSystem, true, true},
		{"system off", animation.ReduceMotionSystem, false, false},
		{"never", animation.ReduceMotionNever, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flowtest.UseFakeClock(t)
			flowtest.UseSystemReduceMotion(t, tt.system)
			integ := animation.NewSpringIntegrator()

			h := integ.RequestTrajectory(animation.Trajectory{
				From:         0,
				To:           -38,
				Delay:        time.Second,
				Spring:       animation.DefaultSpring(),
				ReduceMotion: tt.mode,
			})
			t.Cleanup(func() { integ.Cancel(h) })

			assert.Equal(t, tt.jumps, integ.IsAtRest(h))
			if tt.jumps {
				assert.Equal(t, -38.0, integ.CurrentValue(h), "jump ignores the delay")
			} else {
				assert.Equal(t, 0.0, integ.CurrentValue(h))
			}
		})
	}
}

func TestSpringIntegrator_Cancel(t *testing.T) {
	flowtest.UseFakeClock(t)
	integ := animation.NewSpringIntegrator()
	h := integ.RequestTrajectory(animation.Trajectory{From: 0, To: -57, Spring: animation.DefaultSpring()})
	require.Equal(t, 1, integ.Len())

	integ.Cancel(h)

	assert.Equal(t, 0, integ.Len())
	assert.False(t, animation.HasActiveTickers())
	assert.True(t, integ.IsAtRest(h), "unknown handles are at rest")
	assert.Equal(t, 0.0, integ.CurrentValue(h))
	assert.False(t, integ.Retarget(h, animation.Trajectory{To: 1}))
}

func TestSpringIntegrator_StopsTickerAtRest(t *testing.T) {
	clk := flowtest.UseFakeClock(t)
	integ := animation.NewSpringIntegrator()
	h := integ.RequestTrajectory(animation.Trajectory{From: 0, To: -19, Spring: animation.DefaultSpring()})
	t.Cleanup(func() { integ.Cancel(h) })
	require.True(t, animation.HasActiveTickers())

	settle(t, clk, integ, h)
	clk.Advance(frame)
	animation.StepTickers()

	assert.False(t, animation.HasActiveTickers())
}
