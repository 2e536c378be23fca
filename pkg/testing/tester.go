package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/numberflow/pkg/animation"
	"github.com/go-drift/numberflow/pkg/numberflow"
)

// FrameDuration is the simulated display frame length.
const FrameDuration = 16 * time.Millisecond

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: flow did not settle")

// FlowTester drives a Flow the way a host would, on a fake clock.
type FlowTester struct {
	flow  *numberflow.Flow
	clock *FakeClock
	props numberflow.Props
}

// NewFlowTester creates a flow with opts, installs a fake animation clock,
// and disposes the flow when the test ends.
func NewFlowTester(t testing.TB, opts numberflow.Options) *FlowTester {
	t.Helper()
	ft := &FlowTester{
		clock: UseFakeClock(t),
		flow:  numberflow.New(opts),
	}
	t.Cleanup(ft.flow.Dispose)
	return ft
}

// Flow returns the flow under test.
func (ft *FlowTester) Flow() *numberflow.Flow { return ft.flow }

// Clock returns the fake clock.
func (ft *FlowTester) Clock() *FakeClock { return ft.clock }

// Props returns the props of the last update.
func (ft *FlowTester) Props() numberflow.Props { return ft.props }

// PumpProps runs an update with p.
func (ft *FlowTester) PumpProps(p numberflow.Props) numberflow.RenderPlan {
	ft.props = p
	return ft.flow.Update(p)
}

// PumpValue runs an update with the last props and a new value.
func (ft *FlowTester) PumpValue(value string) numberflow.RenderPlan {
	p := ft.props
	p.Value = value
	return ft.PumpProps(p)
}

// Paint signals that the last plan is on screen.
func (ft *FlowTester) Paint() bool {
	return ft.flow.DidPaint()
}

// Pump advances the clock by d, steps tickers, and returns the frame.
func (ft *FlowTester) Pump(d time.Duration) numberflow.Frame {
	ft.clock.Advance(d)
	animation.StepTickers()
	return ft.flow.Frame()
}

// PumpAndSettle runs frames until every reel is at rest and every
// separator is opaque, or until timeout of simulated time has passed.
func (ft *FlowTester) PumpAndSettle(timeout time.Duration) (numberflow.Frame, error) {
	var elapsed time.Duration
	frame := ft.flow.Frame()
	for elapsed < timeout {
		if frame.Settled() {
			return frame, nil
		}
		frame = ft.Pump(FrameDuration)
		elapsed += FrameDuration
	}
	if frame.Settled() {
		return frame, nil
	}
	return frame, ErrSettleTimeout
}
