package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/numberflow/pkg/animation"
	"github.com/go-drift/numberflow/pkg/numberflow"
)

func TestNewFlowTester_InstallsFakeClock(t *testing.T) {
	tester := NewFlowTester(t, numberflow.Options{})

	start := animation.Now()
	tester.Clock().Advance(time.Second)
	if got := animation.Now().Sub(start); got != time.Second {
		t.Errorf("expected animation clock to follow the fake clock, moved %v", got)
	}
}

func TestPumpValue_KeepsProps(t *testing.T) {
	tester := NewFlowTester(t, numberflow.Options{})
	tester.PumpProps(numberflow.Props{Value: "1", MaxWidth: 80})

	plan := tester.PumpValue("2")

	if plan.Value != "2" {
		t.Errorf("expected value 2, got %q", plan.Value)
	}
	if tester.Props().MaxWidth != 80 {
		t.Errorf("expected MaxWidth to carry over, got %v", tester.Props().MaxWidth)
	}
}

func TestPumpAndSettle_Settles(t *testing.T) {
	tester := NewFlowTester(t, numberflow.Options{})
	tester.PumpValue("9")

	frame, err := tester.PumpAndSettle(5 * time.Second)
	if err != nil {
		t.Fatalf("PumpAndSettle: %v", err)
	}
	if len(frame.Reels) != 1 {
		t.Fatalf("expected 1 reel, got %d", len(frame.Reels))
	}
	want := numberflow.Target(frame.LineHeight, 9)
	if frame.Reels[0].Offset != want {
		t.Errorf("expected offset %v, got %v", want, frame.Reels[0].Offset)
	}
}

func TestPumpAndSettle_Timeout(t *testing.T) {
	tester := NewFlowTester(t, numberflow.Options{})
	tester.PumpValue("9")

	_, err := tester.PumpAndSettle(FrameDuration)
	if !errors.Is(err, ErrSettleTimeout) {
		t.Errorf("expected ErrSettleTimeout, got %v", err)
	}
}

func TestRecordingIntegrator_Records(t *testing.T) {
	rec := NewRecordingIntegrator(nil)
	tester := NewFlowTester(t, numberflow.Options{Integrator: rec})

	tester.PumpValue("12")
	tester.Paint()
	tester.PumpValue("1")

	calls := rec.Calls()
	if len(calls) != 3 {
		t.Fatalf("expected 2 requests and 1 cancel, got %+v", calls)
	}
	if calls[2].Method != "cancel" || calls[2].Handle != calls[1].Handle {
		t.Errorf("expected the second reel to be cancelled, got %+v", calls[2])
	}
	if n := len(rec.MotionCalls()); n != 2 {
		t.Errorf("expected 2 motion calls, got %d", n)
	}

	rec.Reset()
	if n := len(rec.Calls()); n != 0 {
		t.Errorf("expected no calls after Reset, got %d", n)
	}
}
