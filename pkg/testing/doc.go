// Package testing provides helpers for deterministic NumberFlow tests.
//
// # Quick Start
//
// Drive a flow with a fake clock, pump frames, and assert on the result:
//
//	func TestRollsToSeven(t *testing.T) {
//	    tester := flowtest.NewFlowTester(t, numberflow.Options{})
//	    tester.PumpValue("5")
//	    tester.Paint()
//	    tester.PumpValue("7")
//
//	    frame, err := tester.PumpAndSettle(5 * time.Second)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    // frame.Reels[0].Offset == -7 * frame.LineHeight
//	}
//
// # Recording Motion
//
// [RecordingIntegrator] wraps an integrator and records every request, so
// tests can assert that no spring was started.
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import flowtest "github.com/go-drift/numberflow/pkg/testing"
package testing
