// Package numberflow renders a pre-formatted numeric string as a row of
// independently animated digit reels.
//
// Each digit position owns a reel: a vertical strip of the glyphs 0..9
// clipped to one line, translated so the current digit shows through the
// window. When the value changes, the reel rolls to its new digit along a
// spring trajectory. Non-digit characters (separators, currency symbols)
// are drawn in place with a short appear/move transition.
//
// # Usage
//
// A [Flow] holds the per-instance state. The host calls [Flow.Update] on
// every re-render and applies the returned [RenderPlan]; it calls
// [Flow.DidPaint] once the first frame is on screen, and [Flow.Frame] on
// every display frame (after [animation.StepTickers]) to read offsets:
//
//	flow := numberflow.New(numberflow.Options{})
//	defer flow.Dispose()
//
//	plan := flow.Update(numberflow.Props{Value: "$1,024.00"})
//	host.Apply(plan)
//	flow.DidPaint()
//
//	// each frame
//	animation.StepTickers()
//	host.Draw(flow.Frame())
//
// # Motion Policy
//
// The first paint never moves when AnimateOnMount is false; reels snap to
// their digits. After the first paint, reels animate iff Enabled. The
// reduced-motion mode is applied by the integrator: suppressed trajectories
// land on their target immediately.
package numberflow
