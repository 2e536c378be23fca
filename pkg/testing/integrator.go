package testing

import (
	"sync"

	"github.com/go-drift/numberflow/pkg/animation"
)

// IntegratorCall is one recorded call on a RecordingIntegrator.
type IntegratorCall struct {
	// Method is "request", "retarget" or "cancel".
	Method     string
	Handle     animation.Handle
	Trajectory animation.Trajectory
}

// RecordingIntegrator wraps an integrator and records requests, retargets
// and cancels. Reads are passed through unrecorded.
type RecordingIntegrator struct {
	animation.Integrator

	mu    sync.Mutex
	calls []IntegratorCall
}

// NewRecordingIntegrator wraps inner; a nil inner uses a new SpringIntegrator.
func NewRecordingIntegrator(inner animation.Integrator) *RecordingIntegrator {
	if inner == nil {
		inner = animation.NewSpringIntegrator()
	}
	return &RecordingIntegrator{Integrator: inner}
}

func (r *RecordingIntegrator) record(c IntegratorCall) {
	r.mu.Lock()
	r.calls = append(r.calls, c)
	r.mu.Unlock()
}

// RequestTrajectory records and forwards the request.
func (r *RecordingIntegrator) RequestTrajectory(t animation.Trajectory) animation.Handle {
	h := r.Integrator.RequestTrajectory(t)
	r.record(IntegratorCall{Method: "request", Handle: h, Trajectory: t})
	return h
}

// Retarget records and forwards the retarget.
func (r *RecordingIntegrator) Retarget(h animation.Handle, t animation.Trajectory) bool {
	r.record(IntegratorCall{Method: "retarget", Handle: h, Trajectory: t})
	return r.Integrator.Retarget(h, t)
}

// Cancel records and forwards the cancel.
func (r *RecordingIntegrator) Cancel(h animation.Handle) {
	r.record(IntegratorCall{Method: "cancel", Handle: h})
	r.Integrator.Cancel(h)
}

// Calls returns a copy of every recorded call.
func (r *RecordingIntegrator) Calls() []IntegratorCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]IntegratorCall, len(r.calls))
	copy(out, r.calls)
	return out
}

// MotionCalls returns the recorded requests and retargets, skipping cancels.
func (r *RecordingIntegrator) MotionCalls() []IntegratorCall {
	var out []IntegratorCall
	for _, c := range r.Calls() {
		if c.Method != "cancel" {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets recorded calls.
func (r *RecordingIntegrator) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}
