package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// maxStackDepth bounds the frames captured for a panic.
const maxStackDepth = 32

type handlerBox struct{ h ErrorHandler }

var current atomic.Pointer[handlerBox]

func init() {
	current.Store(&handlerBox{h: NewLogHandler(nil)})
}

// Handler returns the global error handler.
func Handler() ErrorHandler {
	return current.Load().h
}

// SetHandler installs h as the global error handler and returns the
// previous one. A nil h restores a LogHandler on a production zap logger.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = NewLogHandler(nil)
	}
	return current.Swap(&handlerBox{h: h}).h
}

// Report stamps err with the current time, if unset, and passes it to the
// global handler.
func Report(err *FlowError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportPanic passes a recovered panic to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandlePanic(err)
}

// Recover reports a panic in progress under op. It must be deferred
// directly:
//
//	defer errors.Recover("animation.StepTickers")
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
	})
}

// CaptureStack formats the caller's stack, one "function\n\tfile:line"
// entry per frame, starting at the function that called CaptureStack's caller.
func CaptureStack() string {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(3, pcs)
	if n == 0 {
		return ""
	}

	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for more := true; more; {
		var frame runtime.Frame
		frame, more = frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
	}
	return sb.String()
}
