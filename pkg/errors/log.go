package errors

import (
	"go.uber.org/zap"
)

// LogHandler is an ErrorHandler that logs errors through a zap logger.
type LogHandler struct {
	// Verbose enables detailed output including stack traces.
	Verbose bool

	logger *zap.Logger
}

// NewLogHandler returns a LogHandler writing to logger.
// A nil logger falls back to a production logger on stderr.
func NewLogHandler(logger *zap.Logger) *LogHandler {
	if logger == nil {
		l, err := zap.NewProduction()
		if err != nil {
			l = zap.NewNop()
		}
		logger = l
	}
	return &LogHandler{logger: logger.Named("numberflow")}
}

// HandleError logs a FlowError.
func (h *LogHandler) HandleError(err *FlowError) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Stringer("kind", err.Kind),
		zap.Error(err.Err),
	}
	if err.Value != "" {
		fields = append(fields, zap.String("value", err.Value))
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	h.logger.Error("numberflow error", fields...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	fields := []zap.Field{
		zap.String("op", err.Op),
		zap.Any("panic", err.Value),
	}
	if h.Verbose && err.StackTrace != "" {
		fields = append(fields, zap.String("stack", err.StackTrace))
	}
	h.logger.Error("numberflow panic", fields...)
}
