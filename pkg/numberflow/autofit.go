package numberflow

import (
	"math"

	"github.com/go-drift/numberflow/pkg/text"
)

// autoFit tracks the invisible measurement render and its result.
type autoFit struct {
	nextID  uint64
	current *text.MeasureRequest
	metrics *text.LineMetrics
}

// request returns a new measurement request when the measured text, style
// or width changed since the last request, and nil otherwise.
func (a *autoFit) request(value string, style text.Style, maxWidth float64) *text.MeasureRequest {
	if a.current != nil &&
		a.current.Text == value &&
		a.current.Style == style &&
		a.current.MaxWidth == maxWidth {
		return nil
	}
	a.nextID++
	req := &text.MeasureRequest{ID: a.nextID, Text: value, Style: style, MaxWidth: maxWidth}
	a.current = req
	return req
}

// reset forgets the outstanding request so re-enabling auto-fit measures again.
func (a *autoFit) reset() {
	a.current = nil
}

// measureResult classifies a measurement delivery.
type measureResult int

const (
	measureApplied measureResult = iota
	measureStale
	measureInvalid
)

// apply stores m if it answers the outstanding request.
func (a *autoFit) apply(id uint64, m text.LineMetrics) measureResult {
	if a.current == nil || id != a.current.ID {
		return measureStale
	}
	// The ascender becomes the font size, so it must round to at least 1.
	if !(math.Round(m.Ascender) > 0) || math.IsInf(m.Ascender, 0) {
		return measureInvalid
	}
	a.metrics = &m
	return measureApplied
}

// fontSize returns the display font size: the rounded measured ascender
// when auto-fit has a measurement, the rounded style size otherwise.
func (a *autoFit) fontSize(enabled bool, style text.Style) float64 {
	if enabled && a.metrics != nil {
		return math.Round(a.metrics.Ascender)
	}
	return math.Round(style.FontSizeOrDefault())
}
