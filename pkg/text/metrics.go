package text

// LineMetrics are the measurements reported for a single laid-out line.
type LineMetrics struct {
	// Ascender is the distance from the baseline to the top of the line.
	Ascender float64 `yaml:"ascender"`
	// Descender is the distance from the baseline to the bottom of the line.
	Descender float64 `yaml:"descender"`
	// Height is the recommended line height for the face.
	Height float64 `yaml:"height"`
	// Width is the advance width of the line.
	Width float64 `yaml:"width"`
	// FontSize is the size the line was laid out at, after any shrink-to-fit.
	FontSize float64 `yaml:"fontSize"`
}

// MeasureRequest asks the measurement service to lay out Text on one line,
// invisibly, shrinking the font until it fits MaxWidth (0 means unbounded).
type MeasureRequest struct {
	ID       uint64  `yaml:"id"`
	Text     string  `yaml:"text"`
	Style    Style   `yaml:"style"`
	MaxWidth float64 `yaml:"maxWidth,omitempty"`
}

// Measurer is the text measurement service.
type Measurer interface {
	Measure(req MeasureRequest) (LineMetrics, error)
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func(req MeasureRequest) (LineMetrics, error)

// Measure calls f(req).
func (f MeasurerFunc) Measure(req MeasureRequest) (LineMetrics, error) {
	return f(req)
}
