package numberflow

import (
	"maps"
	"math"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/go-drift/numberflow/pkg/animation"
	"github.com/go-drift/numberflow/pkg/diagnostics"
	"github.com/go-drift/numberflow/pkg/errors"
	"github.com/go-drift/numberflow/pkg/semantics"
	"github.com/go-drift/numberflow/pkg/text"
)

// Options configure a Flow. The zero value is usable.
type Options struct {
	// Integrator runs reel trajectories. Defaults to a new SpringIntegrator.
	Integrator animation.Integrator
	// Measurer, when set, answers auto-fit measurement requests in process.
	// Results apply from the next update, as a platform callback would.
	Measurer text.Measurer
	// Logger receives debug logs for motion requests. Defaults to a no-op logger.
	Logger *zap.Logger
	// Metrics records diagnostics. Optional.
	Metrics *diagnostics.Metrics
}

// Flow is the state of one on-screen NumberFlow instance: its mount flag,
// one reel per live digit position, separator presence, and the auto-fit
// measurement. A Flow is not safe for concurrent use; call it from the
// host's UI thread.
type Flow struct {
	id         string
	integrator animation.Integrator
	measurer   text.Measurer
	logger     *zap.Logger
	metrics    *diagnostics.Metrics

	mounted    bool
	rendered   bool
	lastLen    int
	fontSize   float64
	lineHeight float64

	reels      map[int]*digitReel
	separators map[int]*separatorSlot
	fit        autoFit
}

// New creates a Flow.
func New(opts Options) *Flow {
	f := &Flow{
		id:         uuid.NewString(),
		integrator: opts.Integrator,
		measurer:   opts.Measurer,
		logger:     opts.Logger,
		metrics:    opts.Metrics,
		reels:      make(map[int]*digitReel),
		separators: make(map[int]*separatorSlot),
	}
	if f.integrator == nil {
		f.integrator = animation.NewSpringIntegrator()
	}
	if f.logger == nil {
		f.logger = zap.NewNop()
	}
	f.logger = f.logger.With(zap.String("flow", f.id))
	return f
}

// ID returns the instance identifier used in logs.
func (f *Flow) ID() string { return f.id }

// IsMounted reports whether the first paint has completed.
func (f *Flow) IsMounted() bool { return f.mounted }

// DidPaint tells the flow that a frame it planned is on screen. The first
// call flips the mount state, so the next update may animate; it reports
// whether this call did so.
func (f *Flow) DidPaint() bool {
	if f.mounted || !f.rendered {
		return false
	}
	f.mounted = true
	f.logger.Debug("mounted")
	return true
}

// Update produces the render plan for p and advances per-position state.
func (f *Flow) Update(p Props) RenderPlan {
	anim := p.Animation.Resolve()
	motion := Decide(anim.Enabled, anim.AnimateOnMount, f.mounted)
	tokens := Tokenize(p.Value)

	var measure *text.MeasureRequest
	if p.AutoFitText {
		measure = f.fit.request(p.Value, p.Style, p.MaxWidth)
	} else {
		f.fit.reset()
	}

	fontSize := f.fit.fontSize(p.AutoFitText, p.Style)
	lineHeight := LineHeight(fontSize)
	override := text.Style{FontSize: fontSize, LineHeight: lineHeight, Height: lineHeight}
	digitStyle := text.MergeStyles(p.Style, override)
	digitStyle.TabularNums = true
	separatorStyle := text.MergeStyles(p.Style, p.SeparatorStyle, override)

	plan := RenderPlan{
		Value:          p.Value,
		Motion:         motion,
		FontSize:       fontSize,
		LineHeight:     lineHeight,
		DigitStyle:     digitStyle,
		SeparatorStyle: separatorStyle,
		Glyphs:         make([]Glyph, 0, len(tokens)),
		Semantics:      semantics.LiveText(p.Value),
		Measure:        measure,
	}

	moved := f.rendered && len(tokens) != f.lastLen
	for _, tok := range tokens {
		if tok.IsDigit() {
			f.dropSeparator(tok.Index)
			plan.Glyphs = append(plan.Glyphs, Glyph{
				Index: tok.Index,
				Reel:  f.updateReel(tok, lineHeight, motion, anim),
			})
			continue
		}

		f.dropReel(tok.Index)
		slot, ok := f.separators[tok.Index]
		if !ok {
			slot = newSeparatorSlot(tok.Char)
			f.separators[tok.Index] = slot
		}
		plan.Glyphs = append(plan.Glyphs, Glyph{
			Index: tok.Index,
			Separator: &SeparatorPlan{
				Char:       string(tok.Char),
				Transition: slot.update(tok.Char, !ok, moved, motion),
			},
		})
	}
	for index := range f.reels {
		if index >= len(tokens) {
			f.dropReel(index)
		}
	}
	for index := range f.separators {
		if index >= len(tokens) {
			f.dropSeparator(index)
		}
	}

	f.rendered = true
	f.lastLen = len(tokens)
	f.fontSize = fontSize
	f.lineHeight = lineHeight
	f.metrics.ObserveUpdate()

	if measure != nil && f.measurer != nil {
		f.measureInProcess(*measure)
	}
	return plan
}

func (f *Flow) updateReel(tok Token, lineHeight float64, motion Motion, anim Animation) *ReelPlan {
	reel, ok := f.reels[tok.Index]
	if !ok {
		reel = newDigitReel(tok.Index)
		f.reels[tok.Index] = reel
		f.metrics.AddLiveReels(1)
	}

	in := reelInput{
		digit:        tok.Digit,
		lineHeight:   lineHeight,
		motion:       motion,
		delay:        Stagger(tok.Index, anim.DigitDelay),
		spring:       anim.Spring,
		reduceMotion: anim.ReduceMotion,
	}
	mode, from := reel.update(in, f.integrator)
	if mode != ModeHold {
		f.metrics.ObserveMotion(mode.String())
		f.logger.Debug("reel motion",
			zap.Int("index", tok.Index),
			zap.Int("digit", tok.Digit),
			zap.Stringer("mode", mode),
			zap.Float64("from", from),
			zap.Float64("target", reel.target),
			zap.Duration("delay", in.delay),
		)
	}
	return &ReelPlan{
		Digit:        tok.Digit,
		Mode:         mode,
		Phase:        reel.phase,
		From:         from,
		Target:       reel.target,
		Delay:        in.delay,
		Spring:       in.spring,
		ReduceMotion: in.reduceMotion,
	}
}

func (f *Flow) dropReel(index int) {
	reel, ok := f.reels[index]
	if !ok {
		return
	}
	reel.dispose(f.integrator)
	delete(f.reels, index)
	f.metrics.AddLiveReels(-1)
}

func (f *Flow) dropSeparator(index int) {
	slot, ok := f.separators[index]
	if !ok {
		return
	}
	slot.dispose()
	delete(f.separators, index)
}

// ApplyMeasurement delivers the line metrics measured for request id.
// Deliveries for superseded requests are ignored. It reports whether the
// font size changed, in which case the host should call Update again.
func (f *Flow) ApplyMeasurement(id uint64, m text.LineMetrics) bool {
	switch f.fit.apply(id, m) {
	case measureStale:
		f.metrics.ObserveMeasurement(diagnostics.MeasurementStale)
		f.logger.Debug("stale measurement ignored", zap.Uint64("id", id))
		return false
	case measureInvalid:
		f.metrics.ObserveMeasurement(diagnostics.MeasurementInvalid)
		f.logger.Debug("measurement without ascender ignored", zap.Uint64("id", id))
		return false
	}
	f.metrics.ObserveMeasurement(diagnostics.MeasurementApplied)
	return math.Round(m.Ascender) != f.fontSize
}

func (f *Flow) measureInProcess(req text.MeasureRequest) {
	m, err := f.measurer.Measure(req)
	if err != nil {
		f.metrics.ObserveMeasurement(diagnostics.MeasurementError)
		errors.Report(&errors.FlowError{
			Op:    "numberflow.Flow.measure",
			Kind:  errors.KindMeasure,
			Err:   err,
			Value: req.Text,
		})
		return
	}
	f.ApplyMeasurement(req.ID, m)
}

// Frame snapshots every reel offset and separator opacity. Call it after
// animation.StepTickers on each display frame.
func (f *Flow) Frame() Frame {
	frame := Frame{
		LineHeight: f.lineHeight,
		Reels:      make([]ReelFrame, 0, len(f.reels)),
		Separators: make([]SeparatorFrame, 0, len(f.separators)),
	}
	for _, index := range slices.Sorted(maps.Keys(f.reels)) {
		reel := f.reels[index]
		reel.refresh(f.integrator)
		frame.Reels = append(frame.Reels, ReelFrame{
			Index:  index,
			Digit:  reel.digit,
			Offset: reel.current(f.integrator),
			Target: reel.target,
			Phase:  reel.phase,
		})
	}
	for _, index := range slices.Sorted(maps.Keys(f.separators)) {
		slot := f.separators[index]
		frame.Separators = append(frame.Separators, SeparatorFrame{
			Index:   index,
			Char:    string(slot.char),
			Opacity: slot.currentOpacity(),
		})
	}
	return frame
}

// Dispose cancels every trajectory and transition owned by the flow.
func (f *Flow) Dispose() {
	for index := range f.reels {
		f.dropReel(index)
	}
	for index := range f.separators {
		f.dropSeparator(index)
	}
}
