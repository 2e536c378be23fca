package numberflow

import (
	"time"

	"github.com/go-drift/numberflow/pkg/animation"
	"github.com/go-drift/numberflow/pkg/semantics"
	"github.com/go-drift/numberflow/pkg/text"
)

// ReelPlan describes what the host must do with one digit reel.
type ReelPlan struct {
	Digit int        `yaml:"digit"`
	Mode  MotionMode `yaml:"mode"`
	Phase ReelPhase  `yaml:"phase"`
	// From is the offset motion starts from; equal to Target for holds and snaps
	// of settled reels.
	From float64 `yaml:"from"`
	// Target is -LineHeight * Digit.
	Target       float64                     `yaml:"target"`
	Delay        time.Duration               `yaml:"delay"`
	Spring       animation.SpringDescription `yaml:"spring"`
	ReduceMotion animation.ReduceMotion      `yaml:"reduceMotion"`
}

// SeparatorPlan describes a literal character drawn in place.
type SeparatorPlan struct {
	Char       string     `yaml:"char"`
	Transition Transition `yaml:"transition"`
}

// Glyph is one character position of the row. Exactly one of Reel and
// Separator is set.
type Glyph struct {
	Index     int            `yaml:"index"`
	Reel      *ReelPlan      `yaml:"reel,omitempty"`
	Separator *SeparatorPlan `yaml:"separator,omitempty"`
}

// RenderPlan is the result of one update.
type RenderPlan struct {
	Value      string  `yaml:"value"`
	Motion     Motion  `yaml:"motion"`
	FontSize   float64 `yaml:"fontSize"`
	LineHeight float64 `yaml:"lineHeight"`
	// DigitStyle is the merged style of every reel glyph.
	DigitStyle text.Style `yaml:"digitStyle"`
	// SeparatorStyle is the merged style of every separator.
	SeparatorStyle text.Style `yaml:"separatorStyle"`
	Glyphs         []Glyph    `yaml:"glyphs"`
	// Semantics describes the row as one opaque live text node.
	Semantics semantics.Properties `yaml:"semantics"`
	// Measure asks the host for an invisible measurement render. Nil when
	// auto-fit is off or the last request is still current.
	Measure *text.MeasureRequest `yaml:"measure,omitempty"`
}

// MotionRequests returns the reels whose mode is not ModeHold.
func (p RenderPlan) MotionRequests() []Glyph {
	var out []Glyph
	for _, g := range p.Glyphs {
		if g.Reel != nil && g.Reel.Mode != ModeHold {
			out = append(out, g)
		}
	}
	return out
}

// Strip returns the glyphs of a digit reel strip, top to bottom.
func Strip() [10]rune {
	return [10]rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'}
}

// ReelFrame is the state of one reel at a display frame.
type ReelFrame struct {
	Index  int       `yaml:"index"`
	Digit  int       `yaml:"digit"`
	Offset float64   `yaml:"offset"`
	Target float64   `yaml:"target"`
	Phase  ReelPhase `yaml:"phase"`
}

// SeparatorFrame is the state of one separator at a display frame.
type SeparatorFrame struct {
	Index   int     `yaml:"index"`
	Char    string  `yaml:"char"`
	Opacity float64 `yaml:"opacity"`
}

// Frame is a per-display-frame snapshot of a Flow.
type Frame struct {
	LineHeight float64          `yaml:"lineHeight"`
	Reels      []ReelFrame      `yaml:"reels"`
	Separators []SeparatorFrame `yaml:"separators"`
}

// Settled reports whether every reel is at rest and every separator is opaque.
func (f Frame) Settled() bool {
	for _, r := range f.Reels {
		if r.Phase == PhaseSettling {
			return false
		}
	}
	for _, s := range f.Separators {
		if s.Opacity < 1 {
			return false
		}
	}
	return true
}
