package numberflow

import (
	"fmt"
	"time"

	"github.com/go-drift/numberflow/pkg/animation"
)

// SeparatorTransitionDuration is the length of a separator appear/move transition.
const SeparatorTransitionDuration = 300 * time.Millisecond

// TransitionKind is the layout transition a separator plays.
type TransitionKind int

const (
	// TransitionNone draws the separator in place.
	TransitionNone TransitionKind = iota
	// TransitionAppear fades the separator in at its position.
	TransitionAppear
	// TransitionMove slides the separator to its new layout position.
	TransitionMove
)

// String returns a human-readable representation of the transition kind.
func (k TransitionKind) String() string {
	switch k {
	case TransitionNone:
		return "none"
	case TransitionAppear:
		return "appear"
	case TransitionMove:
		return "move"
	default:
		return fmt.Sprintf("TransitionKind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k TransitionKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Transition is a duration-based (non-spring) layout transition.
type Transition struct {
	Kind     TransitionKind        `yaml:"kind"`
	Duration time.Duration         `yaml:"duration,omitempty"`
	Curve    func(float64) float64 `yaml:"-"`
}

// separatorSlot tracks the presence of one separator position.
type separatorSlot struct {
	char       rune
	controller *animation.AnimationController
}

func newSeparatorSlot(char rune) *separatorSlot {
	c := animation.NewAnimationController(SeparatorTransitionDuration)
	c.Curve = animation.EaseInOut
	return &separatorSlot{
		char:       char,
		controller: c,
	}
}

// update binds the slot to char and returns the transition to play.
// fresh marks a slot created by this update; moved reports that the row
// changed length, so the host may shift the separator.
func (s *separatorSlot) update(char rune, fresh, moved bool, motion Motion) Transition {
	appear := fresh || char != s.char
	s.char = char

	if !motion.Animates() {
		s.controller.SetValue(1)
		return Transition{Kind: TransitionNone}
	}
	switch {
	case appear:
		s.controller.SetValue(0)
		s.controller.Forward()
		return Transition{Kind: TransitionAppear, Duration: SeparatorTransitionDuration, Curve: animation.EaseInOut}
	case moved:
		return Transition{Kind: TransitionMove, Duration: SeparatorTransitionDuration, Curve: animation.EaseInOut}
	default:
		return Transition{Kind: TransitionNone}
	}
}

// currentOpacity returns the separator's opacity for this frame. The
// controller runs 0 to 1, so its eased value is the opacity.
func (s *separatorSlot) currentOpacity() float64 {
	return s.controller.Value
}

func (s *separatorSlot) dispose() {
	s.controller.Dispose()
}
