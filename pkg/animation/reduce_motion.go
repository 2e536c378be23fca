package animation

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// ReduceMotion selects how an animation responds to the platform's
// reduced-motion accessibility preference.
type ReduceMotion int

const (
	// ReduceMotionSystem follows the platform preference.
	ReduceMotionSystem ReduceMotion = iota
	// ReduceMotionAlways suppresses motion regardless of the platform.
	ReduceMotionAlways
	// ReduceMotionNever animates even when the platform asks for reduced motion.
	ReduceMotionNever
)

// String returns the lowercase config spelling of the mode.
func (r ReduceMotion) String() string {
	switch r {
	case ReduceMotionSystem:
		return "system"
	case ReduceMotionAlways:
		return "always"
	case ReduceMotionNever:
		return "never"
	default:
		return fmt.Sprintf("ReduceMotion(%d)", int(r))
	}
}

// ParseReduceMotion parses "system", "always" or "never" (case-insensitive).
// An empty string yields ReduceMotionSystem.
func ParseReduceMotion(s string) (ReduceMotion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "system":
		return ReduceMotionSystem, nil
	case "always":
		return ReduceMotionAlways, nil
	case "never":
		return ReduceMotionNever, nil
	default:
		return ReduceMotionSystem, fmt.Errorf("unknown reduce motion mode %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r ReduceMotion) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *ReduceMotion) UnmarshalText(b []byte) error {
	v, err := ParseReduceMotion(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

var systemReduceMotion atomic.Bool

// SetSystemReduceMotion records the platform's reduced-motion preference.
// Hosts call it at startup and whenever the accessibility setting changes.
// Returns the previous value.
func SetSystemReduceMotion(enabled bool) bool {
	return systemReduceMotion.Swap(enabled)
}

// SystemReduceMotion reports the platform's reduced-motion preference.
func SystemReduceMotion() bool {
	return systemReduceMotion.Load()
}

// Suppresses reports whether motion should be replaced by an instant jump.
func (r ReduceMotion) Suppresses() bool {
	switch r {
	case ReduceMotionAlways:
		return true
	case ReduceMotionNever:
		return false
	default:
		return SystemReduceMotion()
	}
}
