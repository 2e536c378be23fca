// Package semantics describes how a rendered region is exposed to
// assistive technology.
package semantics

import "fmt"

// Role defines the semantic role of a node.
type Role int

const (
	RoleNone Role = iota
	// RoleText is static or live-updating text.
	RoleText
)

// String returns a human-readable representation of the role.
func (r Role) String() string {
	switch r {
	case RoleNone:
		return "none"
	case RoleText:
		return "text"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// LiveRegion controls how changes to a node are announced.
type LiveRegion int

const (
	// LiveRegionOff does not announce changes.
	LiveRegionOff LiveRegion = iota
	// LiveRegionPolite announces changes when the user is idle.
	LiveRegionPolite
)

// String returns a human-readable representation of the live-region policy.
func (l LiveRegion) String() string {
	switch l {
	case LiveRegionOff:
		return "off"
	case LiveRegionPolite:
		return "polite"
	default:
		return fmt.Sprintf("LiveRegion(%d)", int(l))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (l LiveRegion) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// Properties holds the semantic values of one node.
type Properties struct {
	// Label is the primary accessibility label.
	Label string `yaml:"label,omitempty"`
	// Hint describes the node further.
	Hint string `yaml:"hint,omitempty"`
	// Role is the semantic role.
	Role Role `yaml:"role,omitempty"`
	// LiveRegion is the announcement policy for changes.
	LiveRegion LiveRegion `yaml:"liveRegion,omitempty"`
	// Opaque hides descendants: the node is announced as a single unit.
	Opaque bool `yaml:"opaque,omitempty"`
}

// ValueLabel builds the label announced for a live value display.
func ValueLabel(value string) string {
	return "Current value is " + value
}

// LiveText returns the properties of an opaque, politely announced text node
// whose label and hint both read out value.
func LiveText(value string) Properties {
	label := ValueLabel(value)
	return Properties{
		Label:      label,
		Hint:       label,
		Role:       RoleText,
		LiveRegion: LiveRegionPolite,
		Opaque:     true,
	}
}
