// Package config loads the optional numberflow.yaml file that supplies
// default props for the numberflow command.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/numberflow/pkg/animation"
	"github.com/go-drift/numberflow/pkg/numberflow"
	"github.com/go-drift/numberflow/pkg/text"
)

// FileName is the configuration file looked up by LoadOptional.
const FileName = "numberflow.yaml"

// Config represents the optional numberflow.yaml configuration.
type Config struct {
	Style          text.Style      `yaml:"style,omitempty"`
	SeparatorStyle text.Style      `yaml:"separatorStyle,omitempty"`
	AutoFitText    bool            `yaml:"autoFitText,omitempty"`
	MaxWidth       float64         `yaml:"maxWidth,omitempty"`
	Animation      AnimationConfig `yaml:"animation,omitempty"`
}

// AnimationConfig mirrors numberflow.AnimationConfig; omitted keys keep
// their defaults.
type AnimationConfig struct {
	Enabled        *bool          `yaml:"enabled,omitempty"`
	AnimateOnMount *bool          `yaml:"animateOnMount,omitempty"`
	DigitDelay     *time.Duration `yaml:"digitDelay,omitempty"`
	Mass           *float64       `yaml:"mass,omitempty"`
	Stiffness      *float64       `yaml:"stiffness,omitempty"`
	Damping        *float64       `yaml:"damping,omitempty"`
	ReduceMotion   string         `yaml:"reduceMotion,omitempty"`
}

// LoadOptional reads numberflow.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return &cfg, nil
}

// Resolve loads numberflow.yaml from dir (if present) and converts it to props.
func Resolve(dir string) (numberflow.Props, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return numberflow.Props{}, err
	}
	return cfg.Props()
}

// Props validates the configuration and converts it to render props with
// an empty value.
func (c *Config) Props() (numberflow.Props, error) {
	if err := validateStyle("style", c.Style); err != nil {
		return numberflow.Props{}, err
	}
	if err := validateStyle("separatorStyle", c.SeparatorStyle); err != nil {
		return numberflow.Props{}, err
	}
	if c.MaxWidth < 0 || math.IsNaN(c.MaxWidth) {
		return numberflow.Props{}, fmt.Errorf("maxWidth must not be negative (got %v)", c.MaxWidth)
	}

	anim, err := c.Animation.resolve()
	if err != nil {
		return numberflow.Props{}, err
	}

	return numberflow.Props{
		Style:          c.Style,
		SeparatorStyle: c.SeparatorStyle,
		AutoFitText:    c.AutoFitText,
		MaxWidth:       c.MaxWidth,
		Animation:      anim,
	}, nil
}

func (a AnimationConfig) resolve() (numberflow.AnimationConfig, error) {
	mode, err := animation.ParseReduceMotion(a.ReduceMotion)
	if err != nil {
		return numberflow.AnimationConfig{}, fmt.Errorf("animation.reduceMotion: %w", err)
	}
	if a.DigitDelay != nil && *a.DigitDelay < 0 {
		return numberflow.AnimationConfig{}, fmt.Errorf("animation.digitDelay must not be negative (got %s)", *a.DigitDelay)
	}
	if err := positive("animation.mass", a.Mass); err != nil {
		return numberflow.AnimationConfig{}, err
	}
	if err := positive("animation.stiffness", a.Stiffness); err != nil {
		return numberflow.AnimationConfig{}, err
	}
	if a.Damping != nil && !(*a.Damping >= 0) {
		return numberflow.AnimationConfig{}, fmt.Errorf("animation.damping must not be negative (got %v)", *a.Damping)
	}

	return numberflow.AnimationConfig{
		Enabled:        a.Enabled,
		AnimateOnMount: a.AnimateOnMount,
		DigitDelay:     a.DigitDelay,
		Mass:           a.Mass,
		Stiffness:      a.Stiffness,
		Damping:        a.Damping,
		ReduceMotion:   mode,
	}, nil
}

func validateStyle(key string, s text.Style) error {
	if s.FontSize < 0 || math.IsNaN(s.FontSize) {
		return fmt.Errorf("%s.fontSize must not be negative (got %v)", key, s.FontSize)
	}
	return nil
}

func positive(key string, v *float64) error {
	if v != nil && !(*v > 0) {
		return fmt.Errorf("%s must be positive (got %v)", key, *v)
	}
	return nil
}
