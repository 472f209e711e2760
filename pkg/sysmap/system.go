// Package sysmap reads star system descriptions and turns the visible
// planets and jump points of a system into overlay layout objects.
package sysmap

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrNoName        = errors.New("missing name")
	ErrBadRadius     = errors.New("radius must be non-negative")
	ErrBadPosition   = errors.New("position must be finite")
	ErrUnknownFormat = errors.New("unknown file format")
)

// System is a star system as seen by the overlay map.
type System struct {
	Name    string   `yaml:"name" json:"name"`
	Planets []Planet `yaml:"planets,omitempty" json:"planets,omitempty"`
	Jumps   []Jump   `yaml:"jumps,omitempty" json:"jumps,omitempty"`
}

// Planet is a space object that can carry a label on the overlay.
// Unset flags default to true.
type Planet struct {
	Name   string  `yaml:"name" json:"name"`
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Radius float64 `yaml:"radius" json:"radius"` // world units
	Symbol string  `yaml:"symbol,omitempty" json:"symbol,omitempty"`
	Known  *bool   `yaml:"known,omitempty" json:"known,omitempty"`
	Real   *bool   `yaml:"real,omitempty" json:"real,omitempty"`
}

// Jump is a jump point leading to another system.
type Jump struct {
	Target      string  `yaml:"target" json:"target"`
	X           float64 `yaml:"x" json:"x"`
	Y           float64 `yaml:"y" json:"y"`
	Symbol      string  `yaml:"symbol,omitempty" json:"symbol,omitempty"`
	Known       *bool   `yaml:"known,omitempty" json:"known,omitempty"`
	TargetKnown *bool   `yaml:"target_known,omitempty" json:"target_known,omitempty"`
	Usable      *bool   `yaml:"usable,omitempty" json:"usable,omitempty"`
}

func flag(b *bool) bool {
	return b == nil || *b
}

// Bool returns a pointer to b, for building flags in code.
func Bool(b bool) *bool {
	return &b
}

// IsVisible reports whether the planet is drawn on the overlay.
func (p Planet) IsVisible() bool {
	return flag(p.Real) && flag(p.Known)
}

// IsVisible reports whether the jump point is drawn on the overlay.
func (j Jump) IsVisible() bool {
	return flag(j.Usable) && flag(j.Known)
}

// Load reads a system from a .yaml, .yml or .json file.
func Load(path string) (*System, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a system in the format named by ext (".yaml", ".yml" or ".json")
// and validates it.
func Parse(data []byte, ext string) (*System, error) {
	var s System
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, err
		}
	case ".json":
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks names, radii and coordinates.
func (s *System) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("system: %w", ErrNoName)
	}
	for i, p := range s.Planets {
		if p.Name == "" {
			return fmt.Errorf("planet %d: %w", i, ErrNoName)
		}
		if p.Radius < 0 || math.IsNaN(p.Radius) {
			return fmt.Errorf("planet %s: %w", p.Name, ErrBadRadius)
		}
		if !finite(p.X) || !finite(p.Y) {
			return fmt.Errorf("planet %s: %w", p.Name, ErrBadPosition)
		}
	}
	for i, j := range s.Jumps {
		if j.Target == "" {
			return fmt.Errorf("jump %d: %w", i, ErrNoName)
		}
		if !finite(j.X) || !finite(j.Y) {
			return fmt.Errorf("jump to %s: %w", j.Target, ErrBadPosition)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Marshal encodes the system as YAML.
func (s *System) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Save writes the system to path, as JSON for .json files and YAML otherwise.
func (s *System) Save(path string) error {
	var data []byte
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(s, "", "  ")
	} else {
		data, err = s.Marshal()
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
