package overlay

import (
	"fmt"
	"strings"
)

// RadiusConvention selects how the stored icon radius is interpreted.
type RadiusConvention int

const (
	// RadiusTrue treats Object.Radius as a radius: icons fit when
	// dist >= r1 + r2 and the icon box extends Radius from the centre.
	RadiusTrue RadiusConvention = iota
	// RadiusAsDiameter treats Object.Radius as a diameter. Distances are
	// doubled before comparison and the icon box extends Radius/2. Use it
	// when comparing against output of the legacy overlay.
	RadiusAsDiameter
)

func (c RadiusConvention) String() string {
	switch c {
	case RadiusTrue:
		return "radius"
	case RadiusAsDiameter:
		return "diameter"
	}
	return fmt.Sprintf("RadiusConvention(%d)", int(c))
}

// ParseRadiusConvention parses "radius" or "diameter".
func ParseRadiusConvention(s string) (RadiusConvention, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "radius":
		return RadiusTrue, nil
	case "diameter":
		return RadiusAsDiameter, nil
	}
	return RadiusTrue, fmt.Errorf("unknown radius convention: %q", s)
}

// ShrinkPolicy selects the shrink factor used in each radius resolution round.
type ShrinkPolicy int

const (
	// ShrinkUniform applies the smallest violated ratio each round, so every
	// conflicting icon is shrunk by the same factor and one round suffices.
	ShrinkUniform ShrinkPolicy = iota
	// ShrinkProgressive applies the largest violated ratio each round,
	// resolving the mildest conflict first and iterating.
	ShrinkProgressive
)

func (s ShrinkPolicy) String() string {
	switch s {
	case ShrinkUniform:
		return "uniform"
	case ShrinkProgressive:
		return "progressive"
	}
	return fmt.Sprintf("ShrinkPolicy(%d)", int(s))
}

// ParseShrinkPolicy parses "uniform" or "progressive".
func ParseShrinkPolicy(s string) (ShrinkPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "uniform":
		return ShrinkUniform, nil
	case "progressive":
		return ShrinkProgressive, nil
	}
	return ShrinkUniform, fmt.Errorf("unknown shrink policy: %q", s)
}

// Params holds the constants shared by every object in a layout pass.
type Params struct {
	UpdateRate     float64 // step size applied to the push vector
	MaxIters       int     // relaxation iteration cap
	PixBuf         float64 // pixels buffered around icons and labels
	PixBufInitial  float64 // buffer used while choosing the initial slot
	ThresholdX     float64 // horizontal drift allowed before pull-back
	ThresholdY     float64 // vertical drift allowed before pull-back
	PositionWeight float64 // pull-back spring strength
	MaxCorrection  float64 // cap on the spring multiplier
	ObjectWeight   float64 // weight of icon overlaps
	TextWeight     float64 // weight of label overlaps
	VerticalGain   float64 // extra gain applied to the vertical push
	LabelHeight    float64 // label height in pixels
	CentreBias     float64 // distance scale of the centre bias term

	Convention RadiusConvention
	Shrink     ShrinkPolicy
}

// DefaultParams returns the standard overlay parameters.
func DefaultParams() Params {
	return Params{
		UpdateRate:     0.015,
		MaxIters:       100,
		PixBuf:         5,
		PixBufInitial:  50,
		ThresholdX:     20,
		ThresholdY:     10,
		PositionWeight: 0.1,
		MaxCorrection:  2,
		ObjectWeight:   1,
		TextWeight:     2,
		VerticalGain:   30,
		LabelHeight:    12,
		CentreBias:     100,
		Convention:     RadiusTrue,
		Shrink:         ShrinkUniform,
	}
}

// Validate checks that the parameters describe a usable pass.
func (p Params) Validate() error {
	if p.MaxIters < 0 {
		return fmt.Errorf("max iterations must be non-negative, got %d", p.MaxIters)
	}
	if p.LabelHeight < 0 {
		return fmt.Errorf("label height must be non-negative, got %g", p.LabelHeight)
	}
	if p.PixBuf < 0 || p.PixBufInitial < 0 {
		return fmt.Errorf("pixel buffers must be non-negative")
	}
	if p.ThresholdX < 0 || p.ThresholdY < 0 {
		return fmt.Errorf("drift thresholds must be non-negative")
	}
	return nil
}

// HalfExtent returns the distance from the icon centre to the edge of its
// box for a stored radius value.
func (p Params) HalfExtent(radius float64) float64 {
	if p.Convention == RadiusAsDiameter {
		return radius / 2
	}
	return radius
}
