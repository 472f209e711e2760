package sysmap

import (
	"math"

	"github.com/ha1tch/ovr-toolkit/pkg/overlay"
)

const (
	// MinJumpRadius and MinPlanetRadius keep icons legible on large maps.
	MinJumpRadius   = 10.0
	MinPlanetRadius = 15.0
	// DefaultJumpSize is the width of the jump point graphic in world units.
	DefaultJumpSize = 35.0
	// UnknownTarget labels jumps into systems the player has not visited.
	UnknownTarget = "Unknown"
)

// Measurer reports the rendered size of label text in pixels.
type Measurer interface {
	Width(s string) float64
	Height() float64
}

// FixedMeasurer measures text as a fixed width per rune.
type FixedMeasurer struct {
	CharWidth  float64
	LineHeight float64
}

func (m FixedMeasurer) Width(s string) float64 {
	return float64(len([]rune(s))) * m.CharWidth
}

func (m FixedMeasurer) Height() float64 {
	return m.LineHeight
}

// View describes the overlay the system is drawn into.
type View struct {
	Width, Height float64 // overlay size in pixels
	JumpSize      float64 // jump graphic size in world units, 0 for the default
}

// Objects builds layout objects for the visible jumps and planets, jumps
// first, and the viewport that fits the whole system. Hidden objects still
// count toward the map extent.
func (s *System) Objects(v View, m Measurer) ([]overlay.Object, overlay.Viewport) {
	jumpSize := v.JumpSize
	if jumpSize <= 0 {
		jumpSize = DefaultJumpSize
	}

	var objs []overlay.Object
	maxX, maxY := 0.0, 0.0

	for _, j := range s.Jumps {
		maxX = math.Max(maxX, math.Abs(j.X))
		maxY = math.Max(maxY, math.Abs(j.Y))
		if !j.IsVisible() {
			continue
		}
		label := j.Symbol + j.Target
		if !flag(j.TargetKnown) {
			label = j.Symbol + UnknownTarget
		}
		objs = append(objs, overlay.Object{
			Name:      j.Target,
			Kind:      overlay.KindJump,
			Pos:       overlay.Point{X: j.X, Y: j.Y},
			Radius:    jumpSize,
			Label:     label,
			TextWidth: m.Width(label),
		})
	}
	for _, p := range s.Planets {
		maxX = math.Max(maxX, math.Abs(p.X))
		maxY = math.Max(maxY, math.Abs(p.Y))
		if !p.IsVisible() {
			continue
		}
		label := p.Symbol + p.Name
		objs = append(objs, overlay.Object{
			Name:      p.Name,
			Kind:      overlay.KindPlanet,
			Pos:       overlay.Point{X: p.X, Y: p.Y},
			Radius:    p.Radius,
			Label:     label,
			TextWidth: m.Width(label),
		})
	}

	res := overlay.FitResolution(maxX, maxY, v.Width, v.Height)
	if len(objs) == 0 {
		res = overlay.EmptyResolution
	}
	for i := range objs {
		floor := MinPlanetRadius
		if objs[i].Kind == overlay.KindJump {
			floor = MinJumpRadius
		}
		objs[i].Radius = math.Max(objs[i].Radius/res, floor)
	}

	return objs, overlay.Viewport{Width: v.Width, Height: v.Height, Resolution: res}
}

// Pass builds a layout pass for the system. The label height in params is
// replaced by the measurer's line height.
func (s *System) Pass(v View, m Measurer, params overlay.Params) (*overlay.Pass, overlay.Viewport, error) {
	objs, vp := s.Objects(v, m)
	params.LabelHeight = m.Height()
	p, err := overlay.NewPass(objs, vp.Resolution, params)
	if err != nil {
		return nil, vp, err
	}
	return p, vp, nil
}
