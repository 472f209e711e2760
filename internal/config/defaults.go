package config

import (
	_ "embed"

	"github.com/ha1tch/ovr-toolkit/pkg/overlay"
	"github.com/ha1tch/ovr-toolkit/pkg/render"
)

//go:embed default.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	p := overlay.DefaultParams()
	r := render.DefaultOptions()
	return Config{
		Layout: LayoutConfig{
			UpdateRate:       p.UpdateRate,
			MaxIters:         p.MaxIters,
			PixBuf:           p.PixBuf,
			PixBufInitial:    p.PixBufInitial,
			ThresholdX:       p.ThresholdX,
			ThresholdY:       p.ThresholdY,
			PositionWeight:   p.PositionWeight,
			MaxCorrection:    p.MaxCorrection,
			ObjectWeight:     p.ObjectWeight,
			TextWeight:       p.TextWeight,
			VerticalGain:     p.VerticalGain,
			CentreBias:       p.CentreBias,
			RadiusConvention: p.Convention.String(),
			ShrinkPolicy:     p.Shrink.String(),
		},
		View: ViewConfig{Width: 800, Height: 600, JumpSize: 35},
		Font: FontConfig{Size: r.FontSize},
		Render: RenderConfig{
			Padding:      r.Padding,
			Background:   r.Background,
			PlanetColour: r.PlanetColour,
			JumpColour:   r.JumpColour,
			LabelColour:  r.LabelColour,
			MarkerColour: r.MarkerColour,
		},
		Viewer: ViewerConfig{ZoomStep: 1.25, CellWidth: 8, CellHeight: 16},
	}
}
