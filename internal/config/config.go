// Package config loads ovr settings from YAML.
package config

import (
	"fmt"

	"github.com/ha1tch/ovr-toolkit/pkg/overlay"
	"github.com/ha1tch/ovr-toolkit/pkg/render"
	"github.com/ha1tch/ovr-toolkit/pkg/sysmap"
)

// Config holds all ovr settings.
type Config struct {
	Layout LayoutConfig `yaml:"layout"`
	View   ViewConfig   `yaml:"view"`
	Font   FontConfig   `yaml:"font"`
	Render RenderConfig `yaml:"render"`
	Viewer ViewerConfig `yaml:"viewer"`
}

// LayoutConfig mirrors overlay.Params.
type LayoutConfig struct {
	UpdateRate       float64 `yaml:"update_rate"`
	MaxIters         int     `yaml:"max_iters"`
	PixBuf           float64 `yaml:"pixbuf"`
	PixBufInitial    float64 `yaml:"pixbuf_initial"`
	ThresholdX       float64 `yaml:"threshold_x"`
	ThresholdY       float64 `yaml:"threshold_y"`
	PositionWeight   float64 `yaml:"position_weight"`
	MaxCorrection    float64 `yaml:"max_correction"`
	ObjectWeight     float64 `yaml:"object_weight"`
	TextWeight       float64 `yaml:"text_weight"`
	VerticalGain     float64 `yaml:"vertical_gain"`
	CentreBias       float64 `yaml:"centre_bias"`
	RadiusConvention string  `yaml:"radius_convention"`
	ShrinkPolicy     string  `yaml:"shrink_policy"`
}

// ViewConfig sets the overlay size.
type ViewConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	JumpSize float64 `yaml:"jump_size"`
}

// FontConfig sets the label font.
type FontConfig struct {
	Size float64 `yaml:"size"`
}

// RenderConfig sets SVG and PNG output options.
type RenderConfig struct {
	Padding      int    `yaml:"padding"`
	ShowAnchors  bool   `yaml:"show_anchors"`
	ShowBoxes    bool   `yaml:"show_boxes"`
	Background   string `yaml:"background"`
	PlanetColour string `yaml:"planet_colour"`
	JumpColour   string `yaml:"jump_colour"`
	LabelColour  string `yaml:"label_colour"`
	MarkerColour string `yaml:"marker_colour"`
}

// ViewerConfig sets terminal viewer behaviour.
type ViewerConfig struct {
	ZoomStep   float64 `yaml:"zoom_step"`
	CellWidth  float64 `yaml:"cell_width"`  // virtual pixels per terminal column
	CellHeight float64 `yaml:"cell_height"` // virtual pixels per terminal row
}

// Params converts the layout section to engine parameters.
func (c Config) Params() (overlay.Params, error) {
	l := c.Layout
	conv, err := overlay.ParseRadiusConvention(l.RadiusConvention)
	if err != nil {
		return overlay.Params{}, err
	}
	shrink, err := overlay.ParseShrinkPolicy(l.ShrinkPolicy)
	if err != nil {
		return overlay.Params{}, err
	}

	p := overlay.DefaultParams()
	p.UpdateRate = l.UpdateRate
	p.MaxIters = l.MaxIters
	p.PixBuf = l.PixBuf
	p.PixBufInitial = l.PixBufInitial
	p.ThresholdX = l.ThresholdX
	p.ThresholdY = l.ThresholdY
	p.PositionWeight = l.PositionWeight
	p.MaxCorrection = l.MaxCorrection
	p.ObjectWeight = l.ObjectWeight
	p.TextWeight = l.TextWeight
	p.VerticalGain = l.VerticalGain
	p.CentreBias = l.CentreBias
	p.Convention = conv
	p.Shrink = shrink

	if err := p.Validate(); err != nil {
		return overlay.Params{}, fmt.Errorf("layout: %w", err)
	}
	return p, nil
}

// SysView returns the view used to refresh a system.
func (c Config) SysView() sysmap.View {
	return sysmap.View{Width: c.View.Width, Height: c.View.Height, JumpSize: c.View.JumpSize}
}

// RenderOptions converts the render section to renderer options.
func (c Config) RenderOptions() render.Options {
	r := c.Render
	return render.Options{
		Padding:      r.Padding,
		FontSize:     c.Font.Size,
		ShowAnchors:  r.ShowAnchors,
		ShowBoxes:    r.ShowBoxes,
		Background:   r.Background,
		PlanetColour: r.PlanetColour,
		JumpColour:   r.JumpColour,
		LabelColour:  r.LabelColour,
		MarkerColour: r.MarkerColour,
	}
}
