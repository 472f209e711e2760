// Native PNG rendering of the overlay.
// Mirrors the SVG renderer output using Go's image packages.

package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/ha1tch/ovr-toolkit/pkg/overlay"
)

// supersample is the factor the image is drawn at before downscaling.
const supersample = 4

// renderContext holds rendering parameters including scale
type renderContext struct {
	img       *image.RGBA
	scale     float64 // multiplier for coordinates, line thickness and text
	pad       float64
	lineWidth float64
	face      font.Face
}

func newRenderContext(img *image.RGBA, scale int, pad, fontSize float64) (*renderContext, error) {
	face, err := newFace(fontSize * float64(scale))
	if err != nil {
		return nil, err
	}
	return &renderContext{
		img:       img,
		scale:     float64(scale),
		pad:       pad,
		lineWidth: 1.5 * float64(scale),
		face:      face,
	}, nil
}

// px converts overlay pixels to supersampled image pixels.
func (ctx *renderContext) px(v float64) float64 {
	return (v + ctx.pad) * ctx.scale
}

// PNG renders a laid-out pass and its markers as a PNG image.
// Uses 4x supersampling for smoother output.
func PNG(w io.Writer, p *overlay.Pass, vp overlay.Viewport, markers []overlay.Marker, opts Options) error {
	pad := float64(opts.Padding)
	width := int(math.Ceil(vp.Width + 2*pad))
	height := int(math.Ceil(vp.Height + 2*pad))
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", width, height)
	}

	large := image.NewRGBA(image.Rect(0, 0, width*supersample, height*supersample))
	ctx, err := newRenderContext(large, supersample, pad, opts.FontSize)
	if err != nil {
		return err
	}

	draw.Draw(large, large.Bounds(), image.NewUniform(parseColour(opts.Background, color.RGBA{11, 15, 26, 255})), image.Point{}, draw.Src)

	params := p.Params()
	labelColour := parseColour(opts.LabelColour, color.RGBA{216, 222, 233, 255})
	markerColour := parseColour(opts.MarkerColour, color.RGBA{224, 90, 79, 255})

	for i := 0; i < p.Len(); i++ {
		o := p.Object(i)
		c := vp.ToScreen(o.Pos)
		stroke := parseColour(opts.iconColour(o.Kind), color.RGBA{79, 163, 224, 255})
		drawCircle(ctx, ctx.px(c.X), ctx.px(c.Y), params.HalfExtent(o.Radius)*ctx.scale, stroke)
	}

	for i := 0; i < p.Len(); i++ {
		o := p.Object(i)
		box := vp.FromLayout(p.LabelRect(i))
		if opts.ShowBoxes {
			drawRect(ctx, box, labelColour)
		}
		if opts.ShowAnchors {
			anchor := p.LabelRect(i)
			anchor.X += o.Anchor.X - o.Offset.X
			anchor.Y += o.Anchor.Y - o.Offset.Y
			drawRect(ctx, vp.FromLayout(anchor), markerColour)
		}
		drawText(ctx, ctx.px(box.X), ctx.px(box.Y+box.H), o.Label, labelColour)
	}

	for _, m := range markers {
		c := vp.ToScreen(m.Pos)
		x, y := ctx.px(c.X), ctx.px(c.Y)
		arm := 4 * ctx.scale
		drawLine(ctx, x-arm, y-arm, x+arm, y+arm, markerColour)
		drawLine(ctx, x-arm, y+arm, x+arm, y-arm, markerColour)
		if m.Text != "" {
			drawText(ctx, ctx.px(c.X+10), ctx.px(c.Y+params.LabelHeight/2), m.Text, markerColour)
		}
	}

	if opts.Title != "" {
		drawText(ctx, ctx.px(0), ctx.px(-pad*0.25), opts.Title, labelColour)
	}

	final := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(final, final.Bounds(), large, large.Bounds(), draw.Over, nil)

	return png.Encode(w, final)
}

// drawCircle draws a circle outline.
func drawCircle(ctx *renderContext, cx, cy, r float64, stroke color.Color) {
	if r <= 0 {
		return
	}
	step := math.Min(0.05, 1/r)
	for angle := 0.0; angle < 2*math.Pi; angle += step {
		nx := math.Cos(angle)
		ny := math.Sin(angle)
		for t := -ctx.lineWidth / 2; t <= ctx.lineWidth/2; t += 0.5 {
			ctx.img.Set(int(cx+nx*(r+t)), int(cy+ny*(r+t)), stroke)
		}
	}
}

// drawLine draws a line between two points with thickness from context.
func drawLine(ctx *renderContext, x1, y1, x2, y2 float64, c color.Color) {
	dx := x2 - x1
	dy := y2 - y1
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps < 1 {
		steps = 1
	}

	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < 1 {
		ctx.img.Set(int(x1), int(y1), c)
		return
	}

	perpX := -dy / dist
	perpY := dx / dist
	halfThick := ctx.lineWidth / 2

	for i := 0.0; i <= steps; i++ {
		t := i / steps
		cx := x1 + dx*t
		cy := y1 + dy*t
		for offset := -halfThick; offset <= halfThick; offset += 0.5 {
			ctx.img.Set(int(cx+perpX*offset), int(cy+perpY*offset), c)
		}
	}
}

// drawRect outlines a box given in overlay pixels.
func drawRect(ctx *renderContext, r overlay.Rect, c color.Color) {
	x0, y0 := ctx.px(r.X), ctx.px(r.Y)
	x1, y1 := ctx.px(r.Right()), ctx.px(r.Top())
	drawLine(ctx, x0, y0, x1, y0, c)
	drawLine(ctx, x1, y0, x1, y1, c)
	drawLine(ctx, x1, y1, x0, y1, c)
	drawLine(ctx, x0, y1, x0, y0, c)
}

// drawText draws text with its left end at x and its bottom at y.
func drawText(ctx *renderContext, x, y float64, text string, c color.Color) {
	descent := ctx.face.Metrics().Descent.Ceil()
	d := &font.Drawer{
		Dst:  ctx.img,
		Src:  image.NewUniform(c),
		Face: ctx.face,
		Dot: fixed.Point26_6{
			X: fixed.I(int(x)),
			Y: fixed.I(int(y) - descent),
		},
	}
	d.DrawString(text)
}

// parseColour parses "#rrggbb", returning def when s is malformed.
func parseColour(s string, def color.RGBA) color.RGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return def
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return def
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}
}
