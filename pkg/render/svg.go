package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/ha1tch/ovr-toolkit/pkg/overlay"
)

// Options controls SVG and PNG rendering.
type Options struct {
	Padding      int     // margin around the overlay in pixels
	FontSize     float64 // label font size in points
	Title        string  // drawn top-left when set
	ShowAnchors  bool    // outline each label's anchor position
	ShowBoxes    bool    // outline each label box
	Background   string  // hex colours
	PlanetColour string
	JumpColour   string
	LabelColour  string
	MarkerColour string
}

// DefaultOptions returns the standard overlay palette.
func DefaultOptions() Options {
	return Options{
		Padding:      20,
		FontSize:     12,
		Background:   "#0b0f1a",
		PlanetColour: "#4fa3e0",
		JumpColour:   "#e0b84f",
		LabelColour:  "#d8dee9",
		MarkerColour: "#e05a4f",
	}
}

func (o Options) iconColour(k overlay.Kind) string {
	if k == overlay.KindJump {
		return o.JumpColour
	}
	return o.PlanetColour
}

// SVG renders a laid-out pass and its markers.
func SVG(p *overlay.Pass, vp overlay.Viewport, markers []overlay.Marker, opts Options) string {
	pad := float64(opts.Padding)
	width := vp.Width + 2*pad
	height := vp.Height + 2*pad
	params := p.Params()

	var sb strings.Builder

	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		width, height, width, height))
	sb.WriteString(fmt.Sprintf(`  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", opts.Background))

	if opts.Title != "" {
		sb.WriteString(fmt.Sprintf(`  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="%.1f" fill="%s">%s</text>`+"\n",
			pad, pad*0.75, opts.FontSize+2, opts.LabelColour, html.EscapeString(opts.Title)))
	}

	// Icons first so labels draw on top.
	sb.WriteString(`  <g id="icons">` + "\n")
	for i := 0; i < p.Len(); i++ {
		o := p.Object(i)
		c := vp.ToScreen(o.Pos)
		sb.WriteString(fmt.Sprintf(`    <circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s" stroke-width="1.5"/>`+"\n",
			c.X+pad, c.Y+pad, params.HalfExtent(o.Radius), opts.iconColour(o.Kind)))
	}
	sb.WriteString("  </g>\n")

	sb.WriteString(`  <g id="labels">` + "\n")
	for i := 0; i < p.Len(); i++ {
		o := p.Object(i)
		box := vp.FromLayout(p.LabelRect(i))
		if opts.ShowBoxes {
			writeRect(&sb, box, pad, opts.LabelColour, "")
		}
		if opts.ShowAnchors {
			anchor := p.LabelRect(i)
			anchor.X += o.Anchor.X - o.Offset.X
			anchor.Y += o.Anchor.Y - o.Offset.Y
			writeRect(&sb, vp.FromLayout(anchor), pad, opts.MarkerColour, "3,2")
		}
		sb.WriteString(fmt.Sprintf(`    <text x="%.2f" y="%.2f" font-family="sans-serif" font-size="%.1f" fill="%s">%s</text>`+"\n",
			box.X+pad, box.Y+pad+box.H*0.8, opts.FontSize, opts.LabelColour, html.EscapeString(o.Label)))
	}
	sb.WriteString("  </g>\n")

	if len(markers) > 0 {
		sb.WriteString(`  <g id="markers">` + "\n")
		for _, m := range markers {
			c := vp.ToScreen(m.Pos)
			x, y := c.X+pad, c.Y+pad
			sb.WriteString(fmt.Sprintf(`    <path d="M %.2f %.2f L %.2f %.2f M %.2f %.2f L %.2f %.2f" stroke="%s" stroke-width="1.5"/>`+"\n",
				x-4, y-4, x+4, y+4, x-4, y+4, x+4, y-4, opts.MarkerColour))
			if m.Text != "" {
				sb.WriteString(fmt.Sprintf(`    <text x="%.2f" y="%.2f" font-family="sans-serif" font-size="%.1f" fill="%s">%s</text>`+"\n",
					x+10, y+params.LabelHeight*0.3, opts.FontSize, opts.MarkerColour, html.EscapeString(m.Text)))
			}
		}
		sb.WriteString("  </g>\n")
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

func writeRect(sb *strings.Builder, r overlay.Rect, pad float64, stroke, dash string) {
	extra := ""
	if dash != "" {
		extra = fmt.Sprintf(` stroke-dasharray="%s"`, dash)
	}
	sb.WriteString(fmt.Sprintf(`    <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="%s" stroke-width="0.5"%s/>`+"\n",
		r.X+pad, r.Y+pad, r.W, r.H, stroke, extra))
}
