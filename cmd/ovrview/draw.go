package main

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/ha1tch/ovr-toolkit/pkg/overlay"
)

// Styles
var (
	stylePlanet     = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue).Bold(true)
	styleJump       = tcell.StyleDefault.Foreground(tcell.ColorGoldenrod).Bold(true)
	styleLabel      = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleLabelSel   = tcell.StyleDefault.Background(tcell.ColorSilver).Foreground(tcell.ColorBlack)
	styleAnchor     = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleMarker     = tcell.StyleDefault.Foreground(tcell.ColorIndianRed).Bold(true)
	styleStatus     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleMsgError   = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorNavy).Bold(true)
	styleMsgSuccess = tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorNavy)
)

// flashPeriod is how long, in milliseconds, error and success messages flash.
const flashPeriod = 500

func (v *Viewer) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()

	if v.pass != nil {
		if v.showAnchors {
			v.drawAnchors(w, h-1)
		}
		v.drawIcons(w, h-1)
		v.drawLabels(w, h-1)
	}
	v.drawMarkers(w, h-1)
	v.drawStatusBar(w, h)
}

func (v *Viewer) drawIcons(w, h int) {
	for _, o := range v.pass.Objects() {
		style, glyph := stylePlanet, '●'
		if o.Kind == overlay.KindJump {
			style, glyph = styleJump, '◇'
		}

		// Outline icons large enough to span several cells.
		centre := v.view.ToScreen(o.Pos)
		r := v.iconExtent(o)
		if r/v.cfg.Viewer.CellWidth >= 1.5 && r/v.cfg.Viewer.CellHeight >= 1 {
			v.drawEllipse(centre, r, w, h, style)
		}

		col, row := v.toCell(centre)
		v.setCell(col, row, glyph, style, w, h)
	}
}

// iconExtent returns the drawn icon radius in virtual pixels.
func (v *Viewer) iconExtent(o overlay.Object) float64 {
	return v.pass.Params().HalfExtent(o.Radius)
}

// drawEllipse outlines a circle of radius r virtual pixels.
func (v *Viewer) drawEllipse(centre overlay.Point, r float64, w, h int, style tcell.Style) {
	steps := int(math.Max(16, 2*math.Pi*r/v.cfg.Viewer.CellWidth))
	for s := 0; s < steps; s++ {
		a := 2 * math.Pi * float64(s) / float64(steps)
		p := overlay.Point{X: centre.X + r*math.Cos(a), Y: centre.Y + r*math.Sin(a)}
		col, row := v.toCell(p)
		v.setCell(col, row, '·', style, w, h)
	}
}

func (v *Viewer) drawLabels(w, h int) {
	for i, o := range v.pass.Objects() {
		if !o.Offset.IsFinite() {
			continue
		}
		r := v.view.FromLayout(v.pass.LabelRect(i))
		style := styleLabel
		if i == v.selected {
			style = styleLabelSel
		}
		col, row := v.toCell(overlay.Point{X: r.X, Y: r.Y})
		v.drawText(col, row, o.Label, style, w, h)
	}
}

func (v *Viewer) drawAnchors(w, h int) {
	for i, o := range v.pass.Objects() {
		if !o.Anchor.IsFinite() {
			continue
		}
		c := v.pass.Centre(i)
		r := v.view.FromLayout(overlay.Rect{X: c.X + o.Anchor.X, Y: c.Y + o.Anchor.Y, W: o.TextWidth, H: v.pass.Params().LabelHeight})
		col, row := v.toCell(overlay.Point{X: r.X, Y: r.Y})
		endCol, _ := v.toCell(overlay.Point{X: r.Right(), Y: r.Y})
		for x := col; x < endCol; x++ {
			v.setCell(x, row, '░', styleAnchor, w, h)
		}
	}
}

func (v *Viewer) drawMarkers(w, h int) {
	for _, m := range v.markers.All() {
		col, row := v.toCell(v.view.ToScreen(m.Pos))
		v.setCell(col, row, '✕', styleMarker, w, h)
		text := fmt.Sprintf("%d", m.ID)
		if m.Text != "" {
			text += " " + m.Text
		}
		v.drawText(col+2, row, text, styleMarker, w, h)
	}
}

func (v *Viewer) drawStatusBar(w, h int) {
	y := h - 1
	for x := 0; x < w; x++ {
		v.screen.SetContent(x, y, ' ', nil, styleStatus)
	}

	status := ""
	if v.system != nil {
		conv := "converged"
		if !v.report.Converged {
			conv = "unconverged"
		}
		status = fmt.Sprintf(" %s  %d objects  %.1f u/px  x%.2f  %d iters %s  %d markers ",
			v.system.Name, v.objectCount(), v.view.Resolution, v.zoom,
			v.report.Iterations, conv, v.markers.Len())
	}

	style := styleStatus
	if v.message != "" {
		switch v.messageType {
		case MsgError:
			style = styleMsgError
		case MsgSuccess:
			style = styleMsgSuccess
		}
		if v.messageType != MsgInfo && flashInverted(nowMillis()-v.messageFlashStart) {
			fg, bg, attr := style.Decompose()
			style = tcell.StyleDefault.Foreground(bg).Background(fg).Attributes(attr)
		}
		status += "│ " + v.message
	}
	v.drawText(0, y, status, style, w, h)

	help := " q:quit r:reload +/-:zoom a:anchors c:clear "
	if x := w - runewidth.StringWidth(help); x > runewidth.StringWidth(status)+1 {
		v.drawText(x, y, help, styleStatus, w, h)
	}
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

func (v *Viewer) objectCount() int {
	if v.pass == nil {
		return 0
	}
	return v.pass.Len()
}

// flashPhases returns the delays after which a flashing message changes
// phase, ending with the return to normal.
func flashPhases() []time.Duration {
	phases := make([]time.Duration, 4)
	for i := range phases {
		phases[i] = time.Duration((i+1)*flashPeriod/4) * time.Millisecond
	}
	return phases
}

// flashInverted reports whether a message shown for elapsed milliseconds is
// drawn inverted. It alternates every quarter of the flash period.
func flashInverted(elapsed int64) bool {
	if elapsed < 0 || elapsed >= flashPeriod {
		return false
	}
	phase := elapsed / (flashPeriod / 4)
	return phase == 1 || phase == 3
}

func (v *Viewer) drawText(col, row int, s string, style tcell.Style, w, h int) {
	for _, r := range s {
		v.setCell(col, row, r, style, w, h)
		col += max(runewidth.RuneWidth(r), 1)
	}
}

func (v *Viewer) setCell(col, row int, r rune, style tcell.Style, w, h int) {
	if col < 0 || row < 0 || col >= w || row >= h {
		return
	}
	v.screen.SetContent(col, row, r, nil, style)
}
