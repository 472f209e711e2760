package render

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/ha1tch/ovr-toolkit/pkg/overlay"
)

func testPass(t *testing.T) (*overlay.Pass, overlay.Viewport) {
	t.Helper()
	m, err := NewFontMeasurer(12)
	if err != nil {
		t.Fatalf("NewFontMeasurer: %v", err)
	}
	objs := []overlay.Object{
		{Name: "Alpha", Kind: overlay.KindPlanet, Pos: overlay.Point{X: 0, Y: 0}, Radius: 15, Label: "Alpha"},
		{Name: "Beta", Kind: overlay.KindJump, Pos: overlay.Point{X: 120, Y: 40}, Radius: 10, Label: "Beta <Unknown>"},
	}
	for i := range objs {
		objs[i].TextWidth = m.Width(objs[i].Label)
	}
	params := overlay.DefaultParams()
	params.LabelHeight = m.Height()

	vp := overlay.Viewport{Width: 400, Height: 300, Resolution: 1}
	p, err := overlay.NewPass(objs, vp.Resolution, params)
	if err != nil {
		t.Fatalf("NewPass: %v", err)
	}
	p.Optimize()
	return p, vp
}

func TestFontMeasurer(t *testing.T) {
	m, err := NewFontMeasurer(12)
	if err != nil {
		t.Fatalf("NewFontMeasurer: %v", err)
	}

	if w := m.Width(""); w != 0 {
		t.Errorf("Empty string should have zero width, got %.2f", w)
	}
	if m.Width("Alpha Centauri") <= m.Width("Alpha") {
		t.Error("Longer text should be wider")
	}
	if h := m.Height(); h < 12 || h > 20 {
		t.Errorf("Line height for 12pt expected between 12 and 20 px, got %.2f", h)
	}
}

func TestSVG(t *testing.T) {
	p, vp := testPass(t)
	var markers overlay.MarkerSet
	markers.AddPoint("Rendezvous", -50, 50)

	opts := DefaultOptions()
	opts.Title = "Test System"
	opts.ShowAnchors = true
	svg := SVG(p, vp, markers.All(), opts)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("SVG should be a complete document")
	}
	if n := strings.Count(svg, "<circle"); n != 2 {
		t.Errorf("Expected 2 icons, got %d", n)
	}
	if !strings.Contains(svg, ">Alpha<") {
		t.Error("Missing label Alpha")
	}
	if !strings.Contains(svg, "Beta &lt;Unknown&gt;") {
		t.Error("Label text should be escaped")
	}
	if !strings.Contains(svg, "Rendezvous") || !strings.Contains(svg, "Test System") {
		t.Error("Missing marker or title text")
	}
	if !strings.Contains(svg, `width="440"`) {
		t.Error("Canvas should include padding on both sides")
	}
}

func TestPNG(t *testing.T) {
	p, vp := testPass(t)
	opts := DefaultOptions()
	opts.ShowBoxes = true

	var buf bytes.Buffer
	if err := PNG(&buf, p, vp, nil, opts); err != nil {
		t.Fatalf("PNG: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 440 || b.Dy() != 340 {
		t.Errorf("Expected 440x340, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestParseColour(t *testing.T) {
	def := color.RGBA{1, 2, 3, 255}

	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#ff8000", color.RGBA{255, 128, 0, 255}},
		{"0b0f1a", color.RGBA{11, 15, 26, 255}},
		{"#fff", def},
		{"#zzzzzz", def},
	}

	for _, tt := range tests {
		if got := parseColour(tt.in, def); got != tt.want {
			t.Errorf("parseColour(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}
