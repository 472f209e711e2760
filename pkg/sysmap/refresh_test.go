package sysmap

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/ha1tch/ovr-toolkit/pkg/overlay"
)

func refreshSystem() *System {
	return &System{
		Name: "Sirius",
		Jumps: []Jump{
			{Target: "Alpha", X: 10000, Y: 0},
			{Target: "Beta", X: -8000, Y: 3000, TargetKnown: Bool(false)},
			{Target: "Gamma", X: 0, Y: -12000, Known: Bool(false)},
		},
		Planets: []Planet{
			{Name: "Home", X: 0, Y: 0, Radius: 300, Symbol: "+ "},
			{Name: "Ghost", X: 2000, Y: 0, Radius: 100, Real: Bool(false)},
		},
	}
}

func TestObjects(t *testing.T) {
	m := FixedMeasurer{CharWidth: 7, LineHeight: 12}

	objs, vp := refreshSystem().Objects(View{Width: 800, Height: 600}, m)

	// Hidden Gamma still sizes the map: 2.4 * max(10000/800, 12000/600)
	if math.Abs(vp.Resolution-48) > 1e-9 {
		t.Errorf("Expected resolution 48, got %.4f", vp.Resolution)
	}

	want := []struct {
		name   string
		kind   overlay.Kind
		label  string
		radius float64
	}{
		{"Alpha", overlay.KindJump, "Alpha", MinJumpRadius},
		{"Beta", overlay.KindJump, "Unknown", MinJumpRadius},
		{"Home", overlay.KindPlanet, "+ Home", MinPlanetRadius},
	}
	if len(objs) != len(want) {
		t.Fatalf("Expected %d objects, got %d", len(want), len(objs))
	}
	for i, w := range want {
		o := objs[i]
		if o.Name != w.name || o.Kind != w.kind || o.Label != w.label {
			t.Errorf("Object %d: expected %s/%s/%q, got %s/%s/%q",
				i, w.name, w.kind, w.label, o.Name, o.Kind, o.Label)
		}
		if o.Radius != w.radius {
			t.Errorf("Object %d: expected radius %.1f, got %.4f", i, w.radius, o.Radius)
		}
		if o.TextWidth != m.Width(w.label) {
			t.Errorf("Object %d: expected text width %.1f, got %.1f", i, m.Width(w.label), o.TextWidth)
		}
	}
}

func TestObjectsLargePlanetKeepsScaledRadius(t *testing.T) {
	s := &System{Name: "Big", Planets: []Planet{{Name: "Giant", X: 800, Y: 0, Radius: 4800}}}

	objs, vp := s.Objects(View{Width: 800, Height: 600}, FixedMeasurer{CharWidth: 7, LineHeight: 12})

	// res = 2.4 * 800/800 = 2.4
	if got, want := objs[0].Radius, 4800/vp.Resolution; math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected radius %.2f, got %.2f", want, got)
	}
}

func TestObjectsEmpty(t *testing.T) {
	s := &System{Name: "Void", Planets: []Planet{{Name: "Hidden", X: 500, Known: Bool(false)}}}

	objs, vp := s.Objects(View{Width: 800, Height: 600}, FixedMeasurer{CharWidth: 7, LineHeight: 12})

	if len(objs) != 0 {
		t.Errorf("Expected no objects, got %d", len(objs))
	}
	if vp.Resolution != overlay.EmptyResolution {
		t.Errorf("Expected the empty resolution, got %.2f", vp.Resolution)
	}
}

func TestPassUsesMeasurerHeight(t *testing.T) {
	m := FixedMeasurer{CharWidth: 8, LineHeight: 16}

	p, vp, err := refreshSystem().Pass(View{Width: 800, Height: 600}, m, overlay.DefaultParams())
	if err != nil {
		t.Fatalf("Pass: %v", err)
	}

	if p.Params().LabelHeight != 16 {
		t.Errorf("Expected label height 16, got %.1f", p.Params().LabelHeight)
	}
	if p.Resolution() != vp.Resolution || p.Len() != 3 {
		t.Errorf("Pass does not match the refresh: res %.2f/%.2f, %d objects",
			p.Resolution(), vp.Resolution, p.Len())
	}

	rep := p.Optimize()
	if rep.Iterations > p.Params().MaxIters {
		t.Errorf("Relaxation exceeded its cap: %+v", rep)
	}
}

func TestExampleSystemLayout(t *testing.T) {
	s, err := Load(filepath.Join("..", "..", "examples", "sirius.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	p, _, err := s.Pass(View{Width: 800, Height: 600}, FixedMeasurer{CharWidth: 7, LineHeight: 12}, overlay.DefaultParams())
	if err != nil {
		t.Fatalf("Pass: %v", err)
	}
	// One virtual planet and one unknown jump are hidden.
	if p.Len() != 8 {
		t.Fatalf("Expected 8 visible objects, got %d", p.Len())
	}

	p.Optimize()
	if overlaps := p.IconOverlaps(1e-9); len(overlaps) != 0 {
		t.Errorf("Icons overlap: %v", overlaps)
	}
	for i, o := range p.Objects() {
		if !o.Offset.IsFinite() {
			t.Errorf("Object %d (%s) has no label position", i, o.Name)
		}
	}
}
